// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/redactor/internal/batch"
	"github.com/pdiddy/redactor/internal/extract"
	"github.com/pdiddy/redactor/internal/ledger"
	"github.com/pdiddy/redactor/internal/redact"
	"github.com/pdiddy/redactor/internal/terms"
	"github.com/pdiddy/redactor/pkg/types"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Redact every PDF in the input directory",
	Long: `Run processes all .pdf files directly inside the input directory:
text is extracted page by page, every occurrence of a configured term is
replaced with the redaction marker, and the result is written to the output
directory as text_redacted_<name>_<timestamp>.txt.

A missing terms file or input directory aborts the run. Individual documents
that cannot be parsed are logged, counted as failures, and the batch
continues; the process still exits zero.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	log := newLogger(cmd)
	rcfg, bcfg := redactionConfig()

	log.Info("starting text-based PDF redaction workflow")

	profile, err := terms.LoadProfile(rcfg.TermsFile)
	if err != nil {
		log.Error("could not load terms", "error", err)
		return err
	}
	log.Info("loaded redaction terms", "count", len(profile.Terms))

	opts := redact.Options{
		CaseSensitive: rcfg.CaseSensitive,
		Marker:        rcfg.Marker,
	}
	if profile.CaseSensitive != nil {
		opts.CaseSensitive = *profile.CaseSensitive
	}
	if profile.Marker != "" {
		opts.Marker = profile.Marker
	}
	redactor := redact.New(profile.Terms, opts)

	var led *ledger.Ledger
	if bcfg.SkipProcessed {
		path := bcfg.LedgerPath
		if path == "" {
			path = filepath.Join(bcfg.OutputDir, ".redactor-ledger.db")
		}
		led, err = ledger.Open(path)
		if err != nil {
			log.Error("could not open ledger", "error", err)
			return err
		}
		defer led.Close()
	}

	runner := batch.NewRunner(extract.NewPDFExtractor(), redactor, bcfg, led, log)
	_, err = runner.Run(os.Stdout)
	return err
}

// redactionConfig resolves the run settings from flags, environment, and
// the optional config file, in viper's usual precedence order.
func redactionConfig() (types.RedactionConfig, types.BatchConfig) {
	rcfg := types.RedactionConfig{
		TermsFile:     viper.GetString("terms_file"),
		CaseSensitive: viper.GetBool("case_sensitive"),
		Marker:        viper.GetString("marker"),
	}
	bcfg := types.BatchConfig{
		InputDir:      viper.GetString("input_dir"),
		OutputDir:     viper.GetString("output_dir"),
		SkipProcessed: viper.GetBool("skip_processed"),
		LedgerPath:    viper.GetString("ledger"),
	}
	return rcfg, bcfg
}

func init() {
	runCmd.Flags().String("input-dir", "input", "directory containing the source PDF files")
	runCmd.Flags().String("output-dir", "output", "directory for redacted text output (created if absent)")
	runCmd.Flags().String("terms-file", "terms_to_redact.txt", "term list: plain text (one term per line) or a .yaml profile")
	runCmd.Flags().Bool("case-sensitive", false, "match terms case-sensitively")
	runCmd.Flags().String("marker", redact.DefaultMarker, "replacement text for matched terms")
	runCmd.Flags().Bool("skip-processed", false, "skip documents already processed in a previous run")
	runCmd.Flags().String("ledger", "", "processed-document ledger path (default: <output-dir>/.redactor-ledger.db)")

	viper.BindPFlag("input_dir", runCmd.Flags().Lookup("input-dir"))
	viper.BindPFlag("output_dir", runCmd.Flags().Lookup("output-dir"))
	viper.BindPFlag("terms_file", runCmd.Flags().Lookup("terms-file"))
	viper.BindPFlag("case_sensitive", runCmd.Flags().Lookup("case-sensitive"))
	viper.BindPFlag("marker", runCmd.Flags().Lookup("marker"))
	viper.BindPFlag("skip_processed", runCmd.Flags().Lookup("skip-processed"))
	viper.BindPFlag("ledger", runCmd.Flags().Lookup("ledger"))

	rootCmd.AddCommand(runCmd)
}
