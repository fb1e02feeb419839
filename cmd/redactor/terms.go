// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/redactor/internal/terms"
)

var termsCmd = &cobra.Command{
	Use:   "terms",
	Short: "Validate and list the active redaction terms",
	Long: `Terms loads the term file exactly as a run would — trimming entries and
dropping blank lines — and prints the resulting term set without touching
any document. Use it to check a term file before a batch.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := viper.GetString("terms_file")
		if len(args) > 0 {
			path = args[0]
		}

		profile, err := terms.LoadProfile(path)
		if err != nil {
			return err
		}

		fmt.Printf("%d term(s) loaded from %s\n", len(profile.Terms), path)
		for _, t := range profile.Terms {
			fmt.Printf("  %s\n", t)
		}
		if profile.CaseSensitive != nil {
			fmt.Printf("case_sensitive: %t\n", *profile.CaseSensitive)
		}
		if profile.Marker != "" {
			fmt.Printf("marker: %s\n", profile.Marker)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(termsCmd)
}
