// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the redactor CLI, a batch tool that
// extracts text from PDF documents and suppresses a configured list of
// sensitive terms before the text is handed to downstream tooling.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the redactor CLI.
var rootCmd = &cobra.Command{
	Use:   "redactor",
	Short: "Batch PDF text extraction with term redaction",
	Long: `redactor extracts the plain text of every PDF in an input directory,
removes all occurrences of a configured list of sensitive terms, and writes
one redacted text file per document. The output is intended as a
pre-processing step before documents reach language-model or archival
tooling.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./redactor.yaml or ~/.config/redactor/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level: trace, debug, info, warn, or error")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("redactor")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "redactor"))
		}
	}

	viper.SetEnvPrefix("REDACTOR")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// newLogger builds the diagnostics logger handed into each pipeline stage.
func newLogger(cmd *cobra.Command) hclog.Logger {
	levelStr, _ := cmd.Flags().GetString("log-level")
	level := hclog.LevelFromString(levelStr)
	if level == hclog.NoLevel {
		level = hclog.Info
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:  "redactor",
		Level: level,
	})
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
