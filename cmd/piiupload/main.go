package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "piiupload",
	Short: "Normalize, hash and upload PII match data",
	Long: `piiupload reads contact records from a local CSV or JSON file,
normalizes and SHA-256 hashes the PII fields, and submits them to the
ingestion API. Raw values never leave the machine.`,
}

func main() {
	rootCmd.AddCommand(csvCmd)
	rootCmd.AddCommand(jsonCmd)

	rootCmd.PersistentFlags().String("config", "", "path to the YAML config file")
	rootCmd.PersistentFlags().Bool("dry-run", false, "format and hash only; do not contact the API")
	rootCmd.PersistentFlags().String("encoding", "", "override digest encoding (hex|base64)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
