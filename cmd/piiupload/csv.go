package main

import (
	"github.com/spf13/cobra"

	"github.com/vortex-fintech/pii-ingest/record"
)

var csvCmd = &cobra.Command{
	Use:   "csv <file>",
	Short: "Upload records from a CSV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpload(cmd, args[0], record.ReadCSV)
	},
}
