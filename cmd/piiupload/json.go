package main

import (
	"github.com/spf13/cobra"

	"github.com/vortex-fintech/pii-ingest/record"
)

var jsonCmd = &cobra.Command{
	Use:   "json <file>",
	Short: "Upload records from a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runUpload(cmd, args[0], record.ReadJSON)
	},
}
