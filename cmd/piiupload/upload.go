package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vortex-fintech/pii-ingest/config"
	"github.com/vortex-fintech/pii-ingest/formatter"
	"github.com/vortex-fintech/pii-ingest/ingest"
	"github.com/vortex-fintech/pii-ingest/logger"
	"github.com/vortex-fintech/pii-ingest/record"
	"github.com/vortex-fintech/pii-ingest/uploader"
)

func runUpload(cmd *cobra.Command, path string, read func(io.Reader) ([]record.Record, error)) error {
	cmd.SilenceUsage = true

	flags := cmd.Root().PersistentFlags()
	cfgPath, err := flags.GetString("config")
	if err != nil {
		return err
	}
	if cfgPath == "" {
		return errors.New("--config is required")
	}
	dryRun, err := flags.GetBool("dry-run")
	if err != nil {
		return err
	}
	encOverride, err := flags.GetString("encoding")
	if err != nil {
		return err
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if encOverride != "" {
		cfg.Encoding = encOverride
	}
	enc, err := formatter.ParseEncoding(cfg.Encoding)
	if err != nil {
		return fmt.Errorf("encoding %q: %w", cfg.Encoding, err)
	}

	log := logger.Init("piiupload", cfg.Env)
	defer log.SafeSync()

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	records, err := read(f)
	if err != nil {
		return err
	}

	var submitter uploader.Submitter
	if dryRun {
		submitter = dryRunSubmitter{log: log}
	} else {
		submitter = ingest.New(ingest.Config{
			Endpoint:    cfg.Endpoint,
			AuthToken:   cfg.AuthToken,
			AudienceID:  cfg.AudienceID,
			Encoding:    enc.String(),
			Timeout:     cfg.Timeout(),
			Parallelism: cfg.Parallelism,
		}, log)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pipe := uploader.New(enc, cfg.BatchSize, submitter, log)
	stats, err := pipe.Run(ctx, records)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "read=%d skipped=%d uploaded=%d batches=%d\n",
		stats.Read, stats.Skipped, stats.Uploaded, stats.Batches)
	return nil
}

// dryRunSubmitter counts what would have been sent without touching the
// network.
type dryRunSubmitter struct {
	log logger.LoggerInterface
}

func (d dryRunSubmitter) UploadAll(_ context.Context, batches [][]ingest.Member) error {
	members := 0
	for _, b := range batches {
		members += len(b)
	}
	d.log.Infow("dry-run: skipping upload", "batches", len(batches), "members", members)
	return nil
}
