// Package ingest is the HTTP client for the remote ingestion API. It
// receives already-hashed identifiers and knows nothing about
// normalization; the formatter package owns that.
package ingest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vortex-fintech/pii-ingest/logger"
	"github.com/vortex-fintech/pii-ingest/retry"
)

// retryBudget bounds the total time spent retrying one batch.
const retryBudget = 20 * time.Second

// Member is one upload entry: hashed identifiers plus the clear-text
// region code.
type Member struct {
	HashedEmail       string `json:"hashed_email,omitempty"`
	HashedPhoneNumber string `json:"hashed_phone_number,omitempty"`
	HashedGivenName   string `json:"hashed_given_name,omitempty"`
	HashedFamilyName  string `json:"hashed_family_name,omitempty"`
	RegionCode        string `json:"region_code,omitempty"`
}

type batchRequest struct {
	Encoding string   `json:"encoding"`
	Members  []Member `json:"members"`
}

type Config struct {
	Endpoint    string
	AuthToken   string
	AudienceID  string
	Encoding    string
	Timeout     time.Duration
	Parallelism int
}

type Client struct {
	cfg Config
	hc  *http.Client
	log logger.LoggerInterface
}

func New(cfg Config, log logger.LoggerInterface) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	if cfg.Parallelism <= 0 {
		cfg.Parallelism = 1
	}
	return &Client{
		cfg: cfg,
		hc:  &http.Client{Timeout: cfg.Timeout},
		log: log,
	}
}

// UploadAll submits batches concurrently, bounded by Parallelism. The
// first hard failure cancels the remaining batches.
func (c *Client) UploadAll(ctx context.Context, batches [][]Member) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.cfg.Parallelism)

	for i, members := range batches {
		g.Go(func() error {
			return c.uploadBatch(ctx, i, members)
		})
	}
	return g.Wait()
}

func (c *Client) uploadBatch(ctx context.Context, n int, members []Member) error {
	body, err := json.Marshal(batchRequest{Encoding: c.cfg.Encoding, Members: members})
	if err != nil {
		return fmt.Errorf("encode batch %d: %w", n, err)
	}

	url := fmt.Sprintf("%s/v1/audiences/%s/members:ingest",
		strings.TrimRight(c.cfg.Endpoint, "/"), c.cfg.AudienceID)

	if err := retry.Transient(ctx, retryBudget, func() error {
		return c.post(ctx, url, body)
	}); err != nil {
		return fmt.Errorf("upload batch %d: %w", n, err)
	}

	c.log.Debugw("batch uploaded", "batch", n, "members", len(members))
	return nil
}

func (c *Client) post(ctx context.Context, url string, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return retry.Permanent(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.AuthToken)

	resp, err := c.hc.Do(req)
	if err != nil {
		// Transport errors are worth retrying.
		return err
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	switch {
	case resp.StatusCode < http.StatusMultipleChoices:
		return nil
	case resp.StatusCode < http.StatusInternalServerError:
		// Client errors will not heal on retry.
		return retry.Permanent(fmt.Errorf("ingestion api rejected request: %s", resp.Status))
	default:
		return fmt.Errorf("ingestion api unavailable: %s", resp.Status)
	}
}
