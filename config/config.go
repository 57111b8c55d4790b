package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vortex-fintech/pii-ingest/validator"
)

const (
	defaultBatchSize   = 500
	defaultParallelism = 4
	defaultTimeoutMs   = 30_000
	minTimeoutMs       = 1_000
)

// Config is the uploader configuration, read from a YAML file.
type Config struct {
	// Endpoint is the base URL of the ingestion API.
	Endpoint string `yaml:"endpoint" validate:"required,http_url"`

	// AuthToken is sent as a bearer token on every request.
	AuthToken string `yaml:"auth_token" validate:"required"`

	// AudienceID identifies the audience the members are ingested into.
	AudienceID string `yaml:"audience_id" validate:"required"`

	// Encoding selects the digest rendering: "hex" or "base64".
	Encoding string `yaml:"encoding" validate:"oneof=hex base64"`

	BatchSize   int `yaml:"batch_size" validate:"gte=1,lte=10000"`
	Parallelism int `yaml:"parallelism" validate:"gte=1,lte=64"`
	TimeoutMs   int `yaml:"timeout_ms"`

	// Env switches the logger profile (development|debug|production).
	Env string `yaml:"env"`
}

func Default() *Config {
	return &Config{
		Encoding:    "hex",
		BatchSize:   defaultBatchSize,
		Parallelism: defaultParallelism,
		TimeoutMs:   defaultTimeoutMs,
		Env:         "production",
	}
}

// Load reads, normalizes and validates the YAML config at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.normalize()
	if fields := validator.Validate(*cfg); fields != nil {
		return nil, fmt.Errorf("invalid config: %v", fields)
	}
	return cfg, nil
}

func (c *Config) normalize() {
	c.Endpoint = strings.TrimSpace(c.Endpoint)
	c.Encoding = strings.ToLower(strings.TrimSpace(c.Encoding))
	c.Env = strings.TrimSpace(c.Env)

	// Zero or negative timeouts fall back to the default; very small
	// values are clamped rather than rejected.
	if c.TimeoutMs <= 0 {
		c.TimeoutMs = defaultTimeoutMs
	} else if c.TimeoutMs < minTimeoutMs {
		c.TimeoutMs = minTimeoutMs
	}
}

// Timeout is the per-request HTTP timeout.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutMs) * time.Millisecond
}
