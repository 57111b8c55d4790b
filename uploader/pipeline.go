// Package uploader turns raw records into hashed ingestion members and
// drives the batch upload. Per-record validation failures are skipped
// and reported, never fatal; only upload failures abort the run.
package uploader

import (
	"context"
	"errors"
	"strings"

	"github.com/vortex-fintech/pii-ingest/errx"
	"github.com/vortex-fintech/pii-ingest/formatter"
	"github.com/vortex-fintech/pii-ingest/ingest"
	"github.com/vortex-fintech/pii-ingest/logger"
	"github.com/vortex-fintech/pii-ingest/logutil"
	"github.com/vortex-fintech/pii-ingest/record"
)

// Submitter is the ingest client seam; tests substitute a stub.
type Submitter interface {
	UploadAll(ctx context.Context, batches [][]ingest.Member) error
}

type Stats struct {
	Read     int
	Skipped  int
	Uploaded int
	Batches  int
}

var (
	ErrNoIdentifiers  = errors.New("record has no usable identifiers")
	ErrPartialAddress = errors.New("given name, family name and region code must be provided together")
)

type Pipeline struct {
	enc       formatter.Encoding
	batchSize int
	submitter Submitter
	log       logger.LoggerInterface
}

func New(enc formatter.Encoding, batchSize int, submitter Submitter, log logger.LoggerInterface) *Pipeline {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &Pipeline{enc: enc, batchSize: batchSize, submitter: submitter, log: log}
}

// Run formats and hashes every record, skipping invalid ones, then
// submits the valid members in batches.
func (p *Pipeline) Run(ctx context.Context, records []record.Record) (Stats, error) {
	stats := Stats{Read: len(records)}

	members := make([]ingest.Member, 0, len(records))
	for i, rec := range records {
		m, err := p.buildMember(rec)
		if err != nil {
			stats.Skipped++
			p.log.Warnw("skipping record",
				"row", i+1,
				"reason", err.Error(),
				"email", logutil.MaskEmail(rec.Email),
				"phone", logutil.MaskPhone(rec.PhoneNumber),
			)
			continue
		}
		members = append(members, m)
	}

	if len(members) == 0 {
		p.log.Warnw("no valid records to upload", "read", stats.Read, "skipped", stats.Skipped)
		return stats, nil
	}

	batches := chunk(members, p.batchSize)
	if err := p.submitter.UploadAll(ctx, batches); err != nil {
		return stats, errx.Op("upload", err)
	}

	stats.Uploaded = len(members)
	stats.Batches = len(batches)
	return stats, nil
}

// buildMember hashes every present field of one record. Blank fields are
// treated as absent; the name/region triple is all-or-nothing because a
// partial address cannot be matched.
func (p *Pipeline) buildMember(rec record.Record) (ingest.Member, error) {
	var m ingest.Member
	var usable bool

	if !blank(rec.Email) {
		v, err := formatter.ProcessEmailAddress(rec.Email, p.enc)
		if err != nil {
			return m, errx.Field("email", err)
		}
		m.HashedEmail = v
		usable = true
	}

	if !blank(rec.PhoneNumber) {
		v, err := formatter.ProcessPhoneNumber(rec.PhoneNumber, p.enc)
		if err != nil {
			return m, errx.Field("phone_number", err)
		}
		m.HashedPhoneNumber = v
		usable = true
	}

	hasGiven, hasFamily, hasRegion := !blank(rec.GivenName), !blank(rec.FamilyName), !blank(rec.RegionCode)
	if hasGiven || hasFamily || hasRegion {
		if !(hasGiven && hasFamily && hasRegion) {
			return m, ErrPartialAddress
		}

		given, err := formatter.ProcessGivenName(rec.GivenName, p.enc)
		if err != nil {
			return m, errx.Field("given_name", err)
		}
		family, err := formatter.ProcessFamilyName(rec.FamilyName, p.enc)
		if err != nil {
			return m, errx.Field("family_name", err)
		}
		region, err := formatter.ProcessRegionCode(rec.RegionCode)
		if err != nil {
			return m, errx.Field("region_code", err)
		}

		m.HashedGivenName = given
		m.HashedFamilyName = family
		m.RegionCode = region
		usable = true
	}

	if !usable {
		return m, ErrNoIdentifiers
	}
	return m, nil
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func chunk(members []ingest.Member, size int) [][]ingest.Member {
	var out [][]ingest.Member
	for len(members) > size {
		out = append(out, members[:size])
		members = members[size:]
	}
	return append(out, members)
}
