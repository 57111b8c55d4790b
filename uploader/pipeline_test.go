package uploader_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/pii-ingest/formatter"
	"github.com/vortex-fintech/pii-ingest/ingest"
	"github.com/vortex-fintech/pii-ingest/logger"
	"github.com/vortex-fintech/pii-ingest/record"
	"github.com/vortex-fintech/pii-ingest/uploader"
)

type stubSubmitter struct {
	batches [][]ingest.Member
	err     error
}

func (s *stubSubmitter) UploadAll(_ context.Context, batches [][]ingest.Member) error {
	if s.err != nil {
		return s.err
	}
	s.batches = batches
	return nil
}

func TestRun_UploadsValidRecords(t *testing.T) {
	sub := &stubSubmitter{}
	pipe := uploader.New(formatter.Hex, 10, sub, logger.Nop())

	records := []record.Record{
		{Email: "alexz@example.com"},
		{
			PhoneNumber: "+44-113-496-0987",
			GivenName:   " Mr. Alex ",
			FamilyName:  "quinn, jr., dds",
			RegionCode:  "gb",
		},
	}

	stats, err := pipe.Run(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, uploader.Stats{Read: 2, Skipped: 0, Uploaded: 2, Batches: 1}, stats)

	require.Len(t, sub.batches, 1)
	members := sub.batches[0]
	require.Len(t, members, 2)

	wantEmail, _ := formatter.ProcessEmailAddress("alexz@example.com", formatter.Hex)
	assert.Equal(t, wantEmail, members[0].HashedEmail)
	assert.Empty(t, members[0].RegionCode)

	wantPhone, _ := formatter.ProcessPhoneNumber("+44-113-496-0987", formatter.Hex)
	wantGiven, _ := formatter.ProcessGivenName(" Mr. Alex ", formatter.Hex)
	wantFamily, _ := formatter.ProcessFamilyName("quinn, jr., dds", formatter.Hex)
	assert.Equal(t, wantPhone, members[1].HashedPhoneNumber)
	assert.Equal(t, wantGiven, members[1].HashedGivenName)
	assert.Equal(t, wantFamily, members[1].HashedFamilyName)
	assert.Equal(t, "GB", members[1].RegionCode)
}

func TestRun_SkipsInvalidRecords(t *testing.T) {
	sub := &stubSubmitter{}
	pipe := uploader.New(formatter.Base64, 10, sub, logger.Nop())

	records := []record.Record{
		{Email: "not an email@example.com"}, // embedded whitespace
		{GivenName: "Alex"},                 // partial address
		{},                                  // nothing usable
		{Email: "quinny@example.com"},
	}

	stats, err := pipe.Run(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, uploader.Stats{Read: 4, Skipped: 3, Uploaded: 1, Batches: 1}, stats)
	require.Len(t, sub.batches, 1)
	require.Len(t, sub.batches[0], 1)
}

func TestRun_NothingToUpload(t *testing.T) {
	sub := &stubSubmitter{}
	pipe := uploader.New(formatter.Hex, 10, sub, logger.Nop())

	stats, err := pipe.Run(context.Background(), []record.Record{{Email: "@broken"}})
	require.NoError(t, err)
	assert.Equal(t, uploader.Stats{Read: 1, Skipped: 1}, stats)
	assert.Empty(t, sub.batches)
}

func TestRun_Batching(t *testing.T) {
	sub := &stubSubmitter{}
	pipe := uploader.New(formatter.Hex, 2, sub, logger.Nop())

	records := []record.Record{
		{Email: "a@example.com"},
		{Email: "b@example.com"},
		{Email: "c@example.com"},
	}

	stats, err := pipe.Run(context.Background(), records)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Batches)
	require.Len(t, sub.batches, 2)
	assert.Len(t, sub.batches[0], 2)
	assert.Len(t, sub.batches[1], 1)
}

func TestRun_UploadFailure(t *testing.T) {
	sub := &stubSubmitter{err: errors.New("ingestion api unavailable")}
	pipe := uploader.New(formatter.Hex, 10, sub, logger.Nop())

	stats, err := pipe.Run(context.Background(), []record.Record{{Email: "a@example.com"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upload")
	assert.Zero(t, stats.Uploaded)
}
