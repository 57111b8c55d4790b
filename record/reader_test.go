package record_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/pii-ingest/record"
)

func TestReadCSV(t *testing.T) {
	in := strings.NewReader(
		"Email, Phone_Number ,given_name,FAMILY_NAME,region_code,ignored\n" +
			"alexz@example.com,+44-113-496-0987,Alex,Quinn,GB,x\n" +
			"quinny@example.com,,,,,\n")

	recs, err := record.ReadCSV(in)
	require.NoError(t, err)
	require.Len(t, recs, 2)

	assert.Equal(t, record.Record{
		Email:       "alexz@example.com",
		PhoneNumber: "+44-113-496-0987",
		GivenName:   "Alex",
		FamilyName:  "Quinn",
		RegionCode:  "GB",
	}, recs[0])
	assert.Equal(t, "quinny@example.com", recs[1].Email)
	assert.Empty(t, recs[1].PhoneNumber)
}

func TestReadCSV_Empty(t *testing.T) {
	recs, err := record.ReadCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestReadCSV_NoRecognizedColumns(t *testing.T) {
	_, err := record.ReadCSV(strings.NewReader("a,b,c\n1,2,3\n"))
	assert.Error(t, err)
}

func TestReadCSV_RaggedRow(t *testing.T) {
	_, err := record.ReadCSV(strings.NewReader("email,region_code\na@b.co\n"))
	assert.Error(t, err)
}

func TestReadJSON(t *testing.T) {
	in := strings.NewReader(`[
		{"email": "alexz@example.com", "region_code": "GB"},
		{"phone_number": "+44 113 496 0987"}
	]`)

	recs, err := record.ReadJSON(in)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	assert.Equal(t, "alexz@example.com", recs[0].Email)
	assert.Equal(t, "GB", recs[0].RegionCode)
	assert.Equal(t, "+44 113 496 0987", recs[1].PhoneNumber)
}

func TestReadJSON_Malformed(t *testing.T) {
	_, err := record.ReadJSON(strings.NewReader(`{"email": "not-an-array"}`))
	assert.Error(t, err)
}
