// Package record reads raw contact records from local CSV or JSON
// files. Field contents are not validated here; the formatter owns
// validation when the record is processed.
package record

// Record is one row/object of raw PII as read from the input file.
// Missing fields stay empty.
type Record struct {
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	GivenName   string `json:"given_name"`
	FamilyName  string `json:"family_name"`
	RegionCode  string `json:"region_code"`
}
