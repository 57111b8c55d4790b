package formatter

import "errors"

// Validation failures returned by the format/hash/encode functions.
// All of them are caller-correctable input errors; none are retryable.
var (
	// ErrEmptyInput is returned when a value is empty or whitespace-only
	// where a non-blank value is required.
	ErrEmptyInput = errors.New("input is empty")

	// ErrInvalidFormat is returned when the structural shape of a value is
	// violated (missing or extra '@', embedded whitespace in an e-mail).
	ErrInvalidFormat = errors.New("invalid format")

	ErrEmptyLocalPart                   = errors.New("e-mail local part is empty")
	ErrEmptyDomain                      = errors.New("e-mail domain is empty")
	ErrEmptyLocalPartAfterNormalization = errors.New("e-mail local part is empty after normalization")

	// ErrNoDigits is returned when a phone number contains no digit
	// characters.
	ErrNoDigits = errors.New("phone number contains no digits")

	ErrInvalidLength     = errors.New("region code must be exactly two characters")
	ErrInvalidCharacters = errors.New("region code must consist of letters A-Z")

	ErrConsistsSolelyOfPrefix = errors.New("name consists solely of an honorific prefix")
	ErrConsistsSolelyOfSuffix = errors.New("name consists solely of suffixes")

	// ErrUnsupportedEncoding is returned for an Encoding value outside the
	// closed {Hex, Base64} set. This is a usage error, not bad input data.
	ErrUnsupportedEncoding = errors.New("unsupported digest encoding")
)
