package formatter

import (
	"strings"
	"unicode"
)

// FormatPhoneNumber reduces a phone number to its digits prefixed with
// '+'. Formatting characters ('+', '-', parentheses, letters) are
// dropped. Length and country-code plausibility are deliberately not
// checked here; the ingestion API owns that validation.
func FormatPhoneNumber(raw string) (string, error) {
	stripped := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)
	if stripped == "" {
		return "", ErrEmptyInput
	}

	var b strings.Builder
	b.Grow(len(stripped) + 1)
	b.WriteByte('+')
	for _, r := range stripped {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 1 {
		return "", ErrNoDigits
	}
	return b.String(), nil
}
