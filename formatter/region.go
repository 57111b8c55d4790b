package formatter

import "strings"

// FormatRegionCode normalizes an ISO-3166-1 alpha-2 style code: trim and
// uppercase, exactly two A-Z letters. Shape-only validation; the result
// is not checked against the list of assigned country codes.
func FormatRegionCode(raw string) (string, error) {
	s := strings.ToUpper(strings.TrimSpace(raw))
	r := []rune(s)
	if len(r) != 2 {
		return "", ErrInvalidLength
	}
	if !isUpperAZ(r[0]) || !isUpperAZ(r[1]) {
		return "", ErrInvalidCharacters
	}
	return s, nil
}

func isUpperAZ(r rune) bool {
	return r >= 'A' && r <= 'Z'
}
