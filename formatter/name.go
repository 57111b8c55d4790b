package formatter

import (
	"regexp"
	"strings"
)

var (
	// Honorifics require the literal '.' delimiter followed by whitespace
	// or end of string, so "mralex" is not an honorific.
	honorificRe = regexp.MustCompile(`(?:mr|mrs|ms|dr)\.(?:\s|$)`)

	// Family-name suffixes must sit at the end of the string behind a
	// comma/whitespace boundary (or start the string), so tokens embedded
	// in a longer word ("boardds") are never stripped.
	suffixRe = regexp.MustCompile(`(?:^|[,\s])\s*(?:jr\.|sr\.|2nd|3rd|ii|iii|iv|v|vi|cpa|dc|dds|vm|jd|md|phd)\s?$`)
)

// FormatGivenName lowercases the name and removes a single honorific
// prefix occurrence ("mr.", "mrs.", "ms.", "dr."). Removal is applied
// once, not repeated.
func FormatGivenName(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrEmptyInput
	}
	s = strings.ToLower(s)

	if loc := honorificRe.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + s[loc[1]:]
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrConsistsSolelyOfPrefix
	}
	return s, nil
}

// FormatFamilyName lowercases the name and strips trailing generational
// and professional suffixes ("jr.", "iii", "dds", ...), repeating until
// none remain so chained suffixes like ", jr., dds" are fully removed.
func FormatFamilyName(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrEmptyInput
	}
	s = strings.ToLower(s)

	for {
		loc := suffixRe.FindStringIndex(s)
		if loc == nil {
			break
		}
		s = s[:loc[0]] + s[loc[1]:]
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrConsistsSolelyOfSuffix
	}
	return s, nil
}
