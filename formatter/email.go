package formatter

import (
	"strings"
	"unicode"
)

// Gmail treats dots in the local part as insignificant, so they must be
// removed to make the same mailbox hash identically across sources.
var dotInsensitiveDomains = map[string]struct{}{
	"gmail.com":      {},
	"googlemail.com": {},
}

// FormatEmailAddress canonicalizes an e-mail address for hashing: trim,
// reject embedded whitespace, lowercase, require exactly one '@' with a
// non-empty local part and domain, and drop local-part dots for Gmail
// domains.
func FormatEmailAddress(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", ErrEmptyInput
	}
	if strings.ContainsFunc(s, unicode.IsSpace) {
		return "", ErrInvalidFormat
	}
	s = strings.ToLower(s)

	local, domain, found := strings.Cut(s, "@")
	if !found || strings.Contains(domain, "@") {
		return "", ErrInvalidFormat
	}
	if local == "" {
		return "", ErrEmptyLocalPart
	}
	if domain == "" {
		return "", ErrEmptyDomain
	}

	if _, ok := dotInsensitiveDomains[domain]; ok {
		local = strings.ReplaceAll(local, ".", "")
		if local == "" {
			return "", ErrEmptyLocalPartAfterNormalization
		}
	}

	return local + "@" + domain, nil
}
