package logutil

import (
	"strings"
	"unicode"
)

// Masking helpers for log output. Skipped-record logs reference the
// offending value, but raw PII must never reach the log stream.

// MaskEmail hides the local part of an e-mail except its first rune.
// Values without an '@' are masked as a generic token.
//
//	"user@example.com" -> "u***@example.com"
//	"u@example.com"    -> "u@example.com"
//	"weird"            -> "w***d"
func MaskEmail(email string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return ""
	}

	at := strings.IndexByte(email, '@')
	if at <= 0 {
		return maskToken(email)
	}

	local := []rune(email[:at])
	domain := email[at:]
	if len(local) <= 1 {
		return email
	}

	var b strings.Builder
	b.Grow(len(local) + len(domain))
	b.WriteRune(local[0])
	for range local[1:] {
		b.WriteByte('*')
	}
	b.WriteString(domain)
	return b.String()
}

// MaskPhone hides all digits except the trailing few (4 when the value
// has more than four digits, 1 otherwise). Formatting runes such as '+',
// '-' and spaces are preserved.
//
//	"+1234567890" -> "+******7890"
//	"+1234"       -> "+***4"
func MaskPhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	runes := []rune(phone)
	total := 0
	for _, r := range runes {
		if unicode.IsDigit(r) {
			total++
		}
	}
	if total == 0 {
		return maskToken(phone)
	}

	keep := 4
	if total <= 4 {
		keep = 1
	}
	seen := 0
	for i := len(runes) - 1; i >= 0; i-- {
		if unicode.IsDigit(runes[i]) {
			seen++
			if seen > keep {
				runes[i] = '*'
			}
		}
	}
	return string(runes)
}

// maskToken keeps the first and last rune of a generic value.
func maskToken(s string) string {
	runes := []rune(s)
	n := len(runes)
	switch {
	case n == 1:
		return s
	case n == 2:
		return string(runes[0]) + "*"
	}

	var b strings.Builder
	b.Grow(len(s))
	b.WriteRune(runes[0])
	for i := 1; i < n-1; i++ {
		b.WriteByte('*')
	}
	b.WriteRune(runes[n-1])
	return b.String()
}
