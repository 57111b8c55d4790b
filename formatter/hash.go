package formatter

import (
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"strings"
)

// DigestSize is the size of the raw digest returned by HashString.
const DigestSize = sha256.Size

// HashString computes the SHA-256 digest of the trimmed UTF-8 bytes of s
// and returns the 32 raw digest bytes.
func HashString(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, ErrEmptyInput
	}
	sum := sha256.Sum256([]byte(s))
	return sum[:], nil
}

// HexEncode renders digest bytes as lowercase hex, two characters per
// byte.
func HexEncode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", ErrEmptyInput
	}
	return hex.EncodeToString(b), nil
}

// Base64Encode renders digest bytes as standard base64 with padding.
func Base64Encode(b []byte) (string, error) {
	if len(b) == 0 {
		return "", ErrEmptyInput
	}
	return base64.StdEncoding.EncodeToString(b), nil
}
