package formatter

import "strings"

// Encoding selects how the Process helpers render a SHA-256 digest.
// The set is closed: hex or standard base64, nothing else.
type Encoding int

const (
	Hex Encoding = iota
	Base64
)

func (e Encoding) String() string {
	switch e {
	case Hex:
		return "hex"
	case Base64:
		return "base64"
	default:
		return "unknown"
	}
}

// ParseEncoding maps the config/CLI spelling of an encoding to its
// Encoding value.
func ParseEncoding(s string) (Encoding, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex":
		return Hex, nil
	case "base64":
		return Base64, nil
	default:
		return 0, ErrUnsupportedEncoding
	}
}
