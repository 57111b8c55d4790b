package formatter

// The Process helpers chain format, hash and encode for one field kind.
// They are what the upload pipeline calls; the individual Format/Hash/
// Encode functions stay exported for callers that need the intermediate
// values.

func processField(raw string, enc Encoding, format func(string) (string, error)) (string, error) {
	normalized, err := format(raw)
	if err != nil {
		return "", err
	}
	digest, err := HashString(normalized)
	if err != nil {
		return "", err
	}
	return encodeDigest(digest, enc)
}

func encodeDigest(digest []byte, enc Encoding) (string, error) {
	switch enc {
	case Hex:
		return HexEncode(digest)
	case Base64:
		return Base64Encode(digest)
	default:
		return "", ErrUnsupportedEncoding
	}
}

// ProcessEmailAddress normalizes, hashes and encodes an e-mail address.
func ProcessEmailAddress(raw string, enc Encoding) (string, error) {
	return processField(raw, enc, FormatEmailAddress)
}

// ProcessPhoneNumber normalizes, hashes and encodes a phone number.
func ProcessPhoneNumber(raw string, enc Encoding) (string, error) {
	return processField(raw, enc, FormatPhoneNumber)
}

// ProcessGivenName normalizes, hashes and encodes a given name.
func ProcessGivenName(raw string, enc Encoding) (string, error) {
	return processField(raw, enc, FormatGivenName)
}

// ProcessFamilyName normalizes, hashes and encodes a family name.
func ProcessFamilyName(raw string, enc Encoding) (string, error) {
	return processField(raw, enc, FormatFamilyName)
}

// ProcessRegionCode only normalizes. Region codes are sent in clear
// text, so there is no hashing or encoding step.
func ProcessRegionCode(raw string) (string, error) {
	return FormatRegionCode(raw)
}
