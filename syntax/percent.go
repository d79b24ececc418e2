package syntax

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding"
)

// scanPercentRun consumes the maximal run of consecutive pct-encoded
// triplets in s starting at i, which must point at a '%'. It returns the
// index of the first byte past the run and the decoded octets, or ok=false
// when a triplet is malformed (truncated or non-hex digits).
//
//	pct-encoded = "%" HEXDIG HEXDIG
func scanPercentRun(s string, i int) (next int, octets []byte, ok bool) {
	for i < len(s) && s[i] == '%' {
		if i+2 >= len(s) || !isHexDigit(s[i+1]) || !isHexDigit(s[i+2]) {
			return 0, nil, false
		}
		octets = append(octets, unhex(s[i+1])<<4|unhex(s[i+2]))
		i += 3
	}
	return i, octets, true
}

func unhex(c byte) byte {
	switch {
	case isDigit(c):
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// decodableOctets reports whether the octet sequence collected from a run
// of pct-encoded triplets forms defined characters under enc. A nil enc is
// treated as UTF-8. The x/text decoders substitute U+FFFD for malformed
// input instead of reporting an error, so a substitution in the output is
// counted as a decode failure unless the replacement character itself was
// encoded.
func decodableOctets(octets []byte, enc encoding.Encoding) bool {
	if enc == nil {
		return utf8.Valid(octets)
	}
	decoded, err := enc.NewDecoder().Bytes(octets)
	if err != nil {
		return false
	}
	if !bytes.ContainsRune(decoded, utf8.RuneError) {
		return true
	}
	// The input may legitimately encode U+FFFD.
	replacement := replacementOctets(enc)
	return len(replacement) > 0 && bytes.Contains(octets, replacement)
}

func replacementOctets(enc encoding.Encoding) []byte {
	encoded, err := enc.NewEncoder().Bytes([]byte(string(utf8.RuneError)))
	if err != nil {
		return nil
	}
	return encoded
}

// validEncoded reports whether s consists solely of bytes satisfying
// allowed plus well-formed pct-encoded runs decodable under enc.
// Consecutive triplets are decoded as one octet sequence so that multibyte
// characters split across several triplets validate as a unit.
func validEncoded(s string, enc encoding.Encoding, allowed func(byte) bool) bool {
	for i := 0; i < len(s); {
		if s[i] == '%' {
			next, octets, ok := scanPercentRun(s, i)
			if !ok || !decodableOctets(octets, enc) {
				return false
			}
			i = next
			continue
		}
		if !allowed(s[i]) {
			return false
		}
		i++
	}
	return true
}
