// Package syntax validates URI reference components against the grammar
// collected in RFC 3986, Appendix A. Each component gets a ValidateX entry
// point that returns a fixed error on reject; the character-class and
// grammar-branch helpers underneath report plain booleans so that trying a
// branch that does not match stays allocation free.
package syntax

// The grammar is defined over US-ASCII, so classification works on bytes.
// Octets >= 0x80 are never members of any class and must arrive
// percent-encoded.

func isAlpha(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isHexDigit(c byte) bool {
	return isDigit(c) || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

// unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~"
func isUnreserved(c byte) bool {
	return isAlpha(c) || isDigit(c) || c == '-' || c == '.' || c == '_' || c == '~'
}

// sub-delims = "!" / "$" / "&" / "'" / "(" / ")" / "*" / "+" / "," / ";" / "="
func isSubDelim(c byte) bool {
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=':
		return true
	}
	return false
}

// gen-delims = ":" / "/" / "?" / "#" / "[" / "]" / "@"
func isGenDelim(c byte) bool {
	switch c {
	case ':', '/', '?', '#', '[', ']', '@':
		return true
	}
	return false
}

// isPchar covers the literal members of pchar, i.e. everything except
// pct-encoded which spans three bytes and is handled by scanPercentRun.
//
//	pchar = unreserved / pct-encoded / sub-delims / ":" / "@"
func isPchar(c byte) bool {
	return isUnreserved(c) || isSubDelim(c) || c == ':' || c == '@'
}
