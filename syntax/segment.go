package syntax

import "golang.org/x/text/encoding"

// The three segment productions from RFC 3986, Appendix A:
//
//	segment       = *pchar
//	segment-nz    = 1*pchar
//	segment-nz-nc = 1*( unreserved / pct-encoded / sub-delims / "@" )
//
// segment-nz-nc exists so that the first segment of a relative-path
// reference cannot contain a colon and be mistaken for a scheme.

func isSegment(s string, enc encoding.Encoding) bool {
	return validEncoded(s, enc, isPchar)
}

func isSegmentNz(s string, enc encoding.Encoding) bool {
	return s != "" && isSegment(s, enc)
}

func isSegmentNzNc(s string, enc encoding.Encoding) bool {
	return s != "" && validEncoded(s, enc, func(c byte) bool {
		return c != ':' && isPchar(c)
	})
}
