package syntax

import (
	"errors"
	"strings"

	"golang.org/x/text/encoding"
)

// ErrInvalidPath is returned by ValidatePath when the path matches none of
// the grammar productions applicable in the given context.
var ErrInvalidPath = errors.New("The path value is invalid.")

// ValidatePath checks a path component against RFC 3986, 3.3 and the path
// productions of Appendix A:
//
//	path-abempty  = *( "/" segment )
//	path-absolute = "/" [ segment-nz *( "/" segment ) ]
//	path-noscheme = segment-nz-nc *( "/" segment )
//	path-rootless = segment-nz *( "/" segment )
//	path-empty    = 0<pchar>
//
// When the reference has an authority the path must be a path-abempty.
// Otherwise path-empty and path-absolute are always admissible, plus
// path-noscheme for a relative reference or path-rootless for one with a
// scheme. The empty string stands in for an absent path. charset governs
// which percent-encoded octet sequences are decodable; nil means UTF-8.
func ValidatePath(path string, charset encoding.Encoding, relativeReference, hasAuthority bool) error {
	if isValidPath(path, charset, relativeReference, hasAuthority) {
		return nil
	}
	return ErrInvalidPath
}

func isValidPath(path string, charset encoding.Encoding, relativeReference, hasAuthority bool) bool {
	if hasAuthority {
		// Only path-abempty may follow an authority. The "//" that
		// introduced the authority was consumed upstream, so the path
		// seen here begins at the first slash after the authority.
		return isPathAbempty(path, charset)
	}

	if isPathEmpty(path) {
		return true
	}

	if isPathAbsolute(path, charset) {
		return true
	}

	if relativeReference {
		return isPathNoscheme(path, charset)
	}

	return isPathRootless(path, charset)
}

func isPathEmpty(path string) bool {
	return path == ""
}

func isPathAbempty(path string, charset encoding.Encoding) bool {
	if isPathEmpty(path) {
		return true
	}

	if path[0] != '/' {
		return false
	}

	// Split with trailing empties retained so "/a/" yields an explicit
	// empty final segment. Empty segments are legal here.
	for _, segment := range strings.Split(path[1:], "/") {
		if !isSegment(segment, charset) {
			return false
		}
	}

	return true
}

func isPathAbsolute(path string, charset encoding.Encoding) bool {
	// Callers check isPathEmpty first, so path is non-empty here.
	if path[0] != '/' {
		return false
	}

	if len(path) == 1 {
		return true
	}

	segments := strings.Split(path[1:], "/")

	// The first segment must be non-empty, which also rules out a
	// leading "//" when no authority is present.
	if !isSegmentNz(segments[0], charset) {
		return false
	}

	for _, segment := range segments[1:] {
		if !isSegment(segment, charset) {
			return false
		}
	}

	return true
}

func isPathNoscheme(path string, charset encoding.Encoding) bool {
	segments := strings.Split(path, "/")

	// No colon in the first segment, or it could be read as a scheme.
	if !isSegmentNzNc(segments[0], charset) {
		return false
	}

	for _, segment := range segments[1:] {
		if !isSegment(segment, charset) {
			return false
		}
	}

	return true
}

func isPathRootless(path string, charset encoding.Encoding) bool {
	segments := strings.Split(path, "/")

	if !isSegmentNz(segments[0], charset) {
		return false
	}

	for _, segment := range segments[1:] {
		if !isSegment(segment, charset) {
			return false
		}
	}

	return true
}
