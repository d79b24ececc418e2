package syntax

import (
	"errors"

	"golang.org/x/text/encoding"
)

var (
	// ErrInvalidQuery is returned by ValidateQuery for a malformed query.
	ErrInvalidQuery = errors.New("The query value is invalid.")

	// ErrInvalidFragment is returned by ValidateFragment for a malformed
	// fragment.
	ErrInvalidFragment = errors.New("The fragment value is invalid.")
)

// query and fragment share one production (RFC 3986, 3.4 and 3.5):
//
//	query    = *( pchar / "/" / "?" )
//	fragment = *( pchar / "/" / "?" )

// ValidateQuery checks a query component. The empty string is a legal
// query; an absent query is the caller's concern.
func ValidateQuery(query string, charset encoding.Encoding) error {
	if !isQueryOrFragment(query, charset) {
		return ErrInvalidQuery
	}
	return nil
}

// ValidateFragment checks a fragment component.
func ValidateFragment(fragment string, charset encoding.Encoding) error {
	if !isQueryOrFragment(fragment, charset) {
		return ErrInvalidFragment
	}
	return nil
}

func isQueryOrFragment(s string, charset encoding.Encoding) bool {
	return validEncoded(s, charset, func(c byte) bool {
		return isPchar(c) || c == '/' || c == '?'
	})
}
