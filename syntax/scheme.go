package syntax

import "errors"

// ErrInvalidScheme is returned by ValidateScheme for a malformed scheme.
var ErrInvalidScheme = errors.New("The scheme value is invalid.")

// ValidateScheme checks a scheme component against RFC 3986, 3.1:
//
//	scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
//
// Schemes never contain percent-encoding, so no charset is involved.
func ValidateScheme(scheme string) error {
	if !isValidScheme(scheme) {
		return ErrInvalidScheme
	}
	return nil
}

func isValidScheme(scheme string) bool {
	if scheme == "" || !isAlpha(scheme[0]) {
		return false
	}

	for i := 1; i < len(scheme); i++ {
		c := scheme[i]
		if !isAlpha(c) && !isDigit(c) && c != '+' && c != '-' && c != '.' {
			return false
		}
	}

	return true
}
