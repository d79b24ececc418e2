package syntax

import "testing"

func TestCharClasses(t *testing.T) {
	for c := byte('a'); c <= 'z'; c++ {
		if !isAlpha(c) || !isUnreserved(c) || !isPchar(c) {
			t.Fatalf("%q should be unreserved", c)
		}
	}
	for c := byte('A'); c <= 'Z'; c++ {
		if !isAlpha(c) || !isUnreserved(c) {
			t.Fatalf("%q should be unreserved", c)
		}
	}
	for c := byte('0'); c <= '9'; c++ {
		if !isDigit(c) || !isUnreserved(c) || !isHexDigit(c) {
			t.Fatalf("%q should be an unreserved digit", c)
		}
	}

	for _, c := range []byte("-._~") {
		if !isUnreserved(c) {
			t.Fatalf("%q should be unreserved", c)
		}
	}

	for _, c := range []byte("!$&'()*+,;=") {
		if !isSubDelim(c) || isGenDelim(c) {
			t.Fatalf("%q should be a sub-delim only", c)
		}
	}

	for _, c := range []byte(":/?#[]@") {
		if !isGenDelim(c) || isSubDelim(c) {
			t.Fatalf("%q should be a gen-delim only", c)
		}
	}

	// pchar admits ":" and "@" from the gen-delims but nothing else.
	for _, c := range []byte(":@") {
		if !isPchar(c) {
			t.Fatalf("%q should be a pchar", c)
		}
	}
	for _, c := range []byte("/?#[]% \x00\x7f\x80\xff") {
		if isPchar(c) {
			t.Fatalf("%q should not be a pchar", c)
		}
	}

	for _, c := range []byte("abcdefABCDEF") {
		if !isHexDigit(c) {
			t.Fatalf("%q should be a hex digit", c)
		}
	}
	for _, c := range []byte("ghGHz-") {
		if isHexDigit(c) {
			t.Fatalf("%q should not be a hex digit", c)
		}
	}
}
