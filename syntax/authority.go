package syntax

import (
	"errors"
	"net"
	"strings"

	"golang.org/x/text/encoding"
)

var (
	// ErrInvalidAuthority is returned by ValidateAuthority when any part
	// of the authority is malformed.
	ErrInvalidAuthority = errors.New("The authority value is invalid.")

	// ErrInvalidUserinfo is returned by ValidateUserinfo for a malformed
	// userinfo.
	ErrInvalidUserinfo = errors.New("The userinfo value is invalid.")

	// ErrInvalidHost is returned by ValidateHost for a malformed host.
	ErrInvalidHost = errors.New("The host value is invalid.")

	// ErrInvalidPort is returned by ValidatePort for a malformed port.
	ErrInvalidPort = errors.New("The port value is invalid.")
)

// HostKind identifies which host production a valid host matched.
type HostKind int

const (
	HostKindNone HostKind = iota // empty host
	HostKindIPv4
	HostKindIPv6
	HostKindIPvFuture
	HostKindRegName
)

// ValidateUserinfo checks a userinfo component against RFC 3986, 3.2.1:
//
//	userinfo = *( unreserved / pct-encoded / sub-delims / ":" )
func ValidateUserinfo(userinfo string, charset encoding.Encoding) error {
	if !isValidUserinfo(userinfo, charset) {
		return ErrInvalidUserinfo
	}
	return nil
}

func isValidUserinfo(userinfo string, charset encoding.Encoding) bool {
	return validEncoded(userinfo, charset, func(c byte) bool {
		return isUnreserved(c) || isSubDelim(c) || c == ':'
	})
}

// ValidateHost checks a host component against RFC 3986, 3.2.2:
//
//	host = IP-literal / IPv4address / reg-name
func ValidateHost(host string, charset encoding.Encoding) error {
	_, err := ClassifyHost(host, charset)
	return err
}

// ClassifyHost validates a host component and reports which production it
// matched. The empty string is a legal (empty) reg-name and classifies as
// HostKindNone.
func ClassifyHost(host string, charset encoding.Encoding) (HostKind, error) {
	switch {
	case host == "":
		return HostKindNone, nil

	case strings.HasPrefix(host, "["):
		if !strings.HasSuffix(host, "]") {
			return HostKindNone, ErrInvalidHost
		}

		literal := host[1 : len(host)-1]
		if isIPvFuture(literal) {
			return HostKindIPvFuture, nil
		}
		if isIPv6Address(literal) {
			return HostKindIPv6, nil
		}
		return HostKindNone, ErrInvalidHost

	case isIPv4Address(host):
		return HostKindIPv4, nil

	case isRegName(host, charset):
		return HostKindRegName, nil

	default:
		return HostKindNone, ErrInvalidHost
	}
}

// IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
func isIPvFuture(literal string) bool {
	if len(literal) < 4 || (literal[0] != 'v' && literal[0] != 'V') {
		return false
	}

	dot := strings.IndexByte(literal, '.')
	if dot < 2 {
		return false
	}

	for i := 1; i < dot; i++ {
		if !isHexDigit(literal[i]) {
			return false
		}
	}

	if dot == len(literal)-1 {
		return false
	}

	for i := dot + 1; i < len(literal); i++ {
		c := literal[i]
		if !isUnreserved(c) && !isSubDelim(c) && c != ':' {
			return false
		}
	}

	return true
}

func isIPv6Address(literal string) bool {
	// net.ParseIP accepts both address families; require a colon so a
	// dotted quad inside brackets does not pass as IPv6.
	return strings.Contains(literal, ":") && net.ParseIP(literal) != nil
}

// IPv4address per RFC 3986 is four dec-octets, each 0-255 with no leading
// zeros. net.ParseIP is looser (it also takes forms the grammar forbids),
// so the dec-octet rule is checked here.
func isIPv4Address(host string) bool {
	octets := strings.Split(host, ".")
	if len(octets) != 4 {
		return false
	}

	for _, octet := range octets {
		if !isDecOctet(octet) {
			return false
		}
	}

	return true
}

func isDecOctet(s string) bool {
	if len(s) == 0 || len(s) > 3 {
		return false
	}

	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return false
		}
	}

	if len(s) > 1 && s[0] == '0' {
		return false
	}

	return len(s) == 1 || len(s) == 2 ||
		s < "256" // three digits, lexicographic compare is numeric here
}

// reg-name = *( unreserved / pct-encoded / sub-delims )
func isRegName(host string, charset encoding.Encoding) bool {
	return validEncoded(host, charset, func(c byte) bool {
		return isUnreserved(c) || isSubDelim(c)
	})
}

// ValidatePort checks a port component against RFC 3986, 3.2.3:
//
//	port = *DIGIT
func ValidatePort(port string) error {
	for i := 0; i < len(port); i++ {
		if !isDigit(port[i]) {
			return ErrInvalidPort
		}
	}
	return nil
}

// ValidateAuthority checks a full authority component against RFC 3986,
// 3.2 by splitting it into userinfo, host and port and validating each:
//
//	authority = [ userinfo "@" ] host [ ":" port ]
func ValidateAuthority(authority string, charset encoding.Encoding) error {
	userinfo, host, port, hasUserinfo, hasPort := SplitAuthority(authority)

	if hasUserinfo {
		if err := ValidateUserinfo(userinfo, charset); err != nil {
			return ErrInvalidAuthority
		}
	}

	if err := ValidateHost(host, charset); err != nil {
		return ErrInvalidAuthority
	}

	if hasPort {
		if err := ValidatePort(port); err != nil {
			return ErrInvalidAuthority
		}
	}

	return nil
}

// SplitAuthority separates an authority into its userinfo, host and port
// parts without validating them. The userinfo boundary is the last "@"
// (neither userinfo nor host may contain one), and the port boundary is
// the last ":" past any IP-literal bracket.
func SplitAuthority(authority string) (userinfo, host, port string, hasUserinfo, hasPort bool) {
	host = authority

	if at := strings.LastIndexByte(host, '@'); at >= 0 {
		userinfo, host = host[:at], host[at+1:]
		hasUserinfo = true
	}

	if colon := strings.LastIndexByte(host, ':'); colon > strings.LastIndexByte(host, ']') {
		host, port = host[:colon], host[colon+1:]
		hasPort = true
	}

	return
}
