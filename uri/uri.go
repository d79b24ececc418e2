// Package uri decomposes a URI reference string into the components
// defined by RFC 3986 and recomposes them, validating each component with
// the syntax package along the way. It builds no persistent model: Parse
// returns a plain struct describing one reference and nothing is retained
// across calls.
package uri

import "strings"

// UriType identifies which path production of RFC 3986, Appendix A the
// reference's path matched.
type UriType int32

const (
	UriTypeAuthorityAbEmpty UriType = iota
	UriTypeAbsolute
	UriTypeRootless
	UriTypeNoscheme
	UriTypeEmpty
)

// UriHostType identifies which host production the authority's host
// matched.
type UriHostType int32

const (
	UriHostTypeNone UriHostType = iota
	UriHostTypeIPv4
	UriHostTypeIPv6
	UriHostTypeIPvFuture
	UriHostTypeRegName
)

// Uri holds the decomposed components of a URI reference. Port is -1 when
// the authority carries no port. HasAuthority, HasQuery and HasFragment
// distinguish absent components from empty ones; their string fields are
// empty when absent.
type Uri struct {
	Type         UriType
	Scheme       string
	Authority    string
	HasAuthority bool
	UserInfo     string
	HostType     UriHostType
	Host         string
	Port         int32
	Path         string
	Query        string
	HasQuery     bool
	Fragment     string
	HasFragment  bool
	PathSegments []string
}

// IsRelativeReference reports whether the reference has no scheme
// (RFC 3986, 4.2).
func (u *Uri) IsRelativeReference() bool {
	return u.Scheme == ""
}

// String recomposes the components into a reference string following
// RFC 3986, 5.3.
func (u *Uri) String() string {
	var b strings.Builder

	if u.Scheme != "" {
		b.WriteString(u.Scheme)
		b.WriteByte(':')
	}

	if u.HasAuthority {
		b.WriteString("//")
		b.WriteString(u.Authority)
	}

	b.WriteString(u.Path)

	if u.HasQuery {
		b.WriteByte('?')
		b.WriteString(u.Query)
	}

	if u.HasFragment {
		b.WriteByte('#')
		b.WriteString(u.Fragment)
	}

	return b.String()
}
