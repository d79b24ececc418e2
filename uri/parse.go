package uri

import (
	"strconv"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/tg123/rfc3986/syntax"
)

// Parse decomposes a URI reference into its components following the
// first-match-wins reading of RFC 3986, Appendix B, then validates each
// component against its grammar. Relative references (no scheme) are legal
// inputs. charset governs percent-encoded octet legality; nil means UTF-8.
//
// The first component that fails validation aborts the parse with that
// component's error.
func Parse(s string, charset encoding.Encoding) (*Uri, error) {
	u := &Uri{Port: -1}

	// Fragment and query claim the tail of the reference, in that order.
	if i := strings.IndexByte(s, '#'); i >= 0 {
		u.Fragment, u.HasFragment = s[i+1:], true
		s = s[:i]
	}

	if i := strings.IndexByte(s, '?'); i >= 0 {
		u.Query, u.HasQuery = s[i+1:], true
		s = s[:i]
	}

	// A ":" before any "/" terminates a scheme. Without one the
	// reference is relative and the colon rule for the first path
	// segment applies instead.
	if i := strings.IndexByte(s, ':'); i >= 0 && !strings.ContainsRune(s[:i], '/') {
		u.Scheme = s[:i]
		s = s[i+1:]

		if err := syntax.ValidateScheme(u.Scheme); err != nil {
			return nil, err
		}
	}

	if strings.HasPrefix(s, "//") {
		s = s[2:]
		u.HasAuthority = true

		if i := strings.IndexByte(s, '/'); i >= 0 {
			u.Authority, s = s[:i], s[i:]
		} else {
			u.Authority, s = s, ""
		}

		if err := u.parseAuthority(charset); err != nil {
			return nil, err
		}
	}

	u.Path = s

	relative := u.IsRelativeReference()
	if err := syntax.ValidatePath(u.Path, charset, relative, u.HasAuthority); err != nil {
		return nil, err
	}

	if u.HasQuery {
		if err := syntax.ValidateQuery(u.Query, charset); err != nil {
			return nil, err
		}
	}

	if u.HasFragment {
		if err := syntax.ValidateFragment(u.Fragment, charset); err != nil {
			return nil, err
		}
	}

	u.Type = classifyPath(u.Path, u.HasAuthority, relative)
	u.PathSegments = splitPathSegments(u.Path)

	return u, nil
}

func (u *Uri) parseAuthority(charset encoding.Encoding) error {
	userinfo, host, port, hasUserinfo, hasPort := syntax.SplitAuthority(u.Authority)

	if hasUserinfo {
		if err := syntax.ValidateUserinfo(userinfo, charset); err != nil {
			return err
		}
		u.UserInfo = userinfo
	}

	kind, err := syntax.ClassifyHost(host, charset)
	if err != nil {
		return err
	}
	u.Host = host
	u.HostType = hostType(kind)

	if hasPort && port != "" {
		if err := syntax.ValidatePort(port); err != nil {
			return err
		}

		n, err := strconv.ParseInt(port, 10, 32)
		if err != nil {
			return syntax.ErrInvalidPort
		}
		u.Port = int32(n)
	}

	return nil
}

func hostType(kind syntax.HostKind) UriHostType {
	switch kind {
	case syntax.HostKindIPv4:
		return UriHostTypeIPv4
	case syntax.HostKindIPv6:
		return UriHostTypeIPv6
	case syntax.HostKindIPvFuture:
		return UriHostTypeIPvFuture
	case syntax.HostKindRegName:
		return UriHostTypeRegName
	default:
		return UriHostTypeNone
	}
}

func classifyPath(path string, hasAuthority, relative bool) UriType {
	switch {
	case hasAuthority:
		return UriTypeAuthorityAbEmpty
	case path == "":
		return UriTypeEmpty
	case path[0] == '/':
		return UriTypeAbsolute
	case relative:
		return UriTypeNoscheme
	default:
		return UriTypeRootless
	}
}

// splitPathSegments splits a path on "/" with the leading slash of rooted
// paths dropped, so "/a/b" and "a/b" both yield ["a", "b"]. Trailing empty
// segments are kept: "/a/" yields ["a", ""].
func splitPathSegments(path string) []string {
	if path == "" {
		return nil
	}
	if path[0] == '/' {
		path = path[1:]
	}
	return strings.Split(path, "/")
}
