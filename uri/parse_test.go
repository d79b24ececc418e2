package uri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/encoding/unicode"

	"github.com/tg123/rfc3986/syntax"
)

func TestParseFullReference(t *testing.T) {
	u, err := Parse("https://user:pw@example.com:8080/a/b?q=1#frag", unicode.UTF8)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, UriTypeAuthorityAbEmpty, u.Type)
	assert.Equal(t, "https", u.Scheme)
	assert.Equal(t, "user:pw@example.com:8080", u.Authority)
	assert.True(t, u.HasAuthority)
	assert.Equal(t, "user:pw", u.UserInfo)
	assert.Equal(t, UriHostTypeRegName, u.HostType)
	assert.Equal(t, "example.com", u.Host)
	assert.Equal(t, int32(8080), u.Port)
	assert.Equal(t, "/a/b", u.Path)
	assert.Equal(t, []string{"a", "b"}, u.PathSegments)
	assert.Equal(t, "q=1", u.Query)
	assert.True(t, u.HasQuery)
	assert.Equal(t, "frag", u.Fragment)
	assert.True(t, u.HasFragment)
	assert.False(t, u.IsRelativeReference())
}

func TestParseMinimal(t *testing.T) {
	u, err := Parse("", unicode.UTF8)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, UriTypeEmpty, u.Type)
	assert.True(t, u.IsRelativeReference())
	assert.False(t, u.HasAuthority)
	assert.Equal(t, int32(-1), u.Port)
	assert.Nil(t, u.PathSegments)
}

func TestParseRootless(t *testing.T) {
	u, err := Parse("mailto:john@example.com", unicode.UTF8)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, UriTypeRootless, u.Type)
	assert.Equal(t, "mailto", u.Scheme)
	assert.False(t, u.HasAuthority)
	assert.Equal(t, "john@example.com", u.Path)
	assert.Equal(t, []string{"john@example.com"}, u.PathSegments)
}

func TestParseFabricName(t *testing.T) {
	u, err := Parse("fabric:/pinger0/PingerService", unicode.UTF8)
	if err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, UriTypeAbsolute, u.Type)
	assert.Equal(t, "fabric", u.Scheme)
	assert.Equal(t, "/pinger0/PingerService", u.Path)
	assert.Equal(t, []string{"pinger0", "PingerService"}, u.PathSegments)
	assert.Equal(t, int32(-1), u.Port)
}

func TestParseRelativeReferences(t *testing.T) {
	u, err := Parse("./a/b", unicode.UTF8)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, UriTypeNoscheme, u.Type)
	assert.True(t, u.IsRelativeReference())
	assert.Equal(t, []string{".", "a", "b"}, u.PathSegments)

	// A colon in a later segment does not make the prefix a scheme.
	u, err = Parse("a/b:c", unicode.UTF8)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, UriTypeNoscheme, u.Type)
	assert.Equal(t, "", u.Scheme)

	// Network-path reference: authority without a scheme.
	u, err = Parse("//example.com/x", unicode.UTF8)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, UriTypeAuthorityAbEmpty, u.Type)
	assert.True(t, u.IsRelativeReference())
	assert.Equal(t, "example.com", u.Host)
	assert.Equal(t, "/x", u.Path)
}

func TestParseHostTypes(t *testing.T) {
	cases := []struct {
		ref      string
		hostType UriHostType
		host     string
	}{
		{"http://example.com/", UriHostTypeRegName, "example.com"},
		{"http://10.0.0.1/", UriHostTypeIPv4, "10.0.0.1"},
		{"http://[::1]:80/", UriHostTypeIPv6, "[::1]"},
		{"http://[v1.x]/", UriHostTypeIPvFuture, "[v1.x]"},
		{"http:///", UriHostTypeNone, ""},
	}

	for _, c := range cases {
		u, err := Parse(c.ref, unicode.UTF8)
		if err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, c.hostType, u.HostType, "ref %q", c.ref)
		assert.Equal(t, c.host, u.Host, "ref %q", c.ref)
	}
}

func TestParseEmptyQueryAndFragment(t *testing.T) {
	u, err := Parse("http://example.com/a?#", unicode.UTF8)
	if err != nil {
		t.Fatal(err)
	}

	assert.True(t, u.HasQuery)
	assert.Equal(t, "", u.Query)
	assert.True(t, u.HasFragment)
	assert.Equal(t, "", u.Fragment)
}

func TestParseRejectsInvalidComponents(t *testing.T) {
	cases := []struct {
		ref string
		err error
	}{
		{"1http://example.com", syntax.ErrInvalidScheme},
		{"http://ex ample.com/", syntax.ErrInvalidHost},
		{"http://example.com:8o80/", syntax.ErrInvalidPort},
		{"http://us er@example.com/", syntax.ErrInvalidUserinfo},
		{"http://example.com/a%2", syntax.ErrInvalidPath},
		{"a:b/c#bad frag", syntax.ErrInvalidFragment},
		{"http://example.com/?a b", syntax.ErrInvalidQuery},
		{"a:b:c//", nil}, // rootless with colons is fine
	}

	for _, c := range cases {
		_, err := Parse(c.ref, unicode.UTF8)
		if c.err == nil {
			assert.NoError(t, err, "ref %q", c.ref)
		} else {
			assert.ErrorIs(t, err, c.err, "ref %q", c.ref)
		}
	}
}

func TestParseRejectsColonFirstSegmentInRelativeRef(t *testing.T) {
	// "a:b" reads as scheme "a" path "b", but a genuinely relative path
	// whose first segment hides a colon behind a dot segment must fail
	// only if the colon lands in the first segment.
	u, err := Parse("./a:b", unicode.UTF8)
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, UriTypeNoscheme, u.Type)

	_, err = Parse(":b", unicode.UTF8)
	assert.ErrorIs(t, err, syntax.ErrInvalidScheme)
}
