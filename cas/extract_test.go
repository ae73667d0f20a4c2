package cas

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExtractTag(t *testing.T) {
	body := `<cas:serviceResponse><CAS:Mail>a@b.fr</CAS:Mail><givenName> Jean </givenName></cas:serviceResponse>`

	v, ok := extractTag(body, "mail") // case-insensitive, prefix-optional
	require.True(t, ok)
	require.Equal(t, "a@b.fr", v)

	v, ok = extractTag(body, "givenName")
	require.True(t, ok)
	require.Equal(t, "Jean", v, "surrounding whitespace trimmed")

	_, ok = extractTag(body, "sn")
	require.False(t, ok)
}

func TestExtractTagNotFooledBySimilarNames(t *testing.T) {
	body := `<email>x@y.fr</email>`
	_, ok := extractTag(body, "mail")
	require.False(t, ok, "mail must not match inside email")
}

func TestFirstTag(t *testing.T) {
	body := `<groups>g1 g2</groups>`

	v, ok := firstTag(body, "roles", "memberOf", "groups")
	require.True(t, ok)
	require.Equal(t, "g1 g2", v)

	_, ok = firstTag(body, "roles", "memberOf")
	require.False(t, ok)
}

func TestSplitRoles(t *testing.T) {
	require.Equal(t, []string{"a", "b", "c"}, splitRoles("a;b;c"))
	require.Equal(t, []string{"a", "b", "c"}, splitRoles("a, b,  c"))
	require.Equal(t, []string{"a", "b"}, splitRoles("a \t\n b"))
	require.Equal(t, []string{"a", "b"}, splitRoles(";a;;b;"))
	require.Nil(t, splitRoles(""))
	require.Nil(t, splitRoles(" ;, "))
}
