package fixture_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"edfix/internal/fixture"
)

func TestNewRegistry_CorpusComplete(t *testing.T) {
	r, err := fixture.NewRegistry()
	require.NoError(t, err)

	all := r.All()
	names := make([]string, 0, len(all))
	for _, f := range all {
		names = append(names, f.Name)
		require.NotEmpty(t, f.Body, "fixture %q has no body", f.Name)
		require.NotEmpty(t, f.Filename, "fixture %q has no filename", f.Name)
	}
	require.Equal(t, []string{"highlight-cpp", "highlight-rs", "indent"}, names)
}

func TestGet_IndentFixture(t *testing.T) {
	r, err := fixture.NewRegistry()
	require.NoError(t, err)

	f, ok := r.Get("indent")
	require.True(t, ok)
	require.Equal(t, "python", f.Language)
	require.Equal(t, "indent.py", f.Filename)

	// The indent fixture is the runnable demo's source of truth.
	body := string(f.Body)
	for _, want := range []string{"Hello, World!", "Even", "Odd", "This will print"} {
		require.True(t, strings.Contains(body, want), "indent fixture missing %q", want)
	}
}

func TestGet_Unknown(t *testing.T) {
	r, err := fixture.NewRegistry()
	require.NoError(t, err)

	_, ok := r.Get("nope")
	require.False(t, ok)
}

func TestGet_ReturnsCopies(t *testing.T) {
	r, err := fixture.NewRegistry()
	require.NoError(t, err)

	a, ok := r.Get("indent")
	require.True(t, ok)
	a.Body[0] = 'X'

	b, ok := r.Get("indent")
	require.True(t, ok)
	require.NotEqual(t, byte('X'), b.Body[0], "registry body was mutated through a Get result")
}

func TestFingerprint_StableAndShort(t *testing.T) {
	a := fixture.Fingerprint([]byte("print('hi')\n"))
	b := fixture.Fingerprint([]byte("print('hi')\n"))
	c := fixture.Fingerprint([]byte("print('ho')\n"))

	require.Equal(t, a, b)
	require.NotEqual(t, a, c)
	require.Len(t, a, 20)
}
