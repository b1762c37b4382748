package search

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nudleerrors "github.com/alexisbeaulieu97/nudle/pkg/errors"
)

func TestTargetRejectsBlankQueries(t *testing.T) {
	t.Parallel()

	for _, q := range []string{"", " ", "\t", "\n  \t", "  "} {
		target, ok := Target(q)
		assert.False(t, ok, "query %q", q)
		assert.Empty(t, target)
	}
}

func TestTargetEncodesTrimmedQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "surrounding whitespace", query: "  cats  ", expected: "/search?q=cats"},
		{name: "inner space", query: "hello world", expected: "/search?q=hello%20world"},
		{name: "reserved characters", query: "a&b=c?d/e", expected: "/search?q=a%26b%3Dc%3Fd%2Fe"},
		{name: "plus sign", query: "c++", expected: "/search?q=c%2B%2B"},
		{name: "percent sign", query: "100%", expected: "/search?q=100%25"},
		{name: "unicode", query: "café", expected: "/search?q=caf%C3%A9"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target, ok := Target(tt.query)
			require.True(t, ok)
			assert.Equal(t, tt.expected, target)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"cats",
		"hello world",
		"a&b=c",
		"c++ templates",
		"100% pure",
		"naïve café",
		"日本語",
		"emoji 🐈",
		"quotes \"'`",
		"trailing+plus",
	}

	for _, in := range inputs {
		target, ok := Target(in)
		require.True(t, ok)

		u, err := url.Parse(target)
		require.NoError(t, err)
		assert.Equal(t, ResultsPath, u.Path)

		got, present, err := Decode(u.RawQuery, Param)
		require.NoError(t, err)
		assert.True(t, present)
		assert.Equal(t, in, got)

		// Standard form decoding agrees.
		assert.Equal(t, in, u.Query().Get(Param))
	}
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("absent parameter", func(t *testing.T) {
		v, ok, err := Decode("page=2", Param)
		require.NoError(t, err)
		assert.False(t, ok)
		assert.Empty(t, v)
	})

	t.Run("empty raw query", func(t *testing.T) {
		_, ok, err := Decode("", Param)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("first value wins", func(t *testing.T) {
		v, ok, err := Decode("q=one&q=two", Param)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "one", v)
	})

	t.Run("key without value", func(t *testing.T) {
		v, ok, err := Decode("q", Param)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Empty(t, v)
	})

	t.Run("plus decodes as space", func(t *testing.T) {
		v, _, err := Decode("q=hello+world", Param)
		require.NoError(t, err)
		assert.Equal(t, "hello world", v)
	})

	t.Run("malformed encoding degrades to empty", func(t *testing.T) {
		v, ok, err := Decode("q=%E0%A4%A&x=1", Param)
		assert.True(t, ok)
		assert.Empty(t, v)

		var decodeErr *nudleerrors.QueryDecodeError
		require.ErrorAs(t, err, &decodeErr)
		assert.Equal(t, Param, decodeErr.Param)
		assert.True(t, strings.HasPrefix(decodeErr.Raw, "%E0"))
	})

	t.Run("malformed other parameter is ignored", func(t *testing.T) {
		v, ok, err := Decode("x=%zz&q=ok", Param)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, "ok", v)
	})
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "cats", Normalize("  cats  "))
	assert.Equal(t, "a  b", Normalize("\ta  b\n"))
	assert.Empty(t, Normalize("   "))
}
