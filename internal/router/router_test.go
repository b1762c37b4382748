package router

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	nudleerrors "github.com/alexisbeaulieu97/nudle/pkg/errors"
)

func TestParse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     string
		want    Location
		wantErr bool
	}{
		{name: "root", raw: "/", want: Location{Path: "/"}},
		{name: "search with query", raw: "/search?q=hello%20world", want: Location{Path: "/search", RawQuery: "q=hello%20world"}},
		{name: "relative path", raw: "search", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "scheme relative", raw: "//example.com/x", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.raw, got.String())
		})
	}
}

func TestMustParsePanicsOnBadInput(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { MustParse("nope") })
	assert.NotPanics(t, func() { MustParse("/") })
}

func TestLocationQueryParam(t *testing.T) {
	t.Parallel()

	loc := MustParse("/search?q=hello%20world")
	v, ok, err := loc.QueryParam("q")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "hello world", v)

	v, ok, err = MustParse("/search").QueryParam("q")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)

	v, ok, err = Location{Path: "/search", RawQuery: "q=%zz"}.QueryParam("q")
	assert.True(t, ok)
	assert.Empty(t, v)
	var decodeErr *nudleerrors.QueryDecodeError
	assert.ErrorAs(t, err, &decodeErr)
}

func TestRouterPushAndBack(t *testing.T) {
	t.Parallel()

	r := New(MustParse("/"))
	assert.Equal(t, 1, r.Depth())

	loc, err := r.Push("/search?q=cats")
	require.NoError(t, err)
	assert.Equal(t, "/search", loc.Path)
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, loc, r.Current())

	v, ok, err := r.QueryParam("q")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "cats", v)

	prev, ok := r.Back()
	assert.True(t, ok)
	assert.Equal(t, "/", prev.Path)
	assert.Equal(t, 1, r.Depth())

	first, ok := r.Back()
	assert.False(t, ok, "the first entry is kept")
	assert.Equal(t, "/", first.Path)
}

func TestRouterPushRejectsInvalidTarget(t *testing.T) {
	t.Parallel()

	r := New(MustParse("/"))
	_, err := r.Push("https://example.com")
	assert.Error(t, err)
	assert.Equal(t, 1, r.Depth())
}

func TestNavigateCmd(t *testing.T) {
	t.Parallel()

	msg := Navigate("/search?q=cats", OriginSearchInput)()
	nav, ok := msg.(NavigateMsg)
	require.True(t, ok)
	assert.Equal(t, "/search?q=cats", nav.Target)
	assert.Equal(t, OriginSearchInput, nav.Origin)

	_, ok = Back()().(BackMsg)
	assert.True(t, ok)
}

func TestResolveQueryCmd(t *testing.T) {
	t.Parallel()

	t.Run("immediate", func(t *testing.T) {
		msg := ResolveQuery(7, MustParse("/search?q=hello%20world"), "q", 0)()
		resolved, ok := msg.(QueryResolvedMsg)
		require.True(t, ok)
		assert.Equal(t, uint64(7), resolved.Seq)
		assert.Equal(t, "hello world", resolved.Value)
		assert.True(t, resolved.Present)
		assert.NoError(t, resolved.Err)
	})

	t.Run("delayed", func(t *testing.T) {
		start := time.Now()
		msg := ResolveQuery(1, MustParse("/search"), "q", 20*time.Millisecond)()
		resolved, ok := msg.(QueryResolvedMsg)
		require.True(t, ok)
		assert.False(t, resolved.Present)
		assert.Empty(t, resolved.Value)
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("malformed degrades to empty", func(t *testing.T) {
		msg := ResolveQuery(2, Location{Path: "/search", RawQuery: "q=%E0%A4%A"}, "q", 0)()
		resolved := msg.(QueryResolvedMsg)
		assert.Empty(t, resolved.Value)
		assert.Error(t, resolved.Err)
	})
}
