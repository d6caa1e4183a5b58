package theme

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mgriebling/set/engine"
)

func TestLookup(t *testing.T) {
	th, err := Lookup("Classic")
	require.NoError(t, err)
	assert.Equal(t, "classic", th.Name)

	_, err = Lookup("neon")
	require.ErrorIs(t, err, ErrUnknownTheme)
	assert.Contains(t, err.Error(), "neon")
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"classic", "traditional"}, Names())
	_, err := Lookup(Default)
	assert.NoError(t, err, "default theme must be registered")
}

func TestThemesCoverStandardSpace(t *testing.T) {
	s := engine.StandardSpace()
	for _, name := range Names() {
		th, err := Lookup(name)
		require.NoError(t, err)
		for _, names := range [][]string{th.Colours, th.Shapes, th.Fills, th.Numbers, th.ColourTags} {
			assert.Len(t, names, s.Values, "theme %s", name)
		}
		require.Len(t, th.Symbols, s.Values)
		for _, row := range th.Symbols {
			assert.Len(t, row, s.Values, "theme %s", name)
		}
	}
}

func TestContent(t *testing.T) {
	th, err := Lookup("traditional")
	require.NoError(t, err)

	v := engine.Vector{1, 1, 1, 1}
	assert.Equal(t, "2 green solid diamond", th.Content(v))
	assert.Equal(t, []string{"green", "diamond", "solid", "2"}, th.Describe(v))
	assert.Equal(t, th.Content(v), th.Content(v), "content must be stable")
	assert.Equal(t, th.Content(v), th.ContentFunc()(v))
}

// TestContentDistinct checks every card of the standard deck gets its own content.
func TestContentDistinct(t *testing.T) {
	s := engine.StandardSpace()
	for _, name := range Names() {
		th, _ := Lookup(name)
		seen := make(map[string]int)
		for id := 0; id < s.TotalCards(); id++ {
			c := th.Content(s.Encode(id))
			if prev, ok := seen[c]; ok {
				t.Fatalf("theme %s: cards %d and %d share content %q", name, prev, id, c)
			}
			seen[c] = id
		}
	}
}

func TestContentOutsideStandardSpace(t *testing.T) {
	th, _ := Lookup("classic")
	assert.Equal(t, "red circle", th.Content(engine.Vector{0, 1}))
	assert.Equal(t, "4 square outline 1 one", th.Content(engine.Vector{3, 0, 0, 0, 0}))
}

func TestGlyph(t *testing.T) {
	th, _ := Lookup("classic")
	assert.Equal(t, "@g◉ ◉ ◉@|", th.Glyph(engine.Vector{1, 1, 1, 2}))
	assert.Equal(t, "@r□@|", th.Glyph(engine.Vector{0, 0, 0, 0}))
	assert.Equal(t, th.Content(engine.Vector{0, 1}), th.Glyph(engine.Vector{0, 1}))
}
