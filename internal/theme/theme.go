// Package theme maps card attribute vectors to presentation content.
package theme

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/mgriebling/set/engine"
)

// ErrUnknownTheme is returned by Lookup for a name with no registered theme.
var ErrUnknownTheme = errors.New("unknown theme")

// Theme names the values of each standard dimension. Symbols is indexed by
// shape then fill; ColourTags holds terminal colour markup per colour.
type Theme struct {
	Name       string
	Colours    []string
	Shapes     []string
	Fills      []string
	Numbers    []string
	Symbols    [][]string
	ColourTags []string
}

var themes = map[string]Theme{
	"traditional": {
		Name:       "traditional",
		Colours:    []string{"red", "green", "purple"},
		Shapes:     []string{"capsule", "diamond", "squiggle"},
		Fills:      []string{"none", "solid", "hatched"},
		Numbers:    []string{"1", "2", "3"},
		Symbols:    [][]string{{"▭", "▬", "▤"}, {"◇", "◆", "◈"}, {"∿", "≈", "≋"}},
		ColourTags: []string{"@r", "@g", "@m"},
	},
	"classic": {
		Name:       "classic",
		Colours:    []string{"red", "green", "magenta"},
		Shapes:     []string{"square", "circle", "diamond"},
		Fills:      []string{"outline", "striped", "solid"},
		Numbers:    []string{"1", "2", "3"},
		Symbols:    [][]string{{"□", "▣", "■"}, {"○", "◉", "●"}, {"◇", "◈", "◆"}},
		ColourTags: []string{"@r", "@g", "@m"},
	},
}

// Default is the theme used when none is configured.
const Default = "traditional"

// Lookup returns the named theme. Names are case-insensitive.
func Lookup(name string) (Theme, error) {
	t, ok := themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	return t, nil
}

// Names lists the registered themes in sorted order.
func Names() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// name returns the display name of value a in one dimension, falling back to
// the attribute's own name outside the themed domain.
func name(names []string, a engine.Attribute) string {
	if int(a) < len(names) {
		return names[a]
	}
	return a.String()
}

// Describe returns the name of each attribute of v, one per dimension.
func (t Theme) Describe(v engine.Vector) []string {
	out := make([]string, len(v))
	for dim, a := range v {
		switch dim {
		case engine.DimColour:
			out[dim] = name(t.Colours, a)
		case engine.DimShape:
			out[dim] = name(t.Shapes, a)
		case engine.DimFill:
			out[dim] = name(t.Fills, a)
		case engine.DimNumber:
			out[dim] = name(t.Numbers, a)
		default:
			out[dim] = a.String()
		}
	}
	return out
}

// Content renders v as text such as "2 green solid diamond". Vectors outside
// the standard four dimensions list their attribute names in order.
func (t Theme) Content(v engine.Vector) string {
	parts := t.Describe(v)
	if len(parts) == engine.DimNumber+1 {
		parts = []string{parts[engine.DimNumber], parts[engine.DimColour], parts[engine.DimFill], parts[engine.DimShape]}
	}
	return strings.Join(parts, " ")
}

// ContentFunc adapts Content for engine.Game.UpdateTheme.
func (t Theme) ContentFunc() engine.ContentFunc {
	return t.Content
}

// Glyph renders v as symbols in terminal colour markup, for example
// "@g◆ ◆@|". Vectors outside the standard space fall back to Content.
func (t Theme) Glyph(v engine.Vector) string {
	if len(v) != engine.DimNumber+1 {
		return t.Content(v)
	}
	colour, shape, fill, number := int(v[engine.DimColour]), int(v[engine.DimShape]), int(v[engine.DimFill]), int(v[engine.DimNumber])
	if colour >= len(t.ColourTags) || shape >= len(t.Symbols) || fill >= len(t.Symbols[shape]) {
		return t.Content(v)
	}
	sym := strings.TrimSpace(strings.Repeat(t.Symbols[shape][fill]+" ", number+1))
	return t.ColourTags[colour] + sym + "@|"
}
