// Package color provides the terminal color palette and the per-run
// assignment of palette colors to thread identifiers.
package color

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Reset is the control sequence that ends a colored span.
const Reset = "\x1b[0m"

// Color is one palette entry: a display name and its SGR parameters.
type Color struct {
	Name string
	SGR  string // e.g. "31" or "1;32"
}

// Start returns the control sequence that begins this color.
func (c Color) Start() string {
	return "\x1b[" + c.SGR + "m"
}

// Wrap returns text enclosed in this color and a reset.
func (c Color) Wrap(text string) string {
	return c.Start() + text + Reset
}

func (c Color) String() string {
	return c.Name
}

// Palette is an ordered, fixed list of colors.
type Palette []Color

var sgrPattern = regexp.MustCompile(`^\d{1,3}(;\d{1,3})*$`)

// named maps color names accepted in configuration to SGR parameters.
var named = map[string]string{
	"black":          "30",
	"red":            "31",
	"green":          "32",
	"yellow":         "33",
	"blue":           "34",
	"magenta":        "35",
	"cyan":           "36",
	"white":          "37",
	"bold-black":     "1;30",
	"bold-red":       "1;31",
	"bold-green":     "1;32",
	"bold-yellow":    "1;33",
	"bold-blue":      "1;34",
	"bold-magenta":   "1;35",
	"bold-cyan":      "1;36",
	"bold-white":     "1;37",
	"bright-black":   "90",
	"bright-red":     "91",
	"bright-green":   "92",
	"bright-yellow":  "93",
	"bright-blue":    "94",
	"bright-magenta": "95",
	"bright-cyan":    "96",
	"bright-white":   "97",
}

// DefaultNames is the default palette, in assignment order.
// Black and white are left out so lines stay readable on either background.
var DefaultNames = []string{
	"red", "green", "yellow", "blue", "magenta", "cyan",
	"bold-red", "bold-green", "bold-yellow", "bold-blue", "bold-magenta", "bold-cyan",
}

// DefaultPalette returns the built-in palette.
func DefaultPalette() Palette {
	p, err := ParsePalette(DefaultNames)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalette resolves a list of color names or raw SGR parameter strings
// (such as "38;5;208") into a Palette.
func ParsePalette(values []string) (Palette, error) {
	if len(values) == 0 {
		return nil, errors.New("palette must contain at least one color")
	}

	p := make(Palette, 0, len(values))
	for i, value := range values {
		c, err := ParseColor(value)
		if err != nil {
			return nil, fmt.Errorf("palette[%d]: %w", i, err)
		}
		p = append(p, c)
	}
	return p, nil
}

// ParseColor resolves a single color name or SGR parameter string.
func ParseColor(value string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(value))
	if name == "" {
		return Color{}, errors.New("empty color")
	}
	if sgr, ok := named[name]; ok {
		return Color{Name: name, SGR: sgr}, nil
	}
	if sgrPattern.MatchString(name) {
		return Color{Name: name, SGR: name}, nil
	}
	return Color{}, fmt.Errorf("unknown color %q (use a name like red or bold-cyan, or SGR parameters like 1;33)", value)
}

// Names returns the configured names of the palette's colors.
func (p Palette) Names() []string {
	names := make([]string, len(p))
	for i, c := range p {
		names[i] = c.Name
	}
	return names
}
