package color

// Assignment records the color given to one identifier.
type Assignment struct {
	Identifier string
	Color      Color
	Index      int // first-seen position, starting at 0
}

// Assigner maps identifiers to palette colors in first-seen order.
// An identifier keeps its color for the lifetime of the Assigner; when there
// are more identifiers than colors, the palette is reused modulo its size.
//
// An Assigner is not safe for concurrent use.
type Assigner struct {
	palette Palette
	assign  map[string]int
	order   []string
}

// NewAssigner creates an Assigner over the given palette.
// An empty palette falls back to DefaultPalette.
func NewAssigner(p Palette) *Assigner {
	if len(p) == 0 {
		p = DefaultPalette()
	}
	return &Assigner{
		palette: p,
		assign:  make(map[string]int),
	}
}

// ColorFor returns the color for id, assigning the next palette slot on
// first sight. Later calls for the same id return the same color.
func (a *Assigner) ColorFor(id string) Color {
	idx, ok := a.assign[id]
	if !ok {
		idx = len(a.order)
		a.assign[id] = idx
		a.order = append(a.order, id)
	}
	return a.palette[idx%len(a.palette)]
}

// Lookup returns the color already assigned to id without assigning one.
func (a *Assigner) Lookup(id string) (Color, bool) {
	idx, ok := a.assign[id]
	if !ok {
		return Color{}, false
	}
	return a.palette[idx%len(a.palette)], true
}

// Len returns the number of distinct identifiers seen.
func (a *Assigner) Len() int {
	return len(a.order)
}

// Palette returns the palette colors are drawn from.
func (a *Assigner) Palette() Palette {
	return a.palette
}

// Assignments returns every assignment in first-seen order.
func (a *Assigner) Assignments() []Assignment {
	out := make([]Assignment, len(a.order))
	for i, id := range a.order {
		out[i] = Assignment{
			Identifier: id,
			Color:      a.palette[i%len(a.palette)],
			Index:      i,
		}
	}
	return out
}
