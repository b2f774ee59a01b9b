package colormatch

import (
	"errors"
	"fmt"
	"strings"
)

var ErrNoReferenceColors = errors.New("reference palette has no colors")

// Swatch is one named entry of a reference palette.
type Swatch struct {
	Name  string `json:"name"`
	Color RGB    `json:"color"`
}

// Palette is an ordered, immutable set of named colors. Iteration order is
// insertion order, which makes tie-breaking in NearestNamed deterministic.
type Palette struct {
	swatches []Swatch
	byName   map[string]int
}

func NewPalette(swatches ...Swatch) (*Palette, error) {
	p := &Palette{
		swatches: make([]Swatch, 0, len(swatches)),
		byName:   make(map[string]int, len(swatches)),
	}
	for _, s := range swatches {
		if strings.TrimSpace(s.Name) == "" {
			return nil, errors.New("palette swatch name is required")
		}
		if _, exists := p.byName[s.Name]; exists {
			return nil, fmt.Errorf("duplicate palette swatch %q", s.Name)
		}
		p.byName[s.Name] = len(p.swatches)
		p.swatches = append(p.swatches, s)
	}
	return p, nil
}

// PaletteFromHex builds a palette from ordered (name, #rrggbb) pairs.
func PaletteFromHex(pairs [][2]string) (*Palette, error) {
	swatches := make([]Swatch, 0, len(pairs))
	for _, pair := range pairs {
		c, err := ParseHex(pair[1])
		if err != nil {
			return nil, fmt.Errorf("palette swatch %q: %w", pair[0], err)
		}
		swatches = append(swatches, Swatch{Name: pair[0], Color: c})
	}
	return NewPalette(swatches...)
}

func (p *Palette) Len() int {
	if p == nil {
		return 0
	}
	return len(p.swatches)
}

// Swatches returns a copy of the palette entries in order.
func (p *Palette) Swatches() []Swatch {
	if p == nil {
		return nil
	}
	out := make([]Swatch, len(p.swatches))
	copy(out, p.swatches)
	return out
}

func (p *Palette) Lookup(name string) (Swatch, bool) {
	if p == nil {
		return Swatch{}, false
	}
	i, ok := p.byName[name]
	if !ok {
		return Swatch{}, false
	}
	return p.swatches[i], true
}

// NearestNamed returns the swatch closest to c. On equal distances the
// earlier swatch wins.
func (e *Engine) NearestNamed(c RGB, p *Palette) (Swatch, float64, error) {
	if p.Len() == 0 {
		return Swatch{}, 0, ErrNoReferenceColors
	}

	best := p.swatches[0]
	bestDist := e.metric.Distance(c, best.Color)
	for _, s := range p.swatches[1:] {
		if d := e.metric.Distance(c, s.Color); d < bestDist {
			best, bestDist = s, d
		}
	}
	return best, bestDist, nil
}

// NearestNamedHex classifies a #rrggbb string using Euclidean distance and
// returns the swatch name.
func NearestNamedHex(hex string, p *Palette) (string, error) {
	c, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	s, _, err := NewEngine(Euclidean{}).NearestNamed(c, p)
	if err != nil {
		return "", err
	}
	return s.Name, nil
}

// StopRole is the position tag of a gradient stop in utility-class output.
type StopRole string

const (
	RoleFrom StopRole = "from"
	RoleVia  StopRole = "via"
	RoleTo   StopRole = "to"
)

// Role tags stop index of a gradient with length stops. A single stop is
// both first and last and gets RoleFrom.
func Role(index, length int) StopRole {
	switch {
	case index == 0:
		return RoleFrom
	case index == length-1:
		return RoleTo
	default:
		return RoleVia
	}
}
