package colormatch

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyGradient    = errors.New("gradient has no colors")
	ErrUnnamedGradient  = errors.New("gradient name is required")
	ErrUnknownKind      = errors.New("unknown category kind")
	ErrGradientNotFound = errors.New("gradient not found")
)

// Kind partitions the catalog by where a gradient comes from.
type Kind string

const (
	KindBrand Kind = "brand"
	KindAlbum Kind = "album"
)

func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindBrand:
		return KindBrand, nil
	case KindAlbum:
		return KindAlbum, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
	}
}

// Gradient is a named, ordered list of colors. Color order is the visual
// direction; similarity treats the colors as a set.
type Gradient struct {
	Name     string   `json:"name"`
	Colors   []RGB    `json:"colors"`
	Category string   `json:"category"`
	Kind     Kind     `json:"kind"`
	Artist   string   `json:"artist,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Validate checks the gradient invariants: a name, at least one color and a
// known kind.
func (g Gradient) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrUnnamedGradient
	}
	if len(g.Colors) == 0 {
		return fmt.Errorf("%q: %w", g.Name, ErrEmptyGradient)
	}
	if _, err := ParseKind(string(g.Kind)); err != nil {
		return fmt.Errorf("%q: %w", g.Name, err)
	}
	return nil
}

func (g Gradient) clone() Gradient {
	g.Colors = append([]RGB(nil), g.Colors...)
	if g.Tags != nil {
		g.Tags = append([]string(nil), g.Tags...)
	}
	return g
}

// Catalog is an ordered, read-only collection of validated gradients.
type Catalog struct {
	gradients []Gradient
}

// NewCatalog validates and copies gradients. Any invalid gradient rejects
// the whole catalog.
func NewCatalog(gradients ...Gradient) (*Catalog, error) {
	c := &Catalog{gradients: make([]Gradient, 0, len(gradients))}
	for i, g := range gradients {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("gradient %d: %w", i, err)
		}
		c.gradients = append(c.gradients, g.clone())
	}
	return c, nil
}

func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.gradients)
}

// Gradients returns copies of the catalog entries in catalog order.
func (c *Catalog) Gradients() []Gradient {
	if c == nil {
		return nil
	}
	out := make([]Gradient, len(c.gradients))
	for i, g := range c.gradients {
		out[i] = g.clone()
	}
	return out
}

// Lookup finds a gradient by name, ignoring case. The first match wins.
func (c *Catalog) Lookup(name string) (Gradient, error) {
	if c != nil {
		for _, g := range c.gradients {
			if strings.EqualFold(g.Name, name) {
				return g.clone(), nil
			}
		}
	}
	return Gradient{}, fmt.Errorf("%w: %q", ErrGradientNotFound, name)
}

// Category summarizes one brand or album of the catalog.
type Category struct {
	Name   string `json:"name"`
	Kind   Kind   `json:"kind"`
	Artist string `json:"artist,omitempty"`
	Count  int    `json:"count"`
}

// Categories lists categories in order of first appearance.
func (c *Catalog) Categories() []Category {
	if c == nil {
		return nil
	}
	type key struct {
		kind Kind
		name string
	}
	index := make(map[key]int)
	var out []Category
	for _, g := range c.gradients {
		k := key{g.Kind, g.Category}
		if i, ok := index[k]; ok {
			out[i].Count++
			continue
		}
		index[k] = len(out)
		out = append(out, Category{Name: g.Category, Kind: g.Kind, Artist: g.Artist, Count: 1})
	}
	return out
}

// Query narrows a catalog. Zero fields match everything.
type Query struct {
	Kind     Kind
	Category string
	Tag      string
	Search   string
}

func (q Query) matches(g Gradient) bool {
	if q.Kind != "" && g.Kind != q.Kind {
		return false
	}
	if q.Category != "" && !strings.EqualFold(g.Category, q.Category) {
		return false
	}
	if q.Tag != "" && !containsFold(g.Tags, q.Tag) {
		return false
	}
	if q.Search != "" {
		needle := strings.ToLower(strings.TrimSpace(q.Search))
		haystack := append([]string{g.Name, g.Category, g.Artist}, g.Tags...)
		found := false
		for _, h := range haystack {
			if strings.Contains(strings.ToLower(h), needle) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Filter returns a new catalog holding the gradients that match q, in order.
func (c *Catalog) Filter(q Query) *Catalog {
	out := &Catalog{}
	if c == nil {
		return out
	}
	for _, g := range c.gradients {
		if q.matches(g) {
			out.gradients = append(out.gradients, g.clone())
		}
	}
	return out
}

func containsFold(values []string, target string) bool {
	for _, v := range values {
		if strings.EqualFold(v, target) {
			return true
		}
	}
	return false
}
