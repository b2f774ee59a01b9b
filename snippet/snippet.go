// Package snippet renders gradients as style-system source text.
package snippet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gradient-catalog/api/colormatch"
)

var ErrUnknownFormat = errors.New("unknown snippet format")

type Format string

const (
	Tailwind Format = "tailwind"
	CSS      Format = "css"
	SwiftUI  Format = "swiftui"
	Flutter  Format = "flutter"
)

// Formats lists every supported format in display order.
var Formats = []Format{Tailwind, CSS, SwiftUI, Flutter}

func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Generator needs a palette only for the Tailwind format, where each stop is
// replaced by the nearest palette class.
type Generator struct {
	Engine  *colormatch.Engine
	Palette *colormatch.Palette
}

func NewGenerator(engine *colormatch.Engine, palette *colormatch.Palette) *Generator {
	return &Generator{Engine: engine, Palette: palette}
}

func (gen *Generator) Generate(g colormatch.Gradient, f Format) (string, error) {
	if len(g.Colors) == 0 {
		return "", colormatch.ErrEmptyGradient
	}

	switch f {
	case Tailwind:
		return gen.tailwind(g)
	case CSS:
		return css(g), nil
	case SwiftUI:
		return swiftUI(g), nil
	case Flutter:
		return flutter(g), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

func (gen *Generator) tailwind(g colormatch.Gradient) (string, error) {
	classes := []string{"bg-gradient-to-r"}
	for i, c := range g.Colors {
		swatch, _, err := gen.Engine.NearestNamed(c, gen.Palette)
		if err != nil {
			return "", err
		}
		classes = append(classes, fmt.Sprintf("%s-%s", colormatch.Role(i, len(g.Colors)), swatch.Name))
	}
	return strings.Join(classes, " "), nil
}

func css(g colormatch.Gradient) string {
	if len(g.Colors) == 1 {
		return fmt.Sprintf("background: %s;", g.Colors[0].Hex())
	}
	stops := make([]string, len(g.Colors))
	for i, c := range g.Colors {
		stops[i] = c.Hex()
	}
	return fmt.Sprintf("background: linear-gradient(to right, %s);", strings.Join(stops, ", "))
}

func swiftUI(g colormatch.Gradient) string {
	stops := make([]string, len(g.Colors))
	for i, c := range g.Colors {
		stops[i] = fmt.Sprintf("Color(red: %.3f, green: %.3f, blue: %.3f)",
			float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
	}
	return fmt.Sprintf("LinearGradient(gradient: Gradient(colors: [%s]), startPoint: .leading, endPoint: .trailing)",
		strings.Join(stops, ", "))
}

func flutter(g colormatch.Gradient) string {
	stops := make([]string, len(g.Colors))
	for i, c := range g.Colors {
		stops[i] = fmt.Sprintf("Color(0xFF%02X%02X%02X)", c.R, c.G, c.B)
	}
	return fmt.Sprintf("LinearGradient(colors: [%s])", strings.Join(stops, ", "))
}
