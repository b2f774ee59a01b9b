package snippet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradient-catalog/api/colormatch"
)

func gradient(hexes ...string) colormatch.Gradient {
	g := colormatch.Gradient{Name: "Test", Kind: colormatch.KindBrand}
	for _, h := range hexes {
		g.Colors = append(g.Colors, colormatch.MustParseHex(h))
	}
	return g
}

func newTestGenerator() *Generator {
	return NewGenerator(colormatch.NewEngine(nil), colormatch.TailwindPalette())
}

func TestGenerate_Tailwind(t *testing.T) {
	gen := newTestGenerator()

	tests := []struct {
		name  string
		hexes []string
		want  string
	}{
		{"single stop", []string{"#FF5733"}, "bg-gradient-to-r from-red-500"},
		{"two stops", []string{"#FF5733", "#FFC300"}, "bg-gradient-to-r from-red-500 to-yellow-400"},
		{"three stops", []string{"#FF5733", "#0077BE", "#FFC300"}, "bg-gradient-to-r from-red-500 via-sky-600 to-yellow-400"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := gen.Generate(gradient(tt.hexes...), Tailwind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerate_TailwindEmptyPalette(t *testing.T) {
	empty, err := colormatch.NewPalette()
	require.NoError(t, err)

	gen := NewGenerator(colormatch.NewEngine(nil), empty)
	_, err = gen.Generate(gradient("#FF5733"), Tailwind)
	assert.ErrorIs(t, err, colormatch.ErrNoReferenceColors)
}

func TestGenerate_CSS(t *testing.T) {
	gen := newTestGenerator()

	got, err := gen.Generate(gradient("#FF5733", "#FFC300"), CSS)
	require.NoError(t, err)
	assert.Equal(t, "background: linear-gradient(to right, #ff5733, #ffc300);", got)

	got, err = gen.Generate(gradient("#FF5733"), CSS)
	require.NoError(t, err)
	assert.Equal(t, "background: #ff5733;", got)
}

func TestGenerate_SwiftUI(t *testing.T) {
	got, err := newTestGenerator().Generate(gradient("#FF5733", "#FFC300"), SwiftUI)
	require.NoError(t, err)
	assert.Equal(t,
		"LinearGradient(gradient: Gradient(colors: [Color(red: 1.000, green: 0.341, blue: 0.200), Color(red: 1.000, green: 0.765, blue: 0.000)]), startPoint: .leading, endPoint: .trailing)",
		got)
}

func TestGenerate_Flutter(t *testing.T) {
	got, err := newTestGenerator().Generate(gradient("#FF5733", "#ffc300"), Flutter)
	require.NoError(t, err)
	assert.Equal(t, "LinearGradient(colors: [Color(0xFFFF5733), Color(0xFFFFC300)])", got)
}

func TestGenerate_Errors(t *testing.T) {
	gen := newTestGenerator()

	_, err := gen.Generate(gradient("#FF5733"), Format("sass"))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	_, err = gen.Generate(colormatch.Gradient{Name: "Empty"}, CSS)
	assert.ErrorIs(t, err, colormatch.ErrEmptyGradient)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat(" SwiftUI ")
	require.NoError(t, err)
	assert.Equal(t, SwiftUI, f)

	_, err = ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
