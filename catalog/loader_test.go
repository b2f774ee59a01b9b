package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gradient-catalog/api/colormatch"
	"github.com/gradient-catalog/api/models"
)

func TestLoadEmbedded(t *testing.T) {
	c, err := LoadEmbedded()
	require.NoError(t, err)

	assert.Equal(t, 31, c.Len())
	assert.Len(t, c.Categories(), 24)
	assert.Equal(t, 81, colormatch.CountUnique(c))

	first := c.Gradients()[0]
	assert.Equal(t, "Spotify", first.Name)
	assert.Equal(t, colormatch.KindBrand, first.Kind)
	assert.Equal(t, []string{"music", "streaming"}, first.Tags)

	blonde, err := c.Lookup("Blonde")
	require.NoError(t, err)
	assert.Equal(t, colormatch.KindAlbum, blonde.Kind)
	assert.Equal(t, "Frank Ocean", blonde.Artist)
}

func TestDecode_YAML(t *testing.T) {
	doc := `
- album: Nevermind
  artist: Nirvana
  tags: [rock]
  gradients:
    - name: Nevermind
      colors: ["#0077BE", "rgb(0, 207, 255)"]
      tags: [Rock, water]
`
	records, err := Decode(strings.NewReader(doc), YAML)
	require.NoError(t, err)

	c, err := Build(records)
	require.NoError(t, err)
	require.Equal(t, 1, c.Len())

	g := c.Gradients()[0]
	assert.Equal(t, "Nevermind", g.Category)
	assert.Equal(t, []colormatch.RGB{{R: 0, G: 119, B: 190}, {R: 0, G: 207, B: 255}}, g.Colors)
	assert.Equal(t, []string{"rock", "water"}, g.Tags)
}

func TestBuild_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		records []models.CategoryRecord
		wantErr error
	}{
		{
			name:    "zero colors",
			records: []models.CategoryRecord{{Brand: "X", Gradients: []models.GradientRecord{{Name: "X"}}}},
			wantErr: colormatch.ErrEmptyGradient,
		},
		{
			name:    "malformed color",
			records: []models.CategoryRecord{{Brand: "X", Gradients: []models.GradientRecord{{Name: "X", Colors: []string{"#12345"}}}}},
			wantErr: colormatch.ErrMalformedColor,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Build(tt.records)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	_, err := Build([]models.CategoryRecord{{Brand: "X", Album: "Y"}})
	assert.ErrorContains(t, err, "both brand and album")

	_, err = Build([]models.CategoryRecord{{Artist: "Nobody"}})
	assert.ErrorContains(t, err, "brand or an album")
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "catalog.json")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"brand":"Stripe","gradients":[{"name":"Stripe","colors":["#635BFF","#00D4FF"]}]}]`), 0o600))
	c, err := LoadFile(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, 1, c.Len())

	yamlPath := filepath.Join(dir, "catalog.yml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("- brand: Twitch\n  gradients:\n    - name: Twitch\n      colors: ['#9146FF']\n"), 0o600))
	c, err = LoadFile(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "Twitch", c.Gradients()[0].Name)

	_, err = LoadFile(filepath.Join(dir, "catalog.toml"))
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = LoadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
