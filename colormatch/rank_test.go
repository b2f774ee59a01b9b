package colormatch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func brandGradient(name string, hexes ...string) Gradient {
	colors := make([]RGB, len(hexes))
	for i, h := range hexes {
		colors[i] = MustParseHex(h)
	}
	return Gradient{Name: name, Colors: colors, Category: "Test", Kind: KindBrand}
}

func names(results []RankedResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Gradient.Name
	}
	return out
}

func TestRank_SunsetBeforeOcean(t *testing.T) {
	catalog, err := NewCatalog(
		brandGradient("Ocean", "#0077BE", "#00CFFF"),
		brandGradient("Sunset", "#FF5733", "#FFC300"),
	)
	require.NoError(t, err)

	results := NewEngine(nil).Rank(MustParseHex("#FF0000"), catalog, DefaultLimit)

	assert.Equal(t, []string{"Sunset", "Ocean"}, names(results))
	assert.InDelta(t, DistanceHex("#FF0000", "#FF5733"), results[0].Score, 1e-9)
}

func TestRank_FunctionalProbeMatchesHexProbe(t *testing.T) {
	catalog, err := NewCatalog(
		brandGradient("Sunset", "#FF5733", "#FFC300"),
		brandGradient("Ocean", "#0077BE", "#00CFFF"),
	)
	require.NoError(t, err)

	probe, err := ParseColor("rgb(255, 0, 0)")
	require.NoError(t, err)

	engine := NewEngine(nil)
	assert.Equal(t, engine.Rank(MustParseHex("#FF0000"), catalog, 0), engine.Rank(probe, catalog, 0))
}

func TestRank_TruncatesSortsAndIsIdempotent(t *testing.T) {
	var gradients []Gradient
	for i := 0; i < 20; i++ {
		v := (i * 37) % 256
		gradients = append(gradients, brandGradient(
			fmt.Sprintf("g%02d", i),
			fmt.Sprintf("#%02x%02x%02x", v, 255-v, (v*7)%256),
			fmt.Sprintf("#%02x%02x%02x", (v*3)%256, v, 128),
		))
	}
	catalog, err := NewCatalog(gradients...)
	require.NoError(t, err)

	engine := NewEngine(nil)
	probe := RGB{200, 40, 90}
	first := engine.Rank(probe, catalog, 12)
	second := engine.Rank(probe, catalog, 12)

	require.Len(t, first, 12)
	assert.Equal(t, first, second)
	for i := 1; i < len(first); i++ {
		assert.LessOrEqual(t, first[i-1].Score, first[i].Score)
	}

	// the twelve kept are the twelve best of the full ranking
	full := engine.Rank(probe, catalog, 100)
	require.Len(t, full, 20)
	assert.Equal(t, full[:12], first)
}

func TestRank_ZeroScoreTiesKeepCatalogOrder(t *testing.T) {
	catalog, err := NewCatalog(
		brandGradient("c", "#123456", "#FF0000"),
		brandGradient("a", "#FF0000"),
		brandGradient("b", "#000000", "#FF0000", "#FFFFFF"),
	)
	require.NoError(t, err)

	results := NewEngine(nil).Rank(MustParseHex("#FF0000"), catalog, DefaultLimit)

	assert.Equal(t, []string{"c", "a", "b"}, names(results))
	for _, r := range results {
		assert.Zero(t, r.Score)
	}
}

func TestRank_DefaultLimit(t *testing.T) {
	var gradients []Gradient
	for i := 0; i < 15; i++ {
		gradients = append(gradients, brandGradient(fmt.Sprintf("g%d", i), fmt.Sprintf("#%02x0000", i)))
	}
	catalog, err := NewCatalog(gradients...)
	require.NoError(t, err)

	assert.Len(t, NewEngine(nil).Rank(RGB{}, catalog, 0), DefaultLimit)
	assert.Len(t, NewEngine(nil).Rank(RGB{}, catalog, -3), DefaultLimit)
	assert.Len(t, NewEngine(nil).Rank(RGB{}, catalog, 4), 4)
}

func TestRank_EmptyCatalog(t *testing.T) {
	empty, err := NewCatalog()
	require.NoError(t, err)

	results := NewEngine(nil).Rank(RGB{}, empty, DefaultLimit)
	assert.NotNil(t, results)
	assert.Empty(t, results)

	assert.Empty(t, NewEngine(nil).Rank(RGB{}, nil, DefaultLimit))
}

func TestRank_DoesNotMutateCatalog(t *testing.T) {
	catalog, err := NewCatalog(
		brandGradient("Ocean", "#0077BE", "#00CFFF"),
		brandGradient("Sunset", "#FF5733", "#FFC300"),
	)
	require.NoError(t, err)
	before := catalog.Gradients()

	results := NewEngine(Lab{}).Rank(MustParseHex("#FF0000"), catalog, 1)
	results[0].Gradient.Colors[0] = RGB{}

	assert.Equal(t, before, catalog.Gradients())
}

func TestRank_LabMetric(t *testing.T) {
	catalog, err := NewCatalog(
		brandGradient("Ocean", "#0077BE", "#00CFFF"),
		brandGradient("Sunset", "#FF5733", "#FFC300"),
	)
	require.NoError(t, err)

	results := NewEngine(Lab{}).Rank(MustParseHex("#FF0000"), catalog, DefaultLimit)
	assert.Equal(t, []string{"Sunset", "Ocean"}, names(results))
}
