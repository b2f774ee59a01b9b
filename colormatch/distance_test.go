package colormatch

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleColors = []RGB{
	{0, 0, 0},
	{255, 255, 255},
	{255, 0, 0},
	{0, 119, 190},
	{255, 87, 51},
	{18, 52, 86},
	{128, 128, 128},
}

func TestDistanceHex(t *testing.T) {
	assert.Equal(t, 0.0, DistanceHex("#FF0000", "#ff0000"))
	assert.InDelta(t, 255*math.Sqrt(3), DistanceHex("#000000", "#FFFFFF"), 1e-9)
	assert.InDelta(t, 5.0, DistanceHex("#030400", "#000000"), 1e-9)
	// a truncated input keeps its leading channel and zero-fills the rest
	assert.InDelta(t, 255.0, DistanceHex("#FF", "#000000"), 1e-9)
}

func TestDistanceFunctional(t *testing.T) {
	assert.Equal(t, 0.0, DistanceFunctional("rgb(1,2,3)", "rgb(1, 2, 3)"))
	assert.InDelta(t, 255.0, DistanceFunctional("rgb(255,0,0)", "rgb(0,0,0)"), 1e-9)
	assert.InDelta(t, 5.0, DistanceFunctional("rgb(3,4)", "rgb(0,0,0)"), 1e-9)
}

func TestMetrics_Properties(t *testing.T) {
	metrics := map[string]Metric{"euclidean": Euclidean{}, "lab": Lab{}}

	for name, m := range metrics {
		t.Run(name, func(t *testing.T) {
			for _, a := range sampleColors {
				assert.InDelta(t, 0.0, m.Distance(a, a), 1e-9, "distance(%v, %v)", a, a)
				for _, b := range sampleColors {
					ab := m.Distance(a, b)
					assert.GreaterOrEqual(t, ab, 0.0)
					assert.InDelta(t, ab, m.Distance(b, a), 1e-9, "symmetry for %v, %v", a, b)
					if a != b {
						assert.Greater(t, ab, 0.0, "distinct colors %v, %v", a, b)
					}
				}
			}
		})
	}
}

func TestLab_BlackWhiteIsFullLightnessRange(t *testing.T) {
	assert.InDelta(t, 100.0, Lab{}.Distance(RGB{}, RGB{255, 255, 255}), 0.5)
}

func TestMetricByName(t *testing.T) {
	for _, name := range []string{"", "rgb", "Euclidean"} {
		m, err := MetricByName(name)
		require.NoError(t, err)
		assert.IsType(t, Euclidean{}, m)
	}

	m, err := MetricByName("LAB")
	require.NoError(t, err)
	assert.IsType(t, Lab{}, m)

	_, err = MetricByName("hsv")
	assert.ErrorIs(t, err, ErrUnknownMetric)
}

func TestNewEngine_DefaultsToEuclidean(t *testing.T) {
	e := NewEngine(nil)
	assert.IsType(t, Euclidean{}, e.Metric())
	assert.InDelta(t, 255.0, e.Distance(RGB{}, RGB{R: 255}), 1e-9)
}

func TestMetricNames(t *testing.T) {
	for _, name := range []string{"euclidean", "lab"} {
		m, err := MetricByName(name)
		require.NoError(t, err)
		assert.Equal(t, name, fmt.Sprint(m))
	}
}
