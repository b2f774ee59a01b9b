package colormatch

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

var ErrUnknownMetric = errors.New("unknown distance metric")

// Metric measures dissimilarity between two colors. Implementations must be
// non-negative, symmetric and zero for equal colors.
type Metric interface {
	Distance(a, b RGB) float64
}

// Euclidean is straight-line distance in RGB space, in [0, ~441.67].
type Euclidean struct{}

func (Euclidean) String() string { return "euclidean" }

func (Euclidean) Distance(a, b RGB) float64 {
	dr := float64(a.R) - float64(b.R)
	dg := float64(a.G) - float64(b.G)
	db := float64(a.B) - float64(b.B)
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// Lab is the CIE76 Delta-E distance, computed in CIE Lab space.
type Lab struct{}

func (Lab) String() string { return "lab" }

func (Lab) Distance(a, b RGB) float64 {
	return toColorful(a).DistanceLab(toColorful(b)) * 100
}

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// MetricByName maps a configuration value to a Metric.
func MetricByName(name string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "rgb", "euclidean":
		return Euclidean{}, nil
	case "lab", "cie76":
		return Lab{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
	}
}

// DistanceHex is the Euclidean distance between two #rrggbb strings.
// Malformed channels decode to 0.
func DistanceHex(a, b string) float64 {
	return Euclidean{}.Distance(DecodeHex(a), DecodeHex(b))
}

// DistanceFunctional is the Euclidean distance between two rgb(...) style
// strings. Missing channels decode to 0.
func DistanceFunctional(a, b string) float64 {
	return Euclidean{}.Distance(DecodeFunctional(a), DecodeFunctional(b))
}
