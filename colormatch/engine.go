// Package colormatch ranks gradients by similarity to a probe color and
// classifies colors against a named reference palette.
//
// Everything here is a pure function of its arguments. Catalogs and palettes
// are immutable once built, so an Engine can be shared across goroutines.
package colormatch

// Engine binds the ranking and classification operations to a Metric.
type Engine struct {
	metric Metric
}

// NewEngine returns an Engine using m, or Euclidean when m is nil.
func NewEngine(m Metric) *Engine {
	if m == nil {
		m = Euclidean{}
	}
	return &Engine{metric: m}
}

func (e *Engine) Metric() Metric {
	return e.metric
}

func (e *Engine) Distance(a, b RGB) float64 {
	return e.metric.Distance(a, b)
}
