package colormatch

import (
	"math"
	"sort"
)

// DefaultLimit is the number of results Rank returns when no limit is given.
const DefaultLimit = 12

// RankedResult pairs a gradient with its distance to the probe color.
type RankedResult struct {
	Gradient Gradient `json:"gradient"`
	Score    float64  `json:"score"`
}

// Score is the smallest distance from probe to any color of g.
func (e *Engine) Score(probe RGB, g Gradient) float64 {
	best := math.Inf(1)
	for _, c := range g.Colors {
		if d := e.metric.Distance(probe, c); d < best {
			best = d
		}
	}
	return best
}

// Rank orders the catalog by ascending Score and keeps the first limit
// entries. Gradients with equal scores keep their catalog order. A limit of
// zero or less means DefaultLimit.
func (e *Engine) Rank(probe RGB, c *Catalog, limit int) []RankedResult {
	if limit <= 0 {
		limit = DefaultLimit
	}

	results := make([]RankedResult, 0, c.Len())
	if c == nil {
		return results
	}
	for _, g := range c.gradients {
		results = append(results, RankedResult{Gradient: g.clone(), Score: e.Score(probe, g)})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score < results[j].Score
	})

	if len(results) > limit {
		results = results[:limit]
	}
	return results
}
