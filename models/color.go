package models

import "github.com/gradient-catalog/api/colormatch"

// GradientResponse is the wire shape of a catalog gradient
type GradientResponse struct {
	Name     string   `json:"name"`
	Colors   []string `json:"colors"`
	Category string   `json:"category"`
	Kind     string   `json:"kind"`
	Artist   string   `json:"artist,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// RankedGradient is one entry of a similarity ranking
type RankedGradient struct {
	Gradient GradientResponse `json:"gradient"`
	Score    float64          `json:"score"`
}

type SimilarResponse struct {
	Probe   string           `json:"probe"`
	Metric  string           `json:"metric"`
	Limit   int              `json:"limit"`
	Results []RankedGradient `json:"results"`
}

// NearestColorResponse names the palette swatch closest to a color
type NearestColorResponse struct {
	Input    string  `json:"input"`
	Hex      string  `json:"hex"`
	RGB      string  `json:"rgb"`
	Name     string  `json:"name"`
	NameHex  string  `json:"name_hex"`
	Distance float64 `json:"distance"`
	Exact    bool    `json:"exact"`
}

type SnippetResponse struct {
	Gradient string `json:"gradient"`
	Format   string `json:"format"`
	Snippet  string `json:"snippet"`
}

type StatsResponse struct {
	Gradients    int `json:"gradients"`
	Categories   int `json:"categories"`
	UniqueColors int `json:"unique_colors"`
	PaletteSize  int `json:"palette_size"`
}

func NewGradientResponse(g colormatch.Gradient) GradientResponse {
	colors := make([]string, len(g.Colors))
	for i, c := range g.Colors {
		colors[i] = c.Hex()
	}
	return GradientResponse{
		Name:     g.Name,
		Colors:   colors,
		Category: g.Category,
		Kind:     string(g.Kind),
		Artist:   g.Artist,
		Tags:     g.Tags,
	}
}

func NewRankedGradients(results []colormatch.RankedResult) []RankedGradient {
	ranked := make([]RankedGradient, len(results))
	for i, r := range results {
		ranked[i] = RankedGradient{Gradient: NewGradientResponse(r.Gradient), Score: r.Score}
	}
	return ranked
}
