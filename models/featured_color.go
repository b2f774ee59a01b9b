package models

import (
	"time"

	"github.com/gradient-catalog/api/colormatch"
)

// FeaturedColor is the color of the day and the gradients closest to it
type FeaturedColor struct {
	Date      time.Time
	Color     colormatch.RGB
	ColorName string
	Distance  float64
	Similar   []colormatch.RankedResult
}

// FeaturedColorResponse is the simplified response for API endpoints
type FeaturedColorResponse struct {
	Date      string           `json:"date"`
	ColorName string           `json:"color_name"`
	RGB       string           `json:"rgb"`
	Hex       string           `json:"hex"`
	Distance  float64          `json:"distance"`
	Similar   []RankedGradient `json:"similar"`
}
