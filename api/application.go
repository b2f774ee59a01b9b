package api

import (
	"github.com/gradient-catalog/api/colormatch"
	"github.com/gradient-catalog/api/models"
	"github.com/gradient-catalog/api/snippet"
)

type Config struct {
	HTTPPort         string
	CatalogSource    string // embedded, file or postgres
	CatalogPath      string
	DistanceMetric   string
	ResultLimit      int
	MaxResultLimit   int
	DatabaseType     string
	DatabaseHost     string
	DatabaseUser     string
	DatabasePassword string
	DatabaseName     string
	SSLMode          string
	SeedCatalog      bool
	AllowedOrigins   []string
	DevMode          bool
	LogLevel         string
}

// FeaturedColorSource supplies the color of the day
type FeaturedColorSource interface {
	Current() (models.FeaturedColor, bool)
}

type Application struct {
	Config   Config
	Engine   *colormatch.Engine
	Palette  *colormatch.Palette
	Catalog  *colormatch.Catalog
	Snippets *snippet.Generator
	Featured FeaturedColorSource
}
