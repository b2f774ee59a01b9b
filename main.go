package main

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/gradient-catalog/api/api"
	"github.com/gradient-catalog/api/catalog"
	"github.com/gradient-catalog/api/colormatch"
	"github.com/gradient-catalog/api/datastore"
	"github.com/gradient-catalog/api/logging"
	"github.com/gradient-catalog/api/migrations"
	"github.com/gradient-catalog/api/scheduler"
	"github.com/gradient-catalog/api/snippet"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Get configuration from environment
	config := loadConfig()

	logging.Setup(os.Stderr, config.LogLevel, config.DevMode)

	metric, err := colormatch.MetricByName(config.DistanceMetric)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid DISTANCE_METRIC")
	}

	gradients, err := loadCatalog(config)
	if err != nil {
		log.Fatal().Err(err).Str("source", config.CatalogSource).Msg("Failed to load catalog")
	}
	log.Info().
		Str("source", config.CatalogSource).
		Int("gradients", gradients.Len()).
		Int("unique_colors", colormatch.CountUnique(gradients)).
		Msg("Catalog loaded")

	engine := colormatch.NewEngine(metric)
	palette := colormatch.TailwindPalette()

	// Start scheduler for featured color generation
	colorScheduler := scheduler.NewScheduler(engine, palette, gradients, config.ResultLimit)
	colorScheduler.Start()
	defer colorScheduler.Stop()

	// Create application
	app := &api.Application{
		Config:   config,
		Engine:   engine,
		Palette:  palette,
		Catalog:  gradients,
		Snippets: snippet.NewGenerator(engine, palette),
		Featured: colorScheduler,
	}

	// Create and start server
	mux := http.NewServeMux()

	log.Info().Str("metric", fmt.Sprint(metric)).Msg("Gradient Catalog API Starting...")
	if err := app.Serve(mux); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}

func loadConfig() api.Config {
	return api.Config{
		HTTPPort:         getEnv("HTTP_PORT", ":8080"),
		CatalogSource:    getEnv("CATALOG_SOURCE", "embedded"),
		CatalogPath:      getEnv("CATALOG_PATH", ""),
		DistanceMetric:   getEnv("DISTANCE_METRIC", "euclidean"),
		ResultLimit:      getEnvInt("RESULT_LIMIT", colormatch.DefaultLimit),
		MaxResultLimit:   getEnvInt("MAX_RESULT_LIMIT", 100),
		DatabaseType:     getEnv("DB_TYPE", "postgres"),
		DatabaseHost:     getEnv("DB_HOST", "localhost"),
		DatabaseUser:     getEnv("DB_USER", "postgres"),
		DatabasePassword: getEnv("DB_PASSWORD", ""),
		DatabaseName:     getEnv("DB_NAME", "gradients"),
		SSLMode:          getEnv("SSL_MODE", "disable"),
		SeedCatalog:      getEnvBool("SEED_CATALOG", true),
		AllowedOrigins:   getEnvSlice("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5173"),
		DevMode:          getEnvBool("DEV_MODE", true),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// loadCatalog builds the catalog from the source named by CATALOG_SOURCE
func loadCatalog(config api.Config) (*colormatch.Catalog, error) {
	switch strings.ToLower(config.CatalogSource) {
	case "", "embedded":
		return catalog.LoadEmbedded()
	case "file":
		if config.CatalogPath == "" {
			return nil, fmt.Errorf("CATALOG_PATH is required when CATALOG_SOURCE is file")
		}
		return catalog.LoadFile(config.CatalogPath)
	case "postgres":
		return loadPostgresCatalog(config)
	default:
		return nil, fmt.Errorf("unknown CATALOG_SOURCE %q", config.CatalogSource)
	}
}

func loadPostgresCatalog(config api.Config) (*colormatch.Catalog, error) {
	// Create database connection
	connStr := datastore.BuildDBConnStr(
		config.DatabaseHost,
		config.DatabasePassword,
		config.DatabaseUser,
		config.DatabaseName,
		config.SSLMode,
	)

	dbConn, err := datastore.NewDB(config.DatabaseType, connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	// The catalog is read once at startup and kept in memory
	defer dbConn.Close()

	// Run database migrations
	log.Info().Msg("Running database migrations...")
	if err := migrations.RunMigrations(dbConn); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	gradientRepo, err := datastore.NewGradientDatabase(dbConn)
	if err != nil {
		return nil, fmt.Errorf("failed to create gradient repository: %w", err)
	}

	if config.SeedCatalog {
		embedded, err := catalog.LoadEmbedded()
		if err != nil {
			return nil, err
		}
		seeded, err := datastore.SeedCatalog(gradientRepo, embedded)
		if err != nil {
			return nil, fmt.Errorf("failed to seed catalog: %w", err)
		}
		if seeded > 0 {
			log.Info().Int("gradients", seeded).Msg("Seeded empty gradients table")
		}
	}

	return datastore.LoadCatalog(gradientRepo)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intVal, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return intVal
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	boolVal, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return boolVal
}

func getEnvSlice(key, defaultValue string) []string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return strings.Split(value, ",")
}
