package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gradient-catalog/api/colormatch"
	"github.com/gradient-catalog/api/models"
	"github.com/gradient-catalog/api/snippet"
)

var (
	errMissingColor = errors.New("color query parameter is required")
	errMissingName  = errors.New("name query parameter is required")
	errNoFeatured   = errors.New("no featured color has been generated yet")
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(v)
}

// GET /
func (app *Application) home(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, "Gradient Catalog API")
}

// GET /v1/gradients?kind=&category=&tag=&q=
func (app *Application) listGradients(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	query := colormatch.Query{
		Category: params.Get("category"),
		Tag:      params.Get("tag"),
		Search:   params.Get("q"),
	}
	if kind := params.Get("kind"); kind != "" {
		parsed, err := colormatch.ParseKind(kind)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		query.Kind = parsed
	}

	gradients := app.Catalog.Filter(query).Gradients()
	response := make([]models.GradientResponse, len(gradients))
	for i, g := range gradients {
		response[i] = models.NewGradientResponse(g)
	}

	writeJSON(w, map[string]any{
		"count":     len(response),
		"gradients": response,
	})
}

// GET /v1/gradients/get?name=
func (app *Application) getGradient(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(r.URL.Query().Get("name"))
	if name == "" {
		app.badRequest(w, r, errMissingName)
		return
	}

	gradient, err := app.Catalog.Lookup(name)
	if err != nil {
		app.notFound(w, r, err)
		return
	}

	writeJSON(w, models.NewGradientResponse(gradient))
}

// GET /v1/gradients/similar?color=&limit=
func (app *Application) getSimilarGradients(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	probe, err := parseColorParam(params.Get("color"))
	if errors.Is(err, colormatch.ErrMalformedColor) {
		app.badColor(w, r, err)
		return
	}
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	limit, err := app.resultLimit(params.Get("limit"))
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	results := app.Engine.Rank(probe, app.Catalog, limit)

	writeJSON(w, models.SimilarResponse{
		Probe:   probe.Hex(),
		Metric:  fmt.Sprint(app.Engine.Metric()),
		Limit:   limit,
		Results: models.NewRankedGradients(results),
	})
}

// GET /v1/gradients/snippet?name=&format=
func (app *Application) getSnippet(w http.ResponseWriter, r *http.Request) {
	params := r.URL.Query()

	name := strings.TrimSpace(params.Get("name"))
	if name == "" {
		app.badRequest(w, r, errMissingName)
		return
	}

	format := snippet.Tailwind
	if raw := params.Get("format"); raw != "" {
		parsed, err := snippet.ParseFormat(raw)
		if err != nil {
			app.badRequest(w, r, err)
			return
		}
		format = parsed
	}

	gradient, err := app.Catalog.Lookup(name)
	if err != nil {
		app.notFound(w, r, err)
		return
	}

	text, err := app.Snippets.Generate(gradient, format)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, models.SnippetResponse{
		Gradient: gradient.Name,
		Format:   string(format),
		Snippet:  text,
	})
}

// GET /v1/colors/nearest?color=
func (app *Application) getNearestColor(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("color")
	c, err := parseColorParam(raw)
	if errors.Is(err, colormatch.ErrMalformedColor) {
		app.badColor(w, r, err)
		return
	}
	if err != nil {
		app.badRequest(w, r, err)
		return
	}

	swatch, distance, err := app.Engine.NearestNamed(c, app.Palette)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	writeJSON(w, models.NearestColorResponse{
		Input:    raw,
		Hex:      c.Hex(),
		RGB:      c.Functional(),
		Name:     swatch.Name,
		NameHex:  swatch.Color.Hex(),
		Distance: distance,
		Exact:    distance == 0,
	})
}

// GET /v1/colors/featured
func (app *Application) getFeaturedColor(w http.ResponseWriter, r *http.Request) {
	if app.Featured == nil {
		app.notFound(w, r, errNoFeatured)
		return
	}

	featured, ok := app.Featured.Current()
	if !ok {
		app.notFound(w, r, errNoFeatured)
		return
	}

	writeJSON(w, models.FeaturedColorResponse{
		Date:      featured.Date.Format("2006-01-02"),
		ColorName: featured.ColorName,
		RGB:       featured.Color.Functional(),
		Hex:       featured.Color.Hex(),
		Distance:  featured.Distance,
		Similar:   models.NewRankedGradients(featured.Similar),
	})
}

// GET /v1/categories
func (app *Application) getCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, app.Catalog.Categories())
}

// GET /v1/stats
func (app *Application) getStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, models.StatsResponse{
		Gradients:    app.Catalog.Len(),
		Categories:   len(app.Catalog.Categories()),
		UniqueColors: colormatch.CountUnique(app.Catalog),
		PaletteSize:  app.Palette.Len(),
	})
}

func parseColorParam(raw string) (colormatch.RGB, error) {
	if strings.TrimSpace(raw) == "" {
		return colormatch.RGB{}, errMissingColor
	}
	return colormatch.ParseColor(raw)
}

func (app *Application) resultLimit(raw string) (int, error) {
	limit := app.Config.ResultLimit
	if limit <= 0 {
		limit = colormatch.DefaultLimit
	}

	if raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, fmt.Errorf("limit must be an integer, got %q", raw)
		}
		if parsed <= 0 {
			return 0, fmt.Errorf("limit must be positive, got %d", parsed)
		}
		limit = parsed
	}

	if app.Config.MaxResultLimit > 0 && limit > app.Config.MaxResultLimit {
		limit = app.Config.MaxResultLimit
	}
	return limit, nil
}
