package api

import (
	"net/http"
	"regexp"
	"strings"
)

var localhostPattern = regexp.MustCompile(`^localhost:\d+$`)

func cleanOrigin(origin string) string {
	cleanedOrigin := strings.TrimPrefix(origin, "https://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "http://")
	cleanedOrigin = strings.TrimPrefix(cleanedOrigin, "wss://")
	if idx := strings.Index(cleanedOrigin, "/"); idx != -1 {
		cleanedOrigin = cleanedOrigin[:idx]
	}
	return cleanedOrigin
}

func isAllowedOrigin(origin string, allowedOrigins []string, devMode bool) bool {
	cleanedRequest := cleanOrigin(origin)

	// Allow localhost for development
	if devMode && localhostPattern.MatchString(cleanedRequest) {
		return true
	}

	for _, allowed := range allowedOrigins {
		if cleanOrigin(strings.TrimSpace(allowed)) == cleanedRequest {
			return true
		}
	}

	return false
}

func wrapMuxWithCorsAndOrigins(mux *http.ServeMux, app *Application) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if origin == "" {
			origin = r.Header.Get("Referer")
		}

		if origin == "" || isAllowedOrigin(origin, app.Config.AllowedOrigins, app.Config.DevMode) {
			handleCors(mux.ServeHTTP)(w, r)
			return
		}

		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte("origin not allowed: " + cleanOrigin(origin)))
	})
}

func (app *Application) BuildRoutes(mux *http.ServeMux) http.Handler {
	mux.HandleFunc("/", app.requireGet(app.home))
	mux.HandleFunc("/v1/gradients", app.requireGet(app.listGradients))
	mux.HandleFunc("/v1/gradients/get", app.requireGet(app.getGradient))
	mux.HandleFunc("/v1/gradients/similar", app.requireGet(app.getSimilarGradients))
	mux.HandleFunc("/v1/gradients/snippet", app.requireGet(app.getSnippet))
	mux.HandleFunc("/v1/colors/nearest", app.requireGet(app.getNearestColor))
	mux.HandleFunc("/v1/colors/featured", app.requireGet(app.getFeaturedColor))
	mux.HandleFunc("/v1/categories", app.requireGet(app.getCategories))
	mux.HandleFunc("/v1/stats", app.requireGet(app.getStats))

	// Wrap entire mux with CORS and origins check, then request logging
	return requestLogger(wrapMuxWithCorsAndOrigins(mux, app))
}
