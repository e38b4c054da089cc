package api

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/RMahshie/pwmlab/internal/chart"
	"github.com/RMahshie/pwmlab/internal/content"
)

// RouterOptions holds what the router needs to serve the page and the API
type RouterOptions struct {
	AllowedOrigins []string
	Frequency      float64
	Renderer       chart.Renderer
	Lesson         *content.Lesson
	Page           *template.Template
	Static         fs.FS
}

// NewRouter builds the chi router with middleware, the huma API and all routes
func NewRouter(opts RouterOptions) http.Handler {
	router := chi.NewRouter()

	// Middleware
	router.Use(RequestID)
	router.Use(middleware.RealIP)
	router.Use(RequestLogger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Compress(5))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: opts.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	// Create Huma API
	config := huma.DefaultConfig("PWM Lab API", Version)
	config.DocsPath = "/api/docs"
	config.OpenAPIPath = "/api/openapi"
	api := humachi.New(router, config)

	RegisterRoutes(router, api, opts.Renderer, opts.Lesson, opts.Page, opts.Static, opts.Frequency)

	return router
}
