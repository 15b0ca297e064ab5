package routes

import (
	"net/http"

	"github.com/catbot/catbot-api/app"
	"github.com/catbot/catbot-api/config"
	"github.com/catbot/catbot-api/handlers"
	"github.com/catbot/catbot-api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// allMethods stands in for a method wildcard, which go-chi/cors does not support.
var allMethods = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
	http.MethodConnect,
	http.MethodTrace,
}

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.Recoverer(deps.Logger))

	// CORS middleware
	r.Use(cors.Handler(CORSOptions(deps.Settings)))

	ops := handlers.Operations(deps)
	for _, op := range ops {
		r.Method(op.Method, op.Path, op.Handler)
	}

	// Generated documentation
	r.Get(deps.Metadata.OpenAPIURL, handlers.OpenAPISchema(deps, ops))
	r.Get(deps.Metadata.DocsURL, handlers.SwaggerUI(deps))
	r.Get(deps.Metadata.RedocURL, handlers.ReDoc(deps))

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed(r, allMethods))

	return r
}

// CORSOptions allows the configured origins with credentials, any method and
// any header.
func CORSOptions(settings config.Settings) cors.Options {
	opts := cors.Options{
		AllowedOrigins:   settings.CORSOrigins,
		AllowedMethods:   allMethods,
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	}

	// go-chi/cors treats an empty origin list as "allow all".
	if len(settings.CORSOrigins) == 0 {
		opts.AllowOriginFunc = func(*http.Request, string) bool { return false }
	}

	return opts
}
