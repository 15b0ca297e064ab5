package handlers

import (
	"net/http"
	"strings"

	"github.com/catbot/catbot-api/app"
	"github.com/catbot/catbot-api/utils"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WelcomeMessage is returned by the root endpoint.
const WelcomeMessage = "Welcome to CatBot API!"

// HealthResponse is the body of GET /api/health
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// RootResponse is the body of GET /
type RootResponse struct {
	Message string `json:"message"`
	Docs    string `json:"docs"`
	Version string `json:"version"`
}

// HealthCheck reports that the process is serving requests
func HealthCheck(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(deps, w, http.StatusOK, HealthResponse{
			Status:  "healthy",
			Version: deps.Metadata.Version,
		})
	}
}

// Root greets the caller and points at the interactive docs
func Root(deps *app.Dependencies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respond(deps, w, http.StatusOK, RootResponse{
			Message: WelcomeMessage,
			Docs:    deps.Metadata.DocsURL,
			Version: deps.Metadata.Version,
		})
	}
}

// NotFound handles requests to unmounted routes
func NotFound(w http.ResponseWriter, r *http.Request) {
	_ = utils.WriteNotFound(w)
}

// MethodNotAllowed handles known routes requested with the wrong method. The
// Allow header lists which of methods the router serves for the request path.
func MethodNotAllowed(router chi.Routes, methods []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var allowed []string
		for _, method := range methods {
			if router.Match(chi.NewRouteContext(), method, r.URL.Path) {
				allowed = append(allowed, method)
			}
		}
		if len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		_ = utils.WriteMethodNotAllowed(w)
	}
}

func respond(deps *app.Dependencies, w http.ResponseWriter, status int, data interface{}) {
	if err := utils.WriteJSON(w, status, data); err != nil {
		deps.Logger.Error("failed to write response", zap.Error(err))
	}
}
