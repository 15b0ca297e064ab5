package handlers

import (
	"net/http"
	"strings"

	"github.com/catbot/catbot-api/app"
)

// Operation describes one documented route.
type Operation struct {
	Method      string
	Path        string
	Summary     string
	OperationID string
	Handler     http.HandlerFunc
	// Response is the JSON schema of the 200 response body.
	Response map[string]interface{}
}

// Operations returns the routes that make up the public API
func Operations(deps *app.Dependencies) []Operation {
	return []Operation{
		{
			Method:      http.MethodGet,
			Path:        "/api/health",
			Summary:     "Health Check",
			OperationID: "health_check_api_health_get",
			Handler:     HealthCheck(deps),
			Response: objectSchema("HealthResponse", map[string]interface{}{
				"status":  stringSchema("Status"),
				"version": stringSchema("Version"),
			}, "status", "version"),
		},
		{
			Method:      http.MethodGet,
			Path:        "/",
			Summary:     "Root",
			OperationID: "root__get",
			Handler:     Root(deps),
			Response: objectSchema("RootResponse", map[string]interface{}{
				"message": stringSchema("Message"),
				"docs":    stringSchema("Docs"),
				"version": stringSchema("Version"),
			}, "message", "docs", "version"),
		},
	}
}

// BuildOpenAPI renders an OpenAPI 3.1 document for ops
func BuildOpenAPI(meta app.Metadata, ops []Operation) map[string]interface{} {
	paths := map[string]interface{}{}
	for _, op := range ops {
		item, ok := paths[op.Path].(map[string]interface{})
		if !ok {
			item = map[string]interface{}{}
			paths[op.Path] = item
		}
		item[strings.ToLower(op.Method)] = map[string]interface{}{
			"summary":     op.Summary,
			"operationId": op.OperationID,
			"responses": map[string]interface{}{
				"200": map[string]interface{}{
					"description": "Successful Response",
					"content": map[string]interface{}{
						"application/json": map[string]interface{}{
							"schema": op.Response,
						},
					},
				},
			},
		}
	}

	return map[string]interface{}{
		"openapi": "3.1.0",
		"info": map[string]interface{}{
			"title":       meta.Title,
			"description": meta.Description,
			"version":     meta.Version,
		},
		"paths": paths,
	}
}

// OpenAPISchema serves the OpenAPI document. The document is built once.
func OpenAPISchema(deps *app.Dependencies, ops []Operation) http.HandlerFunc {
	doc := BuildOpenAPI(deps.Metadata, ops)
	return func(w http.ResponseWriter, r *http.Request) {
		respond(deps, w, http.StatusOK, doc)
	}
}

func objectSchema(title string, properties map[string]interface{}, required ...string) map[string]interface{} {
	return map[string]interface{}{
		"title":      title,
		"type":       "object",
		"properties": properties,
		"required":   required,
	}
}

func stringSchema(title string) map[string]interface{} {
	return map[string]interface{}{"title": title, "type": "string"}
}
