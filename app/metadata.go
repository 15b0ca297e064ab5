package app

// Version is the API version reported by every endpoint.
const Version = "0.1.0"

// Metadata describes the API for the root endpoint and the generated docs.
type Metadata struct {
	Title       string
	Description string
	Version     string
	DocsURL     string
	RedocURL    string
	OpenAPIURL  string
}

// DefaultMetadata returns the fixed CatBot API metadata
func DefaultMetadata() Metadata {
	return Metadata{
		Title:       "CatBot API",
		Description: "API for CatBot - Your AI Cat Companion for Creators",
		Version:     Version,
		DocsURL:     "/api/docs",
		RedocURL:    "/api/redoc",
		OpenAPIURL:  "/api/openapi.json",
	}
}
