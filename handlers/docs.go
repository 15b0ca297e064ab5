package handlers

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/catbot/catbot-api/app"
	"github.com/catbot/catbot-api/utils"
	"go.uber.org/zap"
)

const (
	swaggerUIBundle = "https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"
	swaggerUICSS    = "https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css"
	redocBundle     = "https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"
)

var swaggerUITemplate = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}} - Swagger UI</title>
<link type="text/css" rel="stylesheet" href="{{.CSS}}">
</head>
<body>
<div id="swagger-ui"></div>
<script src="{{.Bundle}}"></script>
<script>
const ui = SwaggerUIBundle({
    url: {{.OpenAPIURL}},
    dom_id: "#swagger-ui",
    layout: "BaseLayout",
    deepLinking: true,
    showExtensions: true,
    showCommonExtensions: true,
    presets: [
        SwaggerUIBundle.presets.apis,
        SwaggerUIBundle.SwaggerUIStandalonePreset
    ],
})
</script>
</body>
</html>
`))

var redocTemplate = template.Must(template.New("redoc").Parse(`<!DOCTYPE html>
<html>
<head>
<title>{{.Title}} - ReDoc</title>
<meta charset="utf-8"/>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style>
body {
    margin: 0;
    padding: 0;
}
</style>
</head>
<body>
<redoc spec-url="{{.OpenAPIURL}}"></redoc>
<script src="{{.Bundle}}"></script>
</body>
</html>
`))

type docsPage struct {
	Title      string
	OpenAPIURL string
	Bundle     string
	CSS        string
}

// SwaggerUI serves the interactive API documentation
func SwaggerUI(deps *app.Dependencies) http.HandlerFunc {
	return renderPage(deps, swaggerUITemplate, docsPage{
		Title:      deps.Metadata.Title,
		OpenAPIURL: deps.Metadata.OpenAPIURL,
		Bundle:     swaggerUIBundle,
		CSS:        swaggerUICSS,
	})
}

// ReDoc serves the alternate API documentation
func ReDoc(deps *app.Dependencies) http.HandlerFunc {
	return renderPage(deps, redocTemplate, docsPage{
		Title:      deps.Metadata.Title,
		OpenAPIURL: deps.Metadata.OpenAPIURL,
		Bundle:     redocBundle,
	})
}

// renderPage executes tmpl once and serves the result on every request.
func renderPage(deps *app.Dependencies, tmpl *template.Template, page docsPage) http.HandlerFunc {
	var buf bytes.Buffer
	renderErr := tmpl.Execute(&buf, page)
	if renderErr != nil {
		deps.Logger.Error("failed to render docs page", zap.String("template", tmpl.Name()), zap.Error(renderErr))
	}
	body := buf.Bytes()

	return func(w http.ResponseWriter, r *http.Request) {
		if renderErr != nil {
			_ = utils.WriteInternalServerError(w)
			return
		}
		if err := utils.WriteHTML(w, http.StatusOK, body); err != nil {
			deps.Logger.Error("failed to write docs page", zap.Error(err))
		}
	}
}
