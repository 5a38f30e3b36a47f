package httpapi

import (
	_ "embed"
	"html/template"
	"net/http"
	"strings"
)

//go:embed openapi.yaml
var openAPISpec []byte

var swaggerPage = template.Must(template.New("docs").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>Cricket Live API Docs</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: {{.SpecURL}},
        dom_id: '#swagger-ui',
        deepLinking: true,
        presets: [SwaggerUIBundle.presets.apis],
      });
    </script>
  </body>
</html>`))

func registerDocsRoutes(mux *http.ServeMux, prefix string, handler *Handler) {
	mux.HandleFunc("GET "+prefix+"/openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET "+prefix+"/docs", handler.SwaggerUI)
	mux.HandleFunc("GET "+prefix+"/docs/", handler.SwaggerUI)
}

func (h *Handler) OpenAPI(w http.ResponseWriter, r *http.Request) {
	_, span := startSpan(r.Context(), "httpapi.Handler.OpenAPI")
	defer span.End()

	w.Header().Set("Content-Type", "application/yaml; charset=utf-8")
	_, _ = w.Write(openAPISpec)
}

// SwaggerUI points the page at the spec under the same prefix it was
// served from, so /api/docs works behind a proxy that only forwards /api.
func (h *Handler) SwaggerUI(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SwaggerUI")
	defer span.End()

	specURL := "/openapi.yaml"
	if strings.HasPrefix(r.URL.Path, "/api/") {
		specURL = "/api/openapi.yaml"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := swaggerPage.Execute(w, struct{ SpecURL string }{SpecURL: specURL}); err != nil {
		h.logger.WarnContext(ctx, "render docs page failed", "error", err)
	}
}
