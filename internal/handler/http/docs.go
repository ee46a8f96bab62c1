package http

import (
	"html/template"
	"net/http"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-codeblocks/internal/logger"
	"github.com/MKhiriev/go-codeblocks/internal/utils"
	"github.com/MKhiriev/go-codeblocks/models"
)

const (
	openAPIVersion     = "3.0.3"
	securitySchemeName = "codeblockAuth"
)

var docTemplate = template.Must(template.New("doc").Parse(`<!doctype html>
<html>
  <head>
    <meta charset="utf-8">
    <title>{{.Title}} - API Docs</title>
    <meta name="viewport" content="width=device-width, initial-scale=1">
    <style>body{margin:0;padding:0}</style>
  </head>
  <body>
    <redoc spec-url="{{.SpecURL}}"></redoc>
    <script src="https://cdn.redoc.ly/redoc/latest/bundles/redoc.standalone.js"></script>
  </body>
</html>`))

// pathParamPattern matches chi parameters, with an optional regexp part.
var pathParamPattern = regexp.MustCompile(`\{([^}:]+)(:[^}]*)?\}`)

// docPage serves the ReDoc viewer for the generated OpenAPI document.
func (h *Handler) docPage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := docTemplate.Execute(w, struct {
		Title   string
		SpecURL string
	}{
		Title:   h.options.Title,
		SpecURL: OpenAPIPath,
	})
	if err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.docPage").Msg("error rendering doc page")
	}
}

// openAPI serves the OpenAPI document built from the current route table.
func (h *Handler) openAPI(w http.ResponseWriter, r *http.Request) {
	doc := BuildOpenAPI(h.options, h.options.Routes())
	if _, err := utils.WriteJSON(w, doc, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.openAPI").Msg("error writing OpenAPI document")
	}
}

// BuildOpenAPI renders an OpenAPI 3 document describing routes.
func BuildOpenAPI(options Options, routes []models.Route) map[string]any {
	paths := make(map[string]any, len(routes))
	for _, route := range routes {
		path, params := openAPIPath(route.Path)

		gated := make(map[string]bool, len(route.RequireAuth))
		for _, verb := range route.RequireAuth {
			gated[strings.ToUpper(verb)] = true
		}

		operations := make(map[string]any, len(route.Methods))
		for _, method := range route.Methods {
			operations[strings.ToLower(method)] = openAPIOperation(route, path, method, params, gated[method] && options.SecurityScheme != nil)
		}
		paths[path] = operations
	}

	doc := map[string]any{
		"openapi": openAPIVersion,
		"info": map[string]any{
			"title":       options.Title,
			"version":     options.Version,
			"description": options.Description,
		},
		"paths": paths,
	}
	if options.SecurityScheme != nil {
		doc["components"] = map[string]any{
			"securitySchemes": map[string]any{
				securitySchemeName: options.SecurityScheme,
			},
		}
	}

	return doc
}

func openAPIOperation(route models.Route, path, method string, params []string, secured bool) map[string]any {
	responses := map[string]any{
		"200": map[string]any{"description": "Success"},
		"404": map[string]any{"description": "Not Found"},
	}

	operation := map[string]any{
		"operationId": operationID(method, path),
		"responses":   responses,
	}
	if route.Summary != "" {
		operation["summary"] = route.Summary
	}

	parameters := make([]any, 0, len(params))
	for _, name := range params {
		parameters = append(parameters, map[string]any{
			"name":     name,
			"in":       "path",
			"required": true,
			"schema":   map[string]any{"type": "string"},
		})
	}
	if len(parameters) > 0 {
		operation["parameters"] = parameters
	}

	switch method {
	case http.MethodPost, http.MethodPut:
		operation["requestBody"] = map[string]any{
			"content": map[string]any{
				"application/json": map[string]any{
					"schema": map[string]any{"type": "object"},
				},
			},
		}
		responses["400"] = map[string]any{"description": "Malformed JSON body"}
	}

	if secured {
		operation["security"] = []any{map[string]any{securitySchemeName: []string{}}}
		responses["401"] = map[string]any{"description": "Unauthorized"}
	}

	return operation
}

// openAPIPath converts a chi pattern into an OpenAPI path template and
// returns its parameter names in order.
func openAPIPath(pattern string) (string, []string) {
	var params []string
	path := pathParamPattern.ReplaceAllStringFunc(pattern, func(m string) string {
		name := pathParamPattern.FindStringSubmatch(m)[1]
		params = append(params, name)
		return "{" + name + "}"
	})
	return path, params
}

func operationID(method, path string) string {
	replacer := strings.NewReplacer("/", "_", "{", "", "}", "", "*", "wildcard", "-", "_")
	id := strings.Trim(replacer.Replace(path), "_")
	if id == "" {
		id = "root"
	}
	return strings.ToLower(method) + "_" + id
}
