package handler

import (
	_ "embed"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// openapiSpecFile is where the OpenAPI document lives in the repository. It
// is read on every request, so editing the document does not need a rebuild.
const openapiSpecFile = "api/openapi.yaml"

// Swagger UI shell, assets pulled from a CDN so nothing heavy gets bundled.
// It points the UI at OpenAPISpecPath.
//
//go:embed swagger.html
var swaggerHTML string

// RegisterDocs mounts the documentation pair: the raw OpenAPI document for
// tooling and a Swagger UI page rendering it for people.
func RegisterDocs(r *gin.Engine) {
	r.GET(OpenAPISpecPath, serveOpenAPISpec)
	r.GET(DocsPath, func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})
}

func serveOpenAPISpec(c *gin.Context) {
	data, err := os.ReadFile(openapiSpecFile)
	if err != nil {
		c.String(http.StatusInternalServerError, "openapi document unavailable: %v", err)
		return
	}
	c.Data(http.StatusOK, "application/yaml; charset=utf-8", data)
}
