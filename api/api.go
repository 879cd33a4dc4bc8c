// Package api holds the committed OpenAPI contract for the service.
package api

import _ "embed"

// OpenAPISpec is the raw openapi.yml document. The HTTP adapter parses it at
// startup and serves it at /openapi.json.
//
//go:embed openapi.yml
var OpenAPISpec []byte
