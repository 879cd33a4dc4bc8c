package http

import (
	"context"
	"net/http"

	"pos/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
)

// LoadOpenAPISpec parses and validates the embedded OpenAPI contract.
// Startup fails on an invalid document so the served spec can never drift
// into something unparseable.
func LoadOpenAPISpec(ctx context.Context) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}

	doc, err := loader.LoadFromData(api.OpenAPISpec)
	if err != nil {
		return nil, err
	}

	if err = doc.Validate(ctx); err != nil {
		return nil, err
	}

	return doc, nil
}

// SpecHandler serves the parsed OpenAPI document as JSON.
func SpecHandler(doc *openapi3.T) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, doc)
	}
}
