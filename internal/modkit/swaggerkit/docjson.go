//go:build swag

// Package swaggerkit serves the OpenAPI document and Swagger UI for the HTTP API
package swaggerkit

import "github.com/swaggo/swag/v2"

// InstanceName is the swag registry name the generated docs register under
const InstanceName = "forword"

// docReader prefers the swag generated document and falls back to the embedded one
var docReader = func() string {
	if doc, err := swag.ReadDoc(InstanceName); err == nil && doc != "" {
		return doc
	}
	return string(embedded)
}
