//go:build !swag

// Package swaggerkit serves the OpenAPI document and Swagger UI for the HTTP API
package swaggerkit

// docReader is a seam so tests can inject invalid JSON
var docReader = func() string { return string(embedded) }
