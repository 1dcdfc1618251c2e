// Package net provides utilities for working with request contexts
package net

import (
	"context"

	"forword/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const keyGeneration ctxKey = "dict_generation"

// WithRequest annotates ctx with the request id for both chi and the logger
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, chimw.RequestIDKey, reqID)
	return logger.WithRequest(ctx, reqID)
}

// WithGeneration records which dictionary generation handled the request
func WithGeneration(ctx context.Context, gen string) context.Context {
	if gen == "" {
		return ctx
	}
	ctx = context.WithValue(ctx, keyGeneration, gen)
	return logger.WithGeneration(ctx, gen)
}

// RequestID returns the request id on the context if present
func RequestID(ctx context.Context) string { return chimw.GetReqID(ctx) }

// Generation returns the dictionary generation on the context if present
func Generation(ctx context.Context) string {
	if v, ok := ctx.Value(keyGeneration).(string); ok {
		return v
	}
	return ""
}
