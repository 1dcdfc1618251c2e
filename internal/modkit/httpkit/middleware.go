package httpkit

import (
	"net/http"
	"time"

	"forword/internal/platform/net/middleware"
)

// StackOptions tunes CommonStack
type StackOptions struct {
	Timeout     time.Duration // per request, default 30s
	CORSOrigins []string      // empty disables CORS
	Throttle    int           // max in-flight requests, 0 disables
}

// CommonStack returns the baseline middleware for a versioned API scope:
// the platform defaults, then CORS and throttling when configured
func CommonStack(o StackOptions) []func(http.Handler) http.Handler {
	if o.Timeout <= 0 {
		o.Timeout = 30 * time.Second
	}
	stack := middleware.Defaults(o.Timeout)
	if len(o.CORSOrigins) > 0 {
		stack = append(stack, middleware.CORS(middleware.CORSOptions{AllowedOrigins: o.CORSOrigins}))
	}
	if o.Throttle > 0 {
		stack = append(stack, middleware.Throttle(o.Throttle, o.Throttle*2, o.Timeout))
	}
	return append(stack, middleware.AllowJSON())
}
