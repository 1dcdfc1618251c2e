package domain

import (
	"context"

	"forword/internal/core/filter"
)

// FilterPort hands out the live filter and rebuilds it on demand
type FilterPort interface {
	// Current returns the filter serving requests right now; never nil
	Current() *filter.Filter
	// Reload rebuilds from the configured source and swaps it in.
	// On failure the current filter keeps serving
	Reload(ctx context.Context) (*filter.Filter, error)
}
