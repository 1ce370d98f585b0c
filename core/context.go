package core

import "context"

// Context keys for report options
type contextKey string

const skipGeometryKey contextKey = "skipGeometry"

// WithSkipGeometry marks the context so reports leave out chart geometry.
func WithSkipGeometry(ctx context.Context) context.Context {
	return context.WithValue(ctx, skipGeometryKey, true)
}

// shouldSkipGeometry returns whether chart geometry should be skipped
func shouldSkipGeometry(ctx context.Context) bool {
	val := ctx.Value(skipGeometryKey)
	if val == nil {
		return false // default: draw everything
	}
	skip, ok := val.(bool)
	return ok && skip
}
