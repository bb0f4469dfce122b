package infrastructure

import (
	"context"

	"github.com/google/uuid"
)

type contextKey string

// runIDContextKey is the context key for the per-invocation run ID.
const runIDContextKey contextKey = "run_id"

// NewRunID generates a unique ID for one agent invocation.
func NewRunID() string {
	return uuid.New().String()
}

// WithRunID attaches a run ID to the context.
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDContextKey, runID)
}

// RunID returns the run ID carried by the context, or empty.
func RunID(ctx context.Context) string {
	if runID, ok := ctx.Value(runIDContextKey).(string); ok {
		return runID
	}
	return ""
}
