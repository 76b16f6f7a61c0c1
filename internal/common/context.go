package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
	ContextKeyImageRef  contextKey = "image_ref"
)

// WithRequestID adds a request ID to the context
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// RequestIDFromContext extracts the request ID from context
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return requestID
	}
	return ""
}

// WithImageRef tags the context with the image currently being processed.
func WithImageRef(ctx context.Context, ref string) context.Context {
	return context.WithValue(ctx, ContextKeyImageRef, ref)
}

// ImageRefFromContext extracts the current image reference from context
func ImageRefFromContext(ctx context.Context) string {
	if ref, ok := ctx.Value(ContextKeyImageRef).(string); ok {
		return ref
	}
	return ""
}
