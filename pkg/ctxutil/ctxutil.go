// Package ctxutil carries request-scoped identifiers through context.Context.
package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type (
	userIDKey    struct{}
	requestIDKey struct{}
	tabIDKey     struct{}
)

func lookupID(ctx context.Context, key any) (uuid.UUID, bool) {
	id, ok := ctx.Value(key).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithUserID attaches the authenticated user.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey{}, id)
}

// UserIDFromCtx reports false for a missing or nil user.
func UserIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return lookupID(ctx, userIDKey{})
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// WithTabID attaches the browser tab connection that issued the command.
func WithTabID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, tabIDKey{}, id)
}

func TabIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	return lookupID(ctx, tabIDKey{})
}
