package httpx

import (
	"context"
	"net/http"
)

type contextKey string

const (
	actorIDKey    contextKey = "actorID"
	actorStaffKey contextKey = "actorStaff"
	requestIDKey  contextKey = "requestID"
)

// ContextWithActor returns a new context carrying the authenticated
// caller's id and staff flag.
func ContextWithActor(ctx context.Context, userID int64, staff bool) context.Context {
	ctx = context.WithValue(ctx, actorIDKey, userID)
	return context.WithValue(ctx, actorStaffKey, staff)
}

// ActorFrom retrieves the authenticated caller from the request
// context. ok is false for anonymous requests.
func ActorFrom(r *http.Request) (userID int64, staff bool, ok bool) {
	userID, ok = r.Context().Value(actorIDKey).(int64)
	if !ok {
		return 0, false, false
	}
	staff, _ = r.Context().Value(actorStaffKey).(bool)
	return userID, staff, true
}

// ContextWithRequestID returns a new context with the request ID.
func ContextWithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// RequestIDFrom retrieves the request ID from the request context.
func RequestIDFrom(r *http.Request) string {
	if v, ok := r.Context().Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}
