// Package requestctx carries per-request metadata shared by pointer between
// middleware layers, so the outer request logger sees what inner layers such
// as authentication learned about the caller.
package requestctx

import "context"

type ctxKey struct{}

type Meta struct {
	RequestID string
	// UserID and Role stay empty for anonymous requests.
	UserID string
	Role   string
}

func With(ctx context.Context, meta *Meta) context.Context {
	return context.WithValue(ctx, ctxKey{}, meta)
}

// From returns the request's Meta, or nil outside a request.
func From(ctx context.Context) *Meta {
	meta, _ := ctx.Value(ctxKey{}).(*Meta)
	return meta
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return With(ctx, &Meta{RequestID: requestID})
}

func GetRequestID(ctx context.Context) string {
	if meta := From(ctx); meta != nil {
		return meta.RequestID
	}
	return ""
}

// SetActor records the authenticated caller. It is a no-op when ctx carries
// no Meta.
func SetActor(ctx context.Context, userID, role string) {
	if meta := From(ctx); meta != nil {
		meta.UserID = userID
		meta.Role = role
	}
}
