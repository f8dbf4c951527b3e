package shared

import (
	"context"
	"net/http"

	"hrms/internal/domain/org"
	"hrms/internal/platform/requestctx"
)

func GetRequestID(r *http.Request) string {
	return requestctx.GetRequestID(r.Context())
}

// ActivityRecorder appends to the organisation activity feed. Recording is
// best effort and never fails the request.
type ActivityRecorder interface {
	Record(ctx context.Context, activityType org.ActivityType, description, userID, userName string)
}

// NopActivity discards activity.
type NopActivity struct{}

func (NopActivity) Record(context.Context, org.ActivityType, string, string, string) {}
