package obs

import (
	"context"
	"log/slog"
	"time"
)

type ctxKey string

const RequestIDKey ctxKey = "req_id"

// WithRequestID stores the request id used to correlate timing lines.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}

func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(RequestIDKey).(string)
	return id
}

// Time logs how long an operation took. Use as
//
//	defer obs.Time(ctx, "op")(&err)
func Time(ctx context.Context, name string) func(errp *error) {
	start := time.Now()
	reqID := RequestID(ctx)

	return func(errp *error) {
		dur := time.Since(start)

		if errp != nil && *errp != nil {
			slog.WarnContext(ctx, "op failed", "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds(), "err", *errp)
			return
		}
		slog.DebugContext(ctx, "op done", "req_id", reqID, "op", name, "dur_ms", dur.Milliseconds())
	}
}
