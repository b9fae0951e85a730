package testutil

import (
	"bytes"
	"context"
	"log/slog"
	"time"

	"github.com/m-mizutani/ghso/pkg/utils/logging"
)

// Context returns a context whose clock is pinned to now.
func Context(now time.Time) context.Context {
	return logging.CtxWithTime(context.Background(), func() time.Time { return now })
}

// CaptureLog returns a context with a JSON logger writing every level into the returned buffer.
func CaptureLog(ctx context.Context) (context.Context, *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return logging.With(ctx, logger), &buf
}
