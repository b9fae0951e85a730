package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Kind classifies err by the domain sentinel it wraps
func Kind(err error) string {
	switch {
	case errors.Is(err, types.ErrInvalidOption):
		return "invalid_option"
	case errors.Is(err, types.ErrGitHubAPI):
		return "github_api"
	case errors.Is(err, types.ErrNotification):
		return "notification"
	default:
		return "unknown"
	}
}

// HandleError logs err. Errors other than invalid options are also sent to Sentry.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}

	kind := Kind(err)
	if kind == "invalid_option" {
		logging.From(ctx).Error(msg, "error", err, "error.kind", kind)
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		scope.SetTag("error.kind", kind)
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"error.kind", kind,
		"sentry.EventID", evID,
	)
}
