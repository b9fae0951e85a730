package errutil_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/utils/errutil"
	"github.com/m-mizutani/ghso/pkg/utils/testutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func TestKind(t *testing.T) {
	testCases := map[string]struct {
		err  error
		kind string
	}{
		"invalid option": {goerr.Wrap(types.ErrInvalidOption, "bad flag"), "invalid_option"},
		"github api":     {goerr.Wrap(types.ErrGitHubAPI, "403", goerr.V("status", 403)), "github_api"},
		"notification":   {goerr.Wrap(types.ErrNotification, "webhook failed"), "notification"},
		"wrapped twice":  {goerr.Wrap(goerr.Wrap(types.ErrGitHubAPI, "inner"), "outer"), "github_api"},
		"plain error":    {errors.New("boom"), "unknown"},
	}

	for title, tc := range testCases {
		t.Run(title, func(t *testing.T) {
			gt.V(t, errutil.Kind(tc.err)).Equal(tc.kind)
		})
	}
}

func TestHandleError(t *testing.T) {
	t.Run("logs error with kind", func(t *testing.T) {
		ctx, buf := testutil.CaptureLog(context.Background())
		errutil.HandleError(ctx, "audit failed", goerr.Wrap(types.ErrNotification, "webhook failed"))

		var record map[string]any
		gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
		gt.V(t, record["msg"]).Equal("audit failed")
		gt.V(t, record["error.kind"]).Equal("notification")
	})

	t.Run("nil error is ignored", func(t *testing.T) {
		ctx, buf := testutil.CaptureLog(context.Background())
		errutil.HandleError(ctx, "test message", nil)
		gt.V(t, buf.Len()).Equal(0)
	})
}
