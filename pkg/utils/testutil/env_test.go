package testutil_test

import (
	"context"
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/ghso/pkg/utils/logging"
	"github.com/m-mizutani/ghso/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	key := "TEST_ENV_VAR_SET"
	t.Setenv(key, "test_value")

	gt.V(t, testutil.GetEnvOrSkip(t, key)).Equal("test_value")
}

func TestUnsetEnv(t *testing.T) {
	key := "TEST_ENV_VAR_UNSET"
	t.Setenv(key, "value")

	testutil.UnsetEnv(t, key)
	_, ok := os.LookupEnv(key)
	gt.False(t, ok)
}

func TestContext(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	ctx := testutil.Context(now)
	gt.V(t, logging.CtxTime(ctx)).Equal(now)
}

func TestCaptureLog(t *testing.T) {
	ctx, buf := testutil.CaptureLog(context.Background())
	logging.From(ctx).Debug("hello", "key", "value")

	var record map[string]any
	gt.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	gt.V(t, record["msg"]).Equal("hello")
	gt.V(t, record["key"]).Equal("value")
}
