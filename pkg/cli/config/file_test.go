package config_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/ghso/pkg/cli/config"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/utils/testutil"
	"github.com/m-mizutani/gots/slice"
	"github.com/m-mizutani/gt"
	"github.com/urfave/cli/v3"
)

const testConfigFile = `
github:
  organization: from-file
policy:
  default_retention_days: 60
  expiration_notice_days: 10
  ignore_names:
    - KEEP_ME
notifier:
  type: annotation
  notify_failure: skip
`

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ghso.yml")
	gt.NoError(t, os.WriteFile(path, []byte(body), 0600))
	return path
}

func TestFileApply(t *testing.T) {
	testutil.UnsetEnv(t, "GHSO_ORGANIZATION", "GITHUB_REPOSITORY_OWNER", "GHSO_DEFAULT_RETENTION_DAYS", "GHSO_EXPIRATION_NOTICE_DAYS", "GHSO_NOTIFIER", "GHSO_NOTIFY_FAILURE", "GHSO_IGNORE_NAMES")

	file := gt.R1(config.LoadFile(writeConfigFile(t, testConfigFile))).NoError(t)

	t.Run("file values fill unset flags", func(t *testing.T) {
		var (
			github   config.GitHub
			policy   config.Policy
			notifier config.Notifier
		)
		flags := slice.Flatten(github.Flags(), policy.Flags(), notifier.Flags())
		runFlags(t, flags, nil, func(ctx context.Context, c *cli.Command) error {
			gt.NoError(t, file.Apply(c))
			gt.V(t, github.Organization()).Equal("from-file")

			p := gt.R1(policy.New()).NoError(t)
			gt.V(t, p.DefaultRetentionDays()).Equal(60)
			gt.V(t, p.ExpirationNoticeDays()).Equal(10)

			fp := gt.R1(notifier.FailurePolicy()).NoError(t)
			gt.V(t, fp).Equal(types.NotifyFailureSkip)
			return nil
		})
	})

	t.Run("command line has priority over file", func(t *testing.T) {
		var (
			github config.GitHub
			policy config.Policy
		)
		flags := slice.Flatten(github.Flags(), policy.Flags())
		args := []string{"--organization", "from-flag", "--default-retention-days", "120"}
		runFlags(t, flags, args, func(ctx context.Context, c *cli.Command) error {
			gt.NoError(t, file.Apply(c))
			gt.V(t, github.Organization()).Equal("from-flag")

			p := gt.R1(policy.New()).NoError(t)
			gt.V(t, p.DefaultRetentionDays()).Equal(120)
			gt.V(t, p.ExpirationNoticeDays()).Equal(10)
			return nil
		})
	})
}

func TestLoadFileError(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		_, err := config.LoadFile(filepath.Join(t.TempDir(), "missing.yml"))
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("broken yaml", func(t *testing.T) {
		_, err := config.LoadFile(writeConfigFile(t, "policy: [\n"))
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})
}
