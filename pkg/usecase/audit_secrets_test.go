package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/m-mizutani/ghso/pkg/domain/mock"
	"github.com/m-mizutani/ghso/pkg/domain/model"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/infra"
	"github.com/m-mizutani/ghso/pkg/usecase"
	"github.com/m-mizutani/ghso/pkg/utils/logging"
	"github.com/m-mizutani/ghso/pkg/utils/testutil"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

var now = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

func daysAgo(days int) time.Time {
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

func newContext() context.Context {
	return testutil.Context(now)
}

func newInput(t *testing.T) *model.AuditSecretsInput {
	policy := gt.R1(model.NewPolicy(model.PolicyConfig{
		DefaultRetentionDays: 90,
		ExpirationNoticeDays: 14,
		IgnoreNames:          []string{"GITHUB_PAT"},
	})).NoError(t)

	return &model.AuditSecretsInput{
		Organization: "my-org",
		Policy:       policy,
	}
}

func newGitHubMock() *mock.GitHubMock {
	secrets := map[string][]*model.Secret{
		"my-org/alpha": {
			{Name: "API_KEY", UpdatedAt: daysAgo(100)},
			{Name: "GITHUB_PAT", UpdatedAt: daysAgo(400)},
		},
		"my-org/beta": {},
		"my-org/gamma": {
			{Name: "DEPLOY_KEY", UpdatedAt: daysAgo(80)},
			{Name: "SHORT_LIVED_R7", UpdatedAt: daysAgo(1)},
		},
	}

	return &mock.GitHubMock{
		ListRepositoriesFunc: func(ctx context.Context, org string) ([]*model.Repository, error) {
			return []*model.Repository{
				{FullName: "my-org/alpha", Owner: "my-org", Name: "alpha"},
				{FullName: "my-org/beta", Owner: "my-org", Name: "beta"},
				{FullName: "my-org/gamma", Owner: "my-org", Name: "gamma"},
			}, nil
		},
		ListSecretsFunc: func(ctx context.Context, repo *model.Repository) ([]*model.Secret, error) {
			return secrets[repo.FullName], nil
		},
	}
}

func TestAuditSecrets(t *testing.T) {
	mockGH := newGitHubMock()
	mockNotifier := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, result *model.Classification, secret *model.Secret, repo *model.Repository) error {
			return nil
		},
	}

	uc := usecase.New(infra.New(
		infra.WithGitHub(mockGH),
		infra.WithNotifier(mockNotifier),
	))

	summary, err := uc.AuditSecretsWithSummary(newContext(), newInput(t))
	gt.NoError(t, err)

	gt.A(t, mockGH.ListRepositoriesCalls()).Length(1)
	gt.V(t, mockGH.ListRepositoriesCalls()[0].Org).Equal("my-org")
	gt.A(t, mockGH.ListSecretsCalls()).Length(3)

	calls := mockNotifier.NotifyCalls()
	gt.A(t, calls).Length(4)

	expected := []struct {
		repo   string
		secret string
		result model.Classification
	}{
		{"my-org/alpha", "API_KEY", model.Classification{State: types.SecretExpired, DaysOverdue: 10, RetentionDays: 90}},
		{"my-org/alpha", "GITHUB_PAT", model.Classification{State: types.SecretIgnored}},
		{"my-org/gamma", "DEPLOY_KEY", model.Classification{State: types.SecretExpiresSoon, DaysLeft: 10, RetentionDays: 90}},
		{"my-org/gamma", "SHORT_LIVED_R7", model.Classification{State: types.SecretExpiresSoon, DaysLeft: 6, RetentionDays: 7}},
	}
	for i, exp := range expected {
		gt.V(t, calls[i].Repo.FullName).Equal(exp.repo)
		gt.V(t, calls[i].Secret.Name).Equal(exp.secret)
		gt.V(t, *calls[i].Result).Equal(exp.result)
	}

	gt.V(t, summary.Repositories).Equal(3)
	gt.V(t, summary.Secrets).Equal(4)
	gt.V(t, summary.States[types.SecretExpired]).Equal(1)
	gt.V(t, summary.States[types.SecretExpiresSoon]).Equal(2)
	gt.V(t, summary.States[types.SecretIgnored]).Equal(1)
	gt.V(t, summary.SkippedNotifies).Equal(0)
}

func TestAuditSecretsConfigurationError(t *testing.T) {
	t.Run("missing organization fails before any API call", func(t *testing.T) {
		mockGH := newGitHubMock()
		uc := usecase.New(infra.New(
			infra.WithGitHub(mockGH),
			infra.WithNotifier(&mock.NotifierMock{}),
		))

		input := newInput(t)
		input.Organization = ""

		err := uc.AuditSecrets(newContext(), input)
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
		gt.A(t, mockGH.ListRepositoriesCalls()).Length(0)
	})

	t.Run("missing GitHub client", func(t *testing.T) {
		uc := usecase.New(infra.New(infra.WithNotifier(&mock.NotifierMock{})))
		err := uc.AuditSecrets(newContext(), newInput(t))
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
	})

	t.Run("missing notifier", func(t *testing.T) {
		mockGH := newGitHubMock()
		uc := usecase.New(infra.New(infra.WithGitHub(mockGH)))
		err := uc.AuditSecrets(newContext(), newInput(t))
		gt.True(t, errors.Is(err, types.ErrInvalidOption))
		gt.A(t, mockGH.ListRepositoriesCalls()).Length(0)
	})
}

func TestAuditSecretsGitHubError(t *testing.T) {
	t.Run("listing repositories fails", func(t *testing.T) {
		mockGH := &mock.GitHubMock{
			ListRepositoriesFunc: func(ctx context.Context, org string) ([]*model.Repository, error) {
				return nil, goerr.Wrap(types.ErrGitHubAPI, "unauthorized", goerr.V("status", 401))
			},
		}
		mockNotifier := &mock.NotifierMock{}

		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithNotifier(mockNotifier)))
		err := uc.AuditSecrets(newContext(), newInput(t))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrGitHubAPI))
		gt.V(t, goerr.Unwrap(err).Values()["organization"]).Equal("my-org")
		gt.A(t, mockGH.ListSecretsCalls()).Length(0)
		gt.A(t, mockNotifier.NotifyCalls()).Length(0)
	})

	t.Run("listing secrets fails aborts remaining repositories", func(t *testing.T) {
		mockGH := newGitHubMock()
		mockGH.ListSecretsFunc = func(ctx context.Context, repo *model.Repository) ([]*model.Secret, error) {
			if repo.FullName == "my-org/beta" {
				return nil, goerr.Wrap(types.ErrGitHubAPI, "forbidden", goerr.V("status", 403))
			}
			return []*model.Secret{{Name: "API_KEY", UpdatedAt: daysAgo(1)}}, nil
		}
		mockNotifier := &mock.NotifierMock{
			NotifyFunc: func(ctx context.Context, result *model.Classification, secret *model.Secret, repo *model.Repository) error {
				return nil
			},
		}

		uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithNotifier(mockNotifier)))
		err := uc.AuditSecrets(newContext(), newInput(t))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrGitHubAPI))
		gt.V(t, goerr.Unwrap(err).Values()["repository"]).Equal("my-org/beta")

		// alpha was notified, gamma was never reached
		gt.A(t, mockGH.ListSecretsCalls()).Length(2)
		gt.A(t, mockNotifier.NotifyCalls()).Length(1)
	})
}

func TestAuditSecretsNotifyFailure(t *testing.T) {
	failOn := "API_KEY"
	newNotifier := func() *mock.NotifierMock {
		return &mock.NotifierMock{
			NotifyFunc: func(ctx context.Context, result *model.Classification, secret *model.Secret, repo *model.Repository) error {
				if secret.Name == failOn {
					return goerr.Wrap(types.ErrNotification, "webhook returned non-2xx status", goerr.V("status", 500))
				}
				return nil
			},
		}
	}

	t.Run("abort by default", func(t *testing.T) {
		mockNotifier := newNotifier()
		uc := usecase.New(infra.New(infra.WithGitHub(newGitHubMock()), infra.WithNotifier(mockNotifier)))

		summary, err := uc.AuditSecretsWithSummary(newContext(), newInput(t))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrNotification))
		gt.V(t, summary).Equal(nil)
		gt.V(t, goerr.Unwrap(err).Values()["secret"]).Equal("API_KEY")
		gt.A(t, mockNotifier.NotifyCalls()).Length(1)
	})

	t.Run("skip continues with next secret", func(t *testing.T) {
		mockNotifier := newNotifier()
		uc := usecase.New(
			infra.New(infra.WithGitHub(newGitHubMock()), infra.WithNotifier(mockNotifier)),
			usecase.WithNotifyFailurePolicy(types.NotifyFailureSkip),
		)

		summary, err := uc.AuditSecretsWithSummary(newContext(), newInput(t))
		gt.NoError(t, err)
		gt.A(t, mockNotifier.NotifyCalls()).Length(4)
		gt.V(t, summary.SkippedNotifies).Equal(1)
		gt.V(t, summary.Secrets).Equal(4)
	})
}

func TestAuditSecretsRunID(t *testing.T) {
	mockNotifier := &mock.NotifierMock{
		NotifyFunc: func(ctx context.Context, result *model.Classification, secret *model.Secret, repo *model.Repository) error {
			logging.From(ctx).Info("notified", "secret", secret.Name)
			return nil
		},
	}
	uc := usecase.New(infra.New(
		infra.WithGitHub(newGitHubMock()),
		infra.WithNotifier(mockNotifier),
	))

	runID, ctx := logging.CtxRunID(newContext())
	ctx, buf := testutil.CaptureLog(ctx)

	gt.NoError(t, uc.AuditSecrets(ctx, newInput(t)))

	for _, call := range mockNotifier.NotifyCalls() {
		got, _ := logging.CtxRunID(call.Ctx)
		gt.V(t, got).Equal(runID)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	gt.True(t, len(lines) > 4)
	for _, line := range lines {
		var record map[string]any
		gt.NoError(t, json.Unmarshal([]byte(line), &record))
		gt.V(t, record["run_id"]).Equal(runID.String())
		gt.V(t, record["organization"]).Equal("my-org")
	}
}
