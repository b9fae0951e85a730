package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ghso/pkg/domain/model"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// AuditSecrets classifies every Actions secret of every repository in the organization and notifies each result.
func (x *UseCase) AuditSecrets(ctx context.Context, input *model.AuditSecretsInput) error {
	_, err := x.AuditSecretsWithSummary(ctx, input)
	return err
}

// AuditSecretsWithSummary runs the audit sequentially in the order GitHub returns repositories and secrets.
// A GitHub API error aborts the run immediately. A notification error aborts the run too unless the notify failure policy is NotifyFailureSkip.
func (x *UseCase) AuditSecretsWithSummary(ctx context.Context, input *model.AuditSecretsInput) (*model.AuditSummary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is required")
	}
	if x.clients.Notifier() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "notifier is required")
	}

	runID, ctx := logging.CtxRunID(ctx)
	logger := logging.From(ctx).With(
		slog.String("run_id", runID.String()),
		slog.String("organization", input.Organization),
	)
	ctx = logging.With(ctx, logger)

	// Same clock for all secrets in the run
	now := logging.CtxTime(ctx)

	logger.Info("Starting secret audit",
		slog.Any("policy", input.Policy),
		slog.String("notify_failure", string(x.notifyFailure)),
		slog.Time("now", now),
	)

	repos, err := x.clients.GitHub().ListRepositories(ctx, input.Organization)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list repositories",
			goerr.V("organization", input.Organization),
		)
	}

	logger.Info("Retrieved repositories", slog.Int("total_repos", len(repos)))

	summary := model.NewAuditSummary(input.Organization)
	summary.Repositories = len(repos)

	for i, repo := range repos {
		secrets, err := x.clients.GitHub().ListSecrets(ctx, repo)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list secrets",
				goerr.V("organization", input.Organization),
				goerr.V("repository", repo.FullName),
			)
		}

		logger.Debug("Auditing repository",
			slog.Int("progress", i+1),
			slog.Int("total", len(repos)),
			slog.String("repository", repo.FullName),
			slog.Int("secrets", len(secrets)),
		)

		for _, secret := range secrets {
			result := input.Policy.Classify(secret, now)
			summary.Add(result)
			logger.Log(ctx, logging.LevelTrace, "Classified secret",
				slog.String("repository", repo.FullName),
				slog.String("secret", secret.Name),
				slog.Time("updated_at", secret.UpdatedAt),
				slog.Any("result", result),
			)

			if err := x.notify(ctx, result, secret, repo); err != nil {
				if x.notifyFailure != types.NotifyFailureSkip {
					return nil, err
				}
				summary.SkippedNotifies++
			}
		}
	}

	logger.Info("Completed secret audit", slog.Any("summary", summary))

	return summary, nil
}

func (x *UseCase) notify(ctx context.Context, result *model.Classification, secret *model.Secret, repo *model.Repository) error {
	if err := x.clients.Notifier().Notify(ctx, result, secret, repo); err != nil {
		logging.From(ctx).Error("Failed to notify secret status",
			slog.String("repository", repo.FullName),
			slog.String("secret", secret.Name),
			slog.String("state", result.State.String()),
			slog.Any("error", err),
		)
		return goerr.Wrap(err, "failed to notify secret status",
			goerr.V("repository", repo.FullName),
			goerr.V("secret", secret.Name),
		)
	}
	return nil
}
