package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ghso/pkg/cli/config"
	"github.com/m-mizutani/ghso/pkg/domain/interfaces"
	"github.com/m-mizutani/ghso/pkg/domain/model"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/infra"
	"github.com/m-mizutani/ghso/pkg/usecase"
	"github.com/m-mizutani/ghso/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// NewUseCase is exported for testing purposes
var NewUseCase = func(clients *infra.Clients, opts ...usecase.Option) interfaces.UseCase {
	return usecase.New(clients, opts...)
}

// NewGitHubClient is exported for testing purposes
var NewGitHubClient = func(ctx context.Context, cfg *config.GitHub, org string) (interfaces.GitHub, error) {
	return cfg.NewClient(ctx, org)
}

func auditCommand() *cli.Command {
	var (
		configPath string

		github   config.GitHub
		policy   config.Policy
		notifier config.Notifier
		sentry   config.Sentry
	)
	auditFlags := []cli.Flag{
		&cli.StringFlag{
			Name:        "config",
			Usage:       "Path to YAML config file. Flags and environment variables take precedence",
			Sources:     cli.EnvVars("GHSO_CONFIG"),
			Destination: &configPath,
		},
	}

	return &cli.Command{
		Name:    "audit",
		Aliases: []string{"a"},
		Usage:   "Audit repository secrets of an organization",
		Flags: slice.Flatten(
			auditFlags,
			github.Flags(),
			policy.Flags(),
			notifier.Flags(),
			sentry.Flags(),
		),
		Action: func(ctx context.Context, c *cli.Command) error {
			if configPath != "" {
				file, err := config.LoadFile(configPath)
				if err != nil {
					return err
				}
				if err := file.Apply(c); err != nil {
					return err
				}
			}

			logging.Default().Info("starting audit",
				slog.Any("GitHub", &github),
				slog.Any("Policy", &policy),
				slog.Any("Notifier", &notifier),
				slog.Any("Sentry", &sentry),
			)

			if err := sentry.Configure(ctx); err != nil {
				return err
			}

			org, err := resolveOrganization(ctx, github.Organization())
			if err != nil {
				return err
			}

			p, err := policy.New()
			if err != nil {
				return err
			}

			failurePolicy, err := notifier.FailurePolicy()
			if err != nil {
				return err
			}

			n, err := notifier.New()
			if err != nil {
				return err
			}

			gh, err := NewGitHubClient(ctx, &github, org)
			if err != nil {
				return err
			}

			clients := infra.New(
				infra.WithGitHub(gh),
				infra.WithNotifier(n),
			)
			uc := NewUseCase(clients, usecase.WithNotifyFailurePolicy(failurePolicy))

			return uc.AuditSecrets(ctx, &model.AuditSecretsInput{
				Organization: org,
				Policy:       p,
			})
		},
	}
}

func resolveOrganization(ctx context.Context, org string) (string, error) {
	if org != "" {
		return org, nil
	}

	detected, err := DetectOrganization(".")
	if err != nil {
		logging.From(ctx).Debug("failed to detect organization from git remote", "error", err)
		return "", goerr.Wrap(types.ErrInvalidOption, "organization is required, set --organization or GHSO_ORGANIZATION")
	}

	logging.From(ctx).Info("organization detected from git remote", slog.String("organization", detected))
	return detected, nil
}
