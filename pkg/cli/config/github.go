package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ghso/pkg/domain/interfaces"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/infra/github"
	"github.com/urfave/cli/v3"
)

type GitHub struct {
	organization string
	apiURL       string
	token        types.GitHubToken `masq:"secret"`
	appID        types.GitHubAppID
	installID    types.GitHubAppInstallID
	privateKey   types.GitHubAppPrivateKey `masq:"secret"`
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "organization",
			Usage:       "GitHub organization to audit (auto-detect from git remote if not specified)",
			Category:    "GitHub",
			Destination: &x.organization,
			Sources:     cli.EnvVars("GHSO_ORGANIZATION", "GITHUB_REPOSITORY_OWNER"),
		},
		&cli.StringFlag{
			Name:        "github-api-url",
			Usage:       "GitHub REST API URL, e.g. https://github.example.com/api/v3/ for GitHub Enterprise Server",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("GHSO_GITHUB_API_URL"),
			Value:       github.DefaultBaseURL,
		},
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub token with read access to repository secrets",
			Category:    "GitHub",
			Destination: (*string)(&x.token),
			Sources:     cli.EnvVars("GHSO_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.Int64Flag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID, used instead of token if set",
			Category:    "GitHub App",
			Destination: (*int64)(&x.appID),
			Sources:     cli.EnvVars("GHSO_GITHUB_APP_ID"),
		},
		&cli.Int64Flag{
			Name:        "github-app-installation-id",
			Usage:       "GitHub App installation ID (looked up from organization if not specified)",
			Category:    "GitHub App",
			Destination: (*int64)(&x.installID),
			Sources:     cli.EnvVars("GHSO_GITHUB_APP_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-app-private-key",
			Usage:       "GitHub App Private Key",
			Category:    "GitHub App",
			Destination: (*string)(&x.privateKey),
			Sources:     cli.EnvVars("GHSO_GITHUB_APP_PRIVATE_KEY"),
		},
	}
}

func (x *GitHub) Organization() string {
	return x.organization
}

// NewClient builds the GitHub client. GitHub App credentials take precedence over a token.
func (x *GitHub) NewClient(ctx context.Context, org string) (interfaces.GitHub, error) {
	opts := []github.Option{
		github.WithBaseURL(x.apiURL),
	}

	if x.appID == 0 {
		client, err := github.NewWithToken(x.token, opts...)
		if err != nil {
			return nil, err
		}
		return client, nil
	}

	installID := x.installID
	if installID == 0 {
		id, err := github.FindInstallationID(ctx, x.appID, x.privateKey, org, opts...)
		if err != nil {
			return nil, err
		}
		installID = id
	}

	client, err := github.NewWithApp(x.appID, installID, x.privateKey, opts...)
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("organization", x.organization),
		slog.String("apiURL", x.apiURL),
		slog.Int("token.len", len(x.token)),
		slog.Int64("appID", int64(x.appID)),
		slog.Int64("installID", int64(x.installID)),
		slog.Int("privateKey.len", len(x.privateKey)),
	)
}
