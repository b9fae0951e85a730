package github

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/bradleyfalzon/ghinstallation/v2"
	gh "github.com/google/go-github/v75/github"
	"github.com/gregjones/httpcache"
	"github.com/m-mizutani/ghso/pkg/domain/interfaces"
	"github.com/m-mizutani/ghso/pkg/domain/model"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultBaseURL = "https://api.github.com/"
	perPage        = 100
)

type Client struct {
	gh *gh.Client
}

var _ interfaces.GitHub = (*Client)(nil)

type config struct {
	baseURL   string
	transport http.RoundTripper
}

type Option func(*config)

// WithBaseURL sets REST API endpoint, e.g. https://github.example.com/api/v3/ for GitHub Enterprise Server
func WithBaseURL(baseURL string) Option {
	return func(cfg *config) {
		cfg.baseURL = baseURL
	}
}

// WithTransport replaces the underlying transport. Authentication is still added on top of it.
func WithTransport(tr http.RoundTripper) Option {
	return func(cfg *config) {
		cfg.transport = tr
	}
}

func newConfig(options []Option) (*config, *url.URL, error) {
	cfg := &config{
		baseURL:   DefaultBaseURL,
		transport: http.DefaultTransport,
	}
	for _, opt := range options {
		opt(cfg)
	}

	if !strings.HasSuffix(cfg.baseURL, "/") {
		cfg.baseURL += "/"
	}
	u, err := url.Parse(cfg.baseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, nil, goerr.Wrap(types.ErrInvalidOption, "invalid GitHub API URL", goerr.V("url", cfg.baseURL))
	}

	return cfg, u, nil
}

// NewWithToken creates a client authenticated by a personal access token. Responses are cached in memory by ETag.
func NewWithToken(token types.GitHubToken, options ...Option) (*Client, error) {
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub API token is required")
	}

	cfg, baseURL, err := newConfig(options)
	if err != nil {
		return nil, err
	}

	cacheTransport := httpcache.NewMemoryCacheTransport()
	cacheTransport.Transport = cfg.transport

	client := gh.NewClient(&http.Client{Transport: cacheTransport}).WithAuthToken(string(token))
	client.BaseURL = baseURL

	return &Client{gh: client}, nil
}

// NewWithApp creates a client authenticated as a GitHub App installation.
func NewWithApp(appID types.GitHubAppID, installID types.GitHubAppInstallID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	if appID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "appID is empty")
	}
	if installID == 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "installation ID is empty")
	}
	if pem == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "pem is empty")
	}

	cfg, baseURL, err := newConfig(options)
	if err != nil {
		return nil, err
	}

	itr, err := ghinstallation.New(cfg.transport, int64(appID), int64(installID), []byte(pem))
	if err != nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "failed to create GitHub App transport", goerr.V("error", err.Error()))
	}
	itr.BaseURL = strings.TrimSuffix(baseURL.String(), "/")

	client := gh.NewClient(&http.Client{Transport: itr})
	client.BaseURL = baseURL

	return &Client{gh: client}, nil
}

// FindInstallationID looks up the installation of the GitHub App on the organization.
func FindInstallationID(ctx context.Context, appID types.GitHubAppID, pem types.GitHubAppPrivateKey, org string, options ...Option) (types.GitHubAppInstallID, error) {
	cfg, baseURL, err := newConfig(options)
	if err != nil {
		return 0, err
	}

	atr, err := ghinstallation.NewAppsTransport(cfg.transport, int64(appID), []byte(pem))
	if err != nil {
		return 0, goerr.Wrap(types.ErrInvalidOption, "failed to create app transport", goerr.V("error", err.Error()))
	}
	atr.BaseURL = strings.TrimSuffix(baseURL.String(), "/")

	client := gh.NewClient(&http.Client{Transport: atr})
	client.BaseURL = baseURL

	installation, _, err := client.Apps.FindOrganizationInstallation(ctx, org)
	if err != nil {
		return 0, apiError(err, "failed to find organization installation", "organization", org)
	}

	logging.From(ctx).Info("Found organization installation",
		slog.String("organization", org),
		slog.Int64("installID", installation.GetID()),
	)

	return types.GitHubAppInstallID(installation.GetID()), nil
}

// ListRepositories returns all repositories of the organization in the order GitHub returns them.
func (x *Client) ListRepositories(ctx context.Context, org string) ([]*model.Repository, error) {
	opts := &gh.RepositoryListByOrgOptions{
		ListOptions: gh.ListOptions{PerPage: perPage},
	}

	var repos []*model.Repository
	for {
		result, resp, err := x.gh.Repositories.ListByOrg(ctx, org, opts)
		if err != nil {
			return nil, apiError(err, "failed to list repositories", "organization", org)
		}

		for _, repo := range result {
			repos = append(repos, &model.Repository{
				FullName: repo.GetFullName(),
				Owner:    repo.GetOwner().GetLogin(),
				Name:     repo.GetName(),
			})
		}

		logging.From(ctx).Debug("Listed repositories",
			slog.String("organization", org),
			slog.Int("page", opts.Page),
			slog.Int("count", len(result)),
		)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return repos, nil
}

// ListSecrets returns all Actions secrets of the repository. Only metadata is available, never the value.
func (x *Client) ListSecrets(ctx context.Context, repo *model.Repository) ([]*model.Secret, error) {
	owner, name, err := splitRepo(repo)
	if err != nil {
		return nil, err
	}

	opts := &gh.ListOptions{PerPage: perPage}

	var secrets []*model.Secret
	for {
		result, resp, err := x.gh.Actions.ListRepoSecrets(ctx, owner, name, opts)
		if err != nil {
			return nil, apiError(err, "failed to list secrets", "repository", repo.FullName)
		}

		for _, secret := range result.Secrets {
			secrets = append(secrets, &model.Secret{
				Name:      secret.Name,
				CreatedAt: secret.CreatedAt.Time,
				UpdatedAt: secret.UpdatedAt.Time,
			})
		}

		logging.From(ctx).Debug("Listed secrets",
			slog.String("repository", repo.FullName),
			slog.Int("page", opts.Page),
			slog.Int("count", len(result.Secrets)),
			slog.Int("total", result.TotalCount),
		)

		if resp.NextPage == 0 {
			break
		}
		opts.Page = resp.NextPage
	}

	return secrets, nil
}

func splitRepo(repo *model.Repository) (string, string, error) {
	if repo.Owner != "" && repo.Name != "" {
		return repo.Owner, repo.Name, nil
	}

	parts := strings.Split(repo.FullName, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", goerr.Wrap(types.ErrGitHubAPI, "invalid repository full name", goerr.V("full_name", repo.FullName))
	}
	return parts[0], parts[1], nil
}

// apiError converts an error from go-github into ErrGitHubAPI with the HTTP status and the message from GitHub.
func apiError(err error, msg, key string, value any) error {
	status := 0
	message := err.Error()

	var errResp *gh.ErrorResponse
	var rateErr *gh.RateLimitError
	var abuseErr *gh.AbuseRateLimitError
	switch {
	case errors.As(err, &errResp):
		message = errResp.Message
		if errResp.Response != nil {
			status = errResp.Response.StatusCode
		}
	case errors.As(err, &rateErr):
		message = rateErr.Message
		if rateErr.Response != nil {
			status = rateErr.Response.StatusCode
		}
	case errors.As(err, &abuseErr):
		message = abuseErr.Message
		if abuseErr.Response != nil {
			status = abuseErr.Response.StatusCode
		}
	}

	return goerr.Wrap(types.ErrGitHubAPI, msg,
		goerr.V(key, value),
		goerr.V("status", status),
		goerr.V("message", message),
	)
}
