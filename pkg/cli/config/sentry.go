package config

import (
	"context"
	"log/slog"
	"net/url"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Sentry struct {
	dsn         string `masq:"secret"`
	environment string
	release     string
}

func (x *Sentry) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "sentry-dsn",
			Usage:       "Sentry DSN, audit failures are reported if set",
			Category:    "Sentry",
			Destination: &x.dsn,
			Sources:     cli.EnvVars("GHSO_SENTRY_DSN"),
		},
		&cli.StringFlag{
			Name:        "sentry-env",
			Usage:       "Sentry environment",
			Category:    "Sentry",
			Destination: &x.environment,
			Sources:     cli.EnvVars("GHSO_SENTRY_ENV"),
		},
		&cli.StringFlag{
			Name:        "sentry-release",
			Usage:       "Sentry release",
			Category:    "Sentry",
			Destination: &x.release,
			Sources:     cli.EnvVars("GHSO_SENTRY_RELEASE"),
		},
	}
}

func (x *Sentry) Configure(ctx context.Context) error {
	if x.dsn == "" {
		logging.From(ctx).Debug("sentry is not configured")
		return nil
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         x.dsn,
		Environment: x.environment,
		Release:     x.release,
	}); err != nil {
		return goerr.Wrap(types.ErrInvalidOption, "failed to initialize sentry", goerr.V("error", err.Error()))
	}

	return nil
}

func (x *Sentry) LogValue() slog.Value {
	host := ""
	if u, err := url.Parse(x.dsn); err == nil {
		host = u.Host
	}

	return slog.GroupValue(
		slog.String("DSN.host", host),
		slog.String("Environment", x.environment),
		slog.String("Release", x.release),
	)
}
