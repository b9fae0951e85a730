package config

import (
	"log/slog"

	"github.com/m-mizutani/ghso/pkg/domain/model"
	"github.com/urfave/cli/v3"
)

type Policy struct {
	defaultRetentionDays int64
	expirationNoticeDays int64
	ignoreNames          []string
	ignorePattern        string
}

func (x *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.Int64Flag{
			Name:        "default-retention-days",
			Usage:       "Days after the last update a secret is considered expired. A name suffix like _R30 overrides it per secret",
			Category:    "Policy",
			Destination: &x.defaultRetentionDays,
			Sources:     cli.EnvVars("GHSO_DEFAULT_RETENTION_DAYS"),
			Value:       model.DefaultRetentionDays,
		},
		&cli.Int64Flag{
			Name:        "expiration-notice-days",
			Usage:       "Days before expiration a secret is reported as expiring soon",
			Category:    "Policy",
			Destination: &x.expirationNoticeDays,
			Sources:     cli.EnvVars("GHSO_EXPIRATION_NOTICE_DAYS"),
			Value:       model.DefaultExpirationNoticeDays,
		},
		&cli.StringSliceFlag{
			Name:        "ignore-name",
			Usage:       "Secret name to ignore (can be specified multiple times)",
			Category:    "Policy",
			Destination: &x.ignoreNames,
			Sources:     cli.EnvVars("GHSO_IGNORE_NAMES"),
		},
		&cli.StringFlag{
			Name:        "ignore-pattern",
			Usage:       "Regular expression of secret names to ignore",
			Category:    "Policy",
			Destination: &x.ignorePattern,
			Sources:     cli.EnvVars("GHSO_IGNORE_PATTERN"),
		},
	}
}

func (x *Policy) New() (*model.Policy, error) {
	return model.NewPolicy(model.PolicyConfig{
		DefaultRetentionDays: int(x.defaultRetentionDays),
		ExpirationNoticeDays: int(x.expirationNoticeDays),
		IgnoreNames:          x.ignoreNames,
		IgnorePattern:        x.ignorePattern,
	})
}

func (x *Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int64("defaultRetentionDays", x.defaultRetentionDays),
		slog.Int64("expirationNoticeDays", x.expirationNoticeDays),
		slog.Any("ignoreNames", x.ignoreNames),
		slog.String("ignorePattern", x.ignorePattern),
	)
}
