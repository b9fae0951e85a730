package model

import (
	"log/slog"
	"regexp"
	"strconv"
	"time"

	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	DefaultRetentionDays        = 90
	DefaultExpirationNoticeDays = 14
)

// ptnRetentionOverride matches secret names carrying their own retention, e.g. API_KEY_R30
var ptnRetentionOverride = regexp.MustCompile(`^[A-Z0-9_]+_R(\d{1,4})$`)

// PolicyConfig is the raw policy configuration. Use NewPolicy to validate it.
type PolicyConfig struct {
	DefaultRetentionDays int
	ExpirationNoticeDays int
	IgnoreNames          []string
	IgnorePattern        string
}

// Policy classifies secrets by rotation status. It is immutable once built.
type Policy struct {
	defaultRetentionDays int
	expirationNoticeDays int
	ignoreNames          map[string]struct{}
	ignorePattern        *regexp.Regexp
}

// NewPolicy validates cfg and builds a Policy. A malformed ignore pattern is reported here, never during classification.
func NewPolicy(cfg PolicyConfig) (*Policy, error) {
	if cfg.DefaultRetentionDays <= 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "default retention days must be positive",
			goerr.V("default_retention_days", cfg.DefaultRetentionDays))
	}
	if cfg.ExpirationNoticeDays < 0 {
		return nil, goerr.Wrap(types.ErrInvalidOption, "expiration notice days must not be negative",
			goerr.V("expiration_notice_days", cfg.ExpirationNoticeDays))
	}
	if cfg.ExpirationNoticeDays > cfg.DefaultRetentionDays {
		return nil, goerr.Wrap(types.ErrInvalidOption, "expiration notice days must not exceed default retention days",
			goerr.V("expiration_notice_days", cfg.ExpirationNoticeDays),
			goerr.V("default_retention_days", cfg.DefaultRetentionDays),
		)
	}

	policy := &Policy{
		defaultRetentionDays: cfg.DefaultRetentionDays,
		expirationNoticeDays: cfg.ExpirationNoticeDays,
		ignoreNames:          make(map[string]struct{}, len(cfg.IgnoreNames)),
	}

	for _, name := range cfg.IgnoreNames {
		if name != "" {
			policy.ignoreNames[name] = struct{}{}
		}
	}

	if cfg.IgnorePattern != "" {
		ptn, err := regexp.Compile(cfg.IgnorePattern)
		if err != nil {
			return nil, goerr.Wrap(types.ErrInvalidOption, "invalid ignore pattern",
				goerr.V("ignore_pattern", cfg.IgnorePattern),
				goerr.V("cause", err.Error()),
			)
		}
		policy.ignorePattern = ptn
	}

	return policy, nil
}

func (x *Policy) DefaultRetentionDays() int { return x.defaultRetentionDays }
func (x *Policy) ExpirationNoticeDays() int { return x.expirationNoticeDays }

func (x *Policy) LogValue() slog.Value {
	ignorePattern := ""
	if x.ignorePattern != nil {
		ignorePattern = x.ignorePattern.String()
	}
	return slog.GroupValue(
		slog.Int("default_retention_days", x.defaultRetentionDays),
		slog.Int("expiration_notice_days", x.expirationNoticeDays),
		slog.Int("ignore_names", len(x.ignoreNames)),
		slog.String("ignore_pattern", ignorePattern),
	)
}

// Classify evaluates secret against the policy at now. Ignore rules are checked first (exact name, then pattern), then the retention is resolved from the name suffix or the default.
func (x *Policy) Classify(secret *Secret, now time.Time) *Classification {
	if x.isIgnored(secret.Name) {
		return &Classification{State: types.SecretIgnored}
	}

	retention := x.retentionDays(secret.Name)
	age := AgeDays(secret.UpdatedAt, now)

	if age >= retention {
		return &Classification{
			State:         types.SecretExpired,
			DaysOverdue:   age - retention,
			RetentionDays: retention,
		}
	}

	state := types.SecretNotExpired
	if age >= retention-x.expirationNoticeDays {
		state = types.SecretExpiresSoon
	}

	return &Classification{
		State:         state,
		DaysLeft:      retention - age,
		RetentionDays: retention,
	}
}

func (x *Policy) isIgnored(name string) bool {
	if _, ok := x.ignoreNames[name]; ok {
		return true
	}
	return x.ignorePattern != nil && x.ignorePattern.MatchString(name)
}

func (x *Policy) retentionDays(name string) int {
	if m := ptnRetentionOverride.FindStringSubmatch(name); m != nil {
		// at most 4 digits, can not fail
		if days, err := strconv.Atoi(m[1]); err == nil {
			return days
		}
	}
	return x.defaultRetentionDays
}

// AgeDays returns the number of whole days elapsed from updatedAt to now. A future updatedAt counts as zero.
func AgeDays(updatedAt, now time.Time) int {
	d := now.Sub(updatedAt)
	if d < 0 {
		return 0
	}
	return int(d / (24 * time.Hour))
}
