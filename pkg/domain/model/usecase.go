package model

import (
	"log/slog"

	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type AuditSecretsInput struct {
	Organization string
	Policy       *Policy
}

func (x *AuditSecretsInput) Validate() error {
	if x.Organization == "" {
		return goerr.Wrap(types.ErrInvalidOption, "organization is required")
	}
	if x.Policy == nil {
		return goerr.Wrap(types.ErrInvalidOption, "policy is required", goerr.V("organization", x.Organization))
	}
	return nil
}

// AuditSummary counts what one audit run has seen.
type AuditSummary struct {
	Organization    string
	Repositories    int
	Secrets         int
	States          map[types.SecretState]int
	SkippedNotifies int
}

func NewAuditSummary(org string) *AuditSummary {
	return &AuditSummary{
		Organization: org,
		States:       make(map[types.SecretState]int),
	}
}

func (x *AuditSummary) Add(c *Classification) {
	x.Secrets++
	x.States[c.State]++
}

func (x *AuditSummary) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("organization", x.Organization),
		slog.Int("repositories", x.Repositories),
		slog.Int("secrets", x.Secrets),
	}
	for _, s := range types.AllSecretStates {
		attrs = append(attrs, slog.Int(s.String(), x.States[s]))
	}
	attrs = append(attrs, slog.Int("skipped_notifications", x.SkippedNotifies))
	return slog.GroupValue(attrs...)
}
