package model

import (
	"log/slog"

	"github.com/m-mizutani/ghso/pkg/domain/types"
)

// Classification is the result of evaluating one secret against a Policy.
// DaysLeft is set for not_expired and expires_soon, DaysOverdue for expired. Both are zero for ignored.
type Classification struct {
	State         types.SecretState
	DaysLeft      int
	DaysOverdue   int
	RetentionDays int
}

func (x *Classification) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("state", x.State.String()),
		slog.Int("days_left", x.DaysLeft),
		slog.Int("days_overdue", x.DaysOverdue),
		slog.Int("retention_days", x.RetentionDays),
	)
}
