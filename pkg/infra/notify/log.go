package notify

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ghso/pkg/domain/interfaces"
	"github.com/m-mizutani/ghso/pkg/domain/model"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/utils/logging"
)

// Log writes results to the structured logger of the context.
type Log struct{}

var _ interfaces.Notifier = (*Log)(nil)

func NewLog() *Log {
	return &Log{}
}

func logLevel(state types.SecretState) slog.Level {
	switch state {
	case types.SecretExpired:
		return slog.LevelError
	case types.SecretExpiresSoon:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

func (x *Log) Notify(ctx context.Context, result *model.Classification, secret *model.Secret, repo *model.Repository) error {
	logging.From(ctx).Log(ctx, logLevel(result.State), Render(result, secret, repo),
		slog.String("state", result.State.String()),
		slog.String("secret", secret.Name),
		slog.String("repository", repo.FullName),
		slog.Int("days_left", result.DaysLeft),
		slog.Int("days_overdue", result.DaysOverdue),
	)
	return nil
}
