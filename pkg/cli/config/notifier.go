package config

import (
	"log/slog"

	"github.com/m-mizutani/ghso/pkg/domain/interfaces"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/infra/notify"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

type Notifier struct {
	notifierType  string
	webhookURL    types.WebhookURL `masq:"secret"`
	notifyFailure string
}

func (x *Notifier) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "notifier",
			Usage:       "Notification channel [log|annotation|webhook]",
			Category:    "Notification",
			Destination: &x.notifierType,
			Sources:     cli.EnvVars("GHSO_NOTIFIER"),
			Value:       string(types.NotifierLog),
		},
		&cli.StringFlag{
			Name:        "webhook-url",
			Usage:       "Incoming webhook URL, required for webhook notifier",
			Category:    "Notification",
			Destination: (*string)(&x.webhookURL),
			Sources:     cli.EnvVars("GHSO_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "notify-failure",
			Usage:       "Action when a notification can not be delivered [abort|skip]",
			Category:    "Notification",
			Destination: &x.notifyFailure,
			Sources:     cli.EnvVars("GHSO_NOTIFY_FAILURE"),
			Value:       string(types.NotifyFailureAbort),
		},
	}
}

func (x *Notifier) New(opts ...notify.Option) (interfaces.Notifier, error) {
	return notify.New(notify.Config{
		Type:       types.NotifierType(x.notifierType),
		WebhookURL: x.webhookURL,
	}, opts...)
}

func (x *Notifier) FailurePolicy() (types.NotifyFailurePolicy, error) {
	switch p := types.NotifyFailurePolicy(x.notifyFailure); p {
	case types.NotifyFailureAbort, types.NotifyFailureSkip:
		return p, nil
	default:
		return "", goerr.Wrap(types.ErrInvalidOption, "invalid notify failure policy, should be 'abort' or 'skip'",
			goerr.V("value", x.notifyFailure))
	}
}

func (x *Notifier) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", x.notifierType),
		slog.Any("webhookURL", x.webhookURL),
		slog.String("notifyFailure", x.notifyFailure),
	)
}
