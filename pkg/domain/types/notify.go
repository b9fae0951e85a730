package types

import (
	"log/slog"
	"net/url"
)

type NotifierType string

const (
	NotifierLog        NotifierType = "log"
	NotifierAnnotation NotifierType = "annotation"
	NotifierWebhook    NotifierType = "webhook"
)

// WebhookURL often embeds a credential (e.g. Slack incoming webhook), so only the host is logged.
type WebhookURL string

func (x WebhookURL) LogValue() slog.Value {
	if x == "" {
		return slog.StringValue("")
	}
	u, err := url.Parse(string(x))
	if err != nil {
		return slog.StringValue("***********")
	}
	return slog.StringValue(u.Scheme + "://" + u.Host + "/***********")
}

// NotifyFailurePolicy decides what the audit does when a notification can not be delivered.
type NotifyFailurePolicy string

const (
	NotifyFailureAbort NotifyFailurePolicy = "abort"
	NotifyFailureSkip  NotifyFailurePolicy = "skip"
)
