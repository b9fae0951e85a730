// Package notify delivers secret classification results to one of the supported channels: structured log, CI annotation or webhook.
package notify

import (
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"

	"github.com/m-mizutani/ghso/pkg/domain/interfaces"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Config selects exactly one notification channel.
type Config struct {
	Type       types.NotifierType
	WebhookURL types.WebhookURL
}

func (x Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", string(x.Type)),
		slog.Any("webhook_url", x.WebhookURL),
	)
}

type options struct {
	stdout     io.Writer
	httpClient interfaces.HTTPClient
}

type Option func(*options)

// WithWriter replaces standard output of the annotation channel
func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.stdout = w
	}
}

// WithHTTPClient replaces the HTTP client of the webhook channel
func WithHTTPClient(client interfaces.HTTPClient) Option {
	return func(o *options) {
		o.httpClient = client
	}
}

// New builds the notifier selected by cfg. Selecting webhook without a valid URL or an unknown type is a configuration error.
func New(cfg Config, opts ...Option) (interfaces.Notifier, error) {
	o := &options{
		stdout:     os.Stdout,
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(o)
	}

	switch cfg.Type {
	case types.NotifierLog:
		return NewLog(), nil

	case types.NotifierAnnotation:
		return NewAnnotation(o.stdout), nil

	case types.NotifierWebhook:
		if cfg.WebhookURL == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "webhook URL is required for webhook notifier")
		}
		u, err := url.Parse(string(cfg.WebhookURL))
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return nil, goerr.Wrap(types.ErrInvalidOption, "webhook URL must be an absolute http(s) URL",
				goerr.V("webhook_url", cfg.WebhookURL))
		}
		return NewWebhook(cfg.WebhookURL, o.httpClient), nil

	default:
		return nil, goerr.Wrap(types.ErrInvalidOption, "unsupported notifier type",
			goerr.V("type", cfg.Type))
	}
}
