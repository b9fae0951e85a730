package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/m-mizutani/ghso/pkg/domain/interfaces"
	"github.com/m-mizutani/ghso/pkg/domain/model"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/utils/logging"
	"github.com/m-mizutani/ghso/pkg/utils/safe"
	"github.com/m-mizutani/goerr/v2"
)

// maxErrorBody limits how much of an error response is kept in the error values
const maxErrorBody = 1024

// Webhook posts {"text": "..."} to an incoming webhook, e.g. Slack.
type Webhook struct {
	url        types.WebhookURL
	httpClient interfaces.HTTPClient
}

var _ interfaces.Notifier = (*Webhook)(nil)

func NewWebhook(url types.WebhookURL, httpClient interfaces.HTTPClient) *Webhook {
	return &Webhook{
		url:        url,
		httpClient: httpClient,
	}
}

type webhookMessage struct {
	Text string `json:"text"`
}

func (x *Webhook) Notify(ctx context.Context, result *model.Classification, secret *model.Secret, repo *model.Repository) error {
	msg := webhookMessage{
		Text: Glyph(result.State) + " " + Render(result, secret, repo),
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return goerr.Wrap(err, "failed to marshal webhook message")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, string(x.url), bytes.NewReader(body))
	if err != nil {
		return goerr.Wrap(types.ErrNotification, "failed to create webhook request",
			goerr.V("error", err.Error()),
			goerr.V("secret", secret.Name),
		)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return goerr.Wrap(types.ErrNotification, "failed to send webhook request",
			goerr.V("error", err.Error()),
			goerr.V("secret", secret.Name),
			goerr.V("repository", repo.FullName),
		)
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return goerr.Wrap(types.ErrNotification, "webhook returned non-2xx status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(respBody)),
			goerr.V("secret", secret.Name),
			goerr.V("repository", repo.FullName),
		)
	}

	logging.From(ctx).Debug("Sent webhook notification",
		slog.String("secret", secret.Name),
		slog.String("repository", repo.FullName),
		slog.Int("status", resp.StatusCode),
	)

	return nil
}
