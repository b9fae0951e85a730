package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub Notifier HTTPClient

import (
	"context"
	"net/http"

	"github.com/m-mizutani/ghso/pkg/domain/model"
)

// GitHub lists repositories and their Actions secrets. Any non-2xx response is returned as an error.
type GitHub interface {
	ListRepositories(ctx context.Context, org string) ([]*model.Repository, error)
	ListSecrets(ctx context.Context, repo *model.Repository) ([]*model.Secret, error)
}

// Notifier renders one classification result and delivers it to a channel.
type Notifier interface {
	Notify(ctx context.Context, result *model.Classification, secret *model.Secret, repo *model.Repository) error
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
