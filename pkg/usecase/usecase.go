package usecase

import (
	"github.com/m-mizutani/ghso/pkg/domain/interfaces"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/ghso/pkg/infra"
)

type UseCase struct {
	clients       *infra.Clients
	notifyFailure types.NotifyFailurePolicy
}

var _ interfaces.UseCase = (*UseCase)(nil)

type Option func(*UseCase)

// WithNotifyFailurePolicy sets what happens when a notification can not be delivered. Default is NotifyFailureAbort.
func WithNotifyFailurePolicy(policy types.NotifyFailurePolicy) Option {
	return func(x *UseCase) {
		x.notifyFailure = policy
	}
}

func New(clients *infra.Clients, options ...Option) *UseCase {
	uc := &UseCase{
		clients:       clients,
		notifyFailure: types.NotifyFailureAbort,
	}
	for _, opt := range options {
		opt(uc)
	}
	return uc
}
