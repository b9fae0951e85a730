package infra

import (
	"github.com/m-mizutani/ghso/pkg/domain/interfaces"
)

type Clients struct {
	github   interfaces.GitHub
	notifier interfaces.Notifier
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHub() interfaces.GitHub {
	return x.github
}
func (x *Clients) Notifier() interfaces.Notifier {
	return x.notifier
}

func WithGitHub(client interfaces.GitHub) Option {
	return func(x *Clients) {
		x.github = client
	}
}

func WithNotifier(notifier interfaces.Notifier) Option {
	return func(x *Clients) {
		x.notifier = notifier
	}
}
