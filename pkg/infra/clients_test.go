package infra_test

import (
	"testing"

	"github.com/m-mizutani/ghso/pkg/domain/mock"
	"github.com/m-mizutani/ghso/pkg/infra"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	t.Run("create new clients without options", func(t *testing.T) {
		clients := infra.New()
		gt.V(t, clients.GitHub()).Equal(nil)
		gt.V(t, clients.Notifier()).Equal(nil)
	})

	t.Run("WithGitHub option sets GitHub client", func(t *testing.T) {
		mockGH := &mock.GitHubMock{}
		clients := infra.New(infra.WithGitHub(mockGH))
		gt.V(t, clients.GitHub()).Equal(mockGH)
	})

	t.Run("WithNotifier option sets notifier", func(t *testing.T) {
		mockNotifier := &mock.NotifierMock{}
		clients := infra.New(infra.WithNotifier(mockNotifier))
		gt.V(t, clients.Notifier()).Equal(mockNotifier)
	})
}
