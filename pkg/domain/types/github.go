package types

import (
	"log/slog"

	"github.com/google/uuid"
)

type (
	GitHubToken         string
	GitHubAppID         int64
	GitHubAppInstallID  int64
	GitHubAppPrivateKey string
	RunID               string
)

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string {
	return string(x)
}

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x GitHubAppPrivateKey) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubAppPrivateKey) String() string {
	return "***********"
}
