package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidOption is a configuration error. It is always fatal and surfaced before any network call.
	ErrInvalidOption = goerr.New("invalid option")

	// ErrGitHubAPI is returned when listing repositories or secrets fails.
	ErrGitHubAPI = goerr.New("GitHub API error")

	// ErrNotification is returned when a notification can not be delivered.
	ErrNotification = goerr.New("notification failed")
)
