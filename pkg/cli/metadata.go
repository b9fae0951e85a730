package cli

import (
	"net/url"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/m-mizutani/ghso/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DetectOrganization returns the owner of the origin remote of the git repository at dir.
func DetectOrganization(dir string) (string, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return "", goerr.Wrap(err, "failed to open git repository", goerr.V("dir", dir))
	}

	remote, err := repo.Remote("origin")
	if err != nil {
		return "", goerr.Wrap(err, "failed to get remote origin", goerr.V("dir", dir))
	}

	if len(remote.Config().URLs) == 0 {
		return "", goerr.New("no remote URL found", goerr.V("dir", dir))
	}

	return parseRemoteOwner(remote.Config().URLs[0])
}

// parseRemoteOwner extracts owner from git@host:owner/repo.git, ssh://git@host/owner/repo.git
// and https://host/owner/repo.git
func parseRemoteOwner(remoteURL string) (string, error) {
	var path string

	if u, err := url.Parse(remoteURL); err == nil && u.Scheme != "" && u.Host != "" {
		path = u.Path
	} else if at := strings.Index(remoteURL, "@"); at >= 0 {
		hostPath := remoteURL[at+1:]
		colon := strings.Index(hostPath, ":")
		if colon < 0 {
			return "", goerr.Wrap(types.ErrInvalidOption, "unsupported git remote URL", goerr.V("url", remoteURL))
		}
		path = hostPath[colon+1:]
	} else {
		return "", goerr.Wrap(types.ErrInvalidOption, "unsupported git remote URL", goerr.V("url", remoteURL))
	}

	parts := strings.Split(strings.Trim(strings.TrimSuffix(path, ".git"), "/"), "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "failed to parse owner/repo from git remote URL", goerr.V("url", remoteURL))
	}

	return parts[0], nil
}
