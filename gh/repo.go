package gh

import (
	"context"
	"fmt"

	gogithub "github.com/google/go-github/v75/github"
	"golang.org/x/oauth2"
)

// metadataClient builds a go-github client for repository metadata lookups.
// Listing and raw downloads stay on the hand-rolled client because their
// error contracts are part of the mirror surface.
func (c *Client) metadataClient(ctx context.Context) (*gogithub.Client, error) {
	var httpClient = c.HTTPClient
	if c.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: c.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	}
	gh := gogithub.NewClient(httpClient)
	if c.APIBaseURL != "" {
		var err error
		gh, err = gh.WithEnterpriseURLs(c.APIBaseURL, c.APIBaseURL)
		if err != nil {
			return nil, fmt.Errorf("configuring API base URL: %w", err)
		}
	}
	return gh, nil
}

// ResolveDefaultRef returns the repository's default branch, used when a
// mirror request does not name a ref.
func (c *Client) ResolveDefaultRef(ctx context.Context, owner, repository string) (string, error) {
	gh, err := c.metadataClient(ctx)
	if err != nil {
		return "", err
	}
	repo, _, err := gh.Repositories.Get(ctx, owner, repository)
	if err != nil {
		return "", fmt.Errorf("fetching repository %s/%s: %w", owner, repository, err)
	}
	if repo.GetDefaultBranch() == "" {
		return "", fmt.Errorf("repository %s/%s has no default branch", owner, repository)
	}
	return repo.GetDefaultBranch(), nil
}

// RepoIsPrivate checks if a repository is private or not on GitHub.
func (c *Client) RepoIsPrivate(ctx context.Context, owner, repository string) (bool, error) {
	gh, err := c.metadataClient(ctx)
	if err != nil {
		return false, err
	}
	repo, resp, err := gh.Repositories.Get(ctx, owner, repository)
	if err != nil {
		if resp != nil {
			switch {
			case resp.StatusCode == 404:
				return false, fmt.Errorf("repo not found: %s/%s", owner, repository)
			case resp.StatusCode == 401:
				return false, ErrInvalidToken
			case resp.StatusCode == 403 && resp.Header.Get("X-RateLimit-Remaining") == "0":
				return false, ErrRateLimitExceeded
			}
		}
		return false, fmt.Errorf("fetching repository %s/%s: %w", owner, repository, err)
	}
	return repo.GetPrivate(), nil
}
