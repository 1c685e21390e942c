package gh

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// FetchArchive downloads the repository zipball for ref and returns the raw
// zip bytes. An empty ref means the repository's default branch.
func (c *Client) FetchArchive(ctx context.Context, owner, repository, ref string) ([]byte, error) {
	archiveURL := ArchiveURL(c.apiBase(), owner, repository, ref)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating archive request for %s/%s: %w", owner, repository, err)
	}
	if c.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}

	resp, err := c.doRequestWithRetry(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetching archive of %s/%s: %w", owner, repository, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, apiErrorFromResponse(resp.StatusCode, body)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading archive of %s/%s: %w", owner, repository, err)
	}

	return data, nil
}
