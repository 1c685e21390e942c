package gh

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// Download fetches raw file content from downloadURL and returns the payload
// byte-for-byte. The URL comes from a ContentEntry's DownloadURL field.
func (c *Client) Download(ctx context.Context, downloadURL string) ([]byte, error) {
	resp, err := c.get(ctx, downloadURL)
	if err != nil {
		return nil, fmt.Errorf("HTTP error for %s: %w", downloadURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %s for %s", resp.Status, downloadURL)
	}

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body for %s: %w", downloadURL, err)
	}

	return content, nil
}

// DownloadRawFile fetches path at ref through the raw content host. Used for
// public repositories where no contents listing is needed.
func (c *Client) DownloadRawFile(ctx context.Context, owner, repository, ref, path string) ([]byte, error) {
	return c.Download(ctx, RawFileURL(c.rawBase(), owner, repository, ref, path))
}
