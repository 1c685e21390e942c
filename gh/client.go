package gh

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"repo-mirror/model"
)

const (
	// DefaultAPIBaseURL is the GitHub REST API root.
	DefaultAPIBaseURL = "https://api.github.com"
	// DefaultRawBaseURL serves raw file content for public repositories.
	DefaultRawBaseURL = "https://raw.githubusercontent.com"
)

// Error constants
var (
	ErrRateLimitExceeded = errors.New("rate limit exceeded")
	ErrInvalidToken      = errors.New("invalid token")
)

// APIError is a non-2xx response from the GitHub API, with the structured
// message body parsed when the remote supplied one.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("HTTP %d", e.StatusCode)
}

// NotFound reports whether the remote said the path does not exist.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// ServerError reports whether the failure was on GitHub's side.
func (e *APIError) ServerError() bool {
	return e.StatusCode >= 500
}

// Client talks to the GitHub API. The token is carried explicitly; callers
// resolve credentials once and pass them in rather than relying on ambient
// state. Base URLs are overridable so tests can point at local servers.
type Client struct {
	Token      string
	APIBaseURL string
	RawBaseURL string
	HTTPClient *http.Client
}

// NewClient returns a Client authenticated with token, or an unauthenticated
// one when token is empty.
func NewClient(token string) *Client {
	return &Client{Token: token}
}

func (c *Client) apiBase() string {
	if c.APIBaseURL != "" {
		return strings.TrimSuffix(c.APIBaseURL, "/")
	}
	return DefaultAPIBaseURL
}

func (c *Client) rawBase() string {
	if c.RawBaseURL != "" {
		return strings.TrimSuffix(c.RawBaseURL, "/")
	}
	return DefaultRawBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	if c.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}
	return c.httpClient().Do(req)
}

// ListContents fetches the contents listing for dir at ref. The contents API
// returns a JSON array for a directory and a single object when the path
// names a file; both shapes come back as a slice. Non-2xx responses are
// returned as *APIError.
func (c *Client) ListContents(ctx context.Context, owner, repository, dir, ref string) ([]model.ContentEntry, error) {
	resp, err := c.get(ctx, ContentsURL(c.apiBase(), owner, repository, dir, ref))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apiErrorFromResponse(resp.StatusCode, body)
	}

	var entries []model.ContentEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		var single model.ContentEntry
		if err := json.Unmarshal(body, &single); err != nil {
			return nil, fmt.Errorf("decoding contents listing for %s: %w", dir, err)
		}
		entries = []model.ContentEntry{single}
	}

	return entries, nil
}

func apiErrorFromResponse(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Message = payload.Message
	}
	return apiErr
}

// ContentsURL builds the contents API endpoint for dir at ref.
func ContentsURL(base, owner, repository, dir, ref string) string {
	u := fmt.Sprintf("%s/repos/%s/%s/contents/%s", base, owner, repository, dir)
	if ref != "" {
		u += "?ref=" + url.QueryEscape(ref)
	}
	return u
}

// RawFileURL builds the raw content URL for path at ref.
func RawFileURL(base, owner, repository, ref, path string) string {
	return fmt.Sprintf("%s/%s/%s/%s/%s", base, owner, repository, ref, url.PathEscape(path))
}

// ArchiveURL builds the zipball endpoint for ref.
func ArchiveURL(base, owner, repository, ref string) string {
	u := fmt.Sprintf("%s/repos/%s/%s/zipball", base, owner, repository)
	if ref != "" {
		u += "/" + ref
	}
	return u
}
