// Package sandbox wraps the remote sandbox management API. Every call is a
// single request whose response is reshaped into model.Sandbox; errors pass
// through to the caller unclassified.
package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"repo-mirror/model"
)

// DefaultBaseURL is the hosted sandbox service.
const DefaultBaseURL = "https://api.sandbox.dev/v1"

// Client talks to the sandbox API. Token is the bearer credential; empty
// means unauthenticated requests.
type Client struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

// NewClient returns a Client against the hosted service.
func NewClient(token string) *Client {
	return &Client{Token: token}
}

func (c *Client) baseURL() string {
	if c.BaseURL != "" {
		return c.BaseURL
	}
	return DefaultBaseURL
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) do(ctx context.Context, method, path string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL()+path, body)
	if err != nil {
		return err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.Token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.Token))
	}

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return fmt.Errorf("sandbox API request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		var remote struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(respBody, &remote) == nil && remote.Message != "" {
			return fmt.Errorf("sandbox API: HTTP %d: %s", resp.StatusCode, remote.Message)
		}
		return fmt.Errorf("sandbox API: HTTP %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("decoding sandbox response: %w", err)
		}
	}
	return nil
}

// Create starts a sandbox from template.
func (c *Client) Create(ctx context.Context, template string) (model.Sandbox, error) {
	var sb model.Sandbox
	payload := map[string]string{"template": template}
	if err := c.do(ctx, http.MethodPost, "/sandboxes", payload, &sb); err != nil {
		return model.Sandbox{}, fmt.Errorf("creating sandbox: %w", err)
	}
	return sb, nil
}

// Get fetches one sandbox by id.
func (c *Client) Get(ctx context.Context, id string) (model.Sandbox, error) {
	var sb model.Sandbox
	if err := c.do(ctx, http.MethodGet, "/sandboxes/"+id, nil, &sb); err != nil {
		return model.Sandbox{}, fmt.Errorf("fetching sandbox %s: %w", id, err)
	}
	return sb, nil
}

// List returns every sandbox visible to the credential.
func (c *Client) List(ctx context.Context) ([]model.Sandbox, error) {
	var out struct {
		Sandboxes []model.Sandbox `json:"sandboxes"`
	}
	if err := c.do(ctx, http.MethodGet, "/sandboxes", nil, &out); err != nil {
		return nil, fmt.Errorf("listing sandboxes: %w", err)
	}
	return out.Sandboxes, nil
}

// Delete terminates a sandbox.
func (c *Client) Delete(ctx context.Context, id string) error {
	if err := c.do(ctx, http.MethodDelete, "/sandboxes/"+id, nil, nil); err != nil {
		return fmt.Errorf("deleting sandbox %s: %w", id, err)
	}
	return nil
}
