package sandbox

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/sandboxes", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`{"id": "sb-1", "template": "node", "status": "running", "created_at": "2026-08-30T10:00:00Z"}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL, Token: "tok"}
	sb, err := client.Create(context.Background(), "node")
	require.NoError(t, err)
	assert.Equal(t, "sb-1", sb.ID)
	assert.Equal(t, "node", sb.Template)
	assert.Equal(t, "running", sb.Status)
}

func TestList(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"sandboxes": [{"id": "sb-1"}, {"id": "sb-2"}]}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	sandboxes, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, sandboxes, 2)
	assert.Equal(t, "sb-2", sandboxes[1].ID)
}

func TestDelete(t *testing.T) {
	var gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	require.NoError(t, client.Delete(context.Background(), "sb-1"))
	assert.Equal(t, "/sandboxes/sb-1", gotPath)
}

func TestErrorWithRemoteMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "sandbox not found"}`))
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	_, err := client.Get(context.Background(), "sb-x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sandbox not found")
	assert.Contains(t, err.Error(), "sb-x")
}

func TestErrorWithoutBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := &Client{BaseURL: server.URL}
	_, err := client.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HTTP 502")
}
