package gh

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListContentsDirectory(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/repos/org/repo/contents/templates", r.URL.Path)
		assert.Equal(t, "main", r.URL.Query().Get("ref"))
		_, _ = w.Write([]byte(`[
			{"path": "templates/a.html", "type": "file", "download_url": "https://x/a"},
			{"path": "templates/sub", "type": "dir", "download_url": null}
		]`))
	}))
	defer server.Close()

	client := &Client{Token: "secret", APIBaseURL: server.URL}
	entries, err := client.ListContents(context.Background(), "org", "repo", "templates", "main")
	require.NoError(t, err)

	assert.Equal(t, "Bearer secret", gotAuth)
	require.Len(t, entries, 2)
	assert.Equal(t, "templates/a.html", entries[0].Path)
	require.NotNil(t, entries[0].DownloadURL)
	assert.Equal(t, "https://x/a", *entries[0].DownloadURL)
	assert.True(t, entries[1].IsDir())
	assert.Nil(t, entries[1].DownloadURL)
}

func TestListContentsSingleFileObject(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"path": "docs/readme.md", "type": "file", "download_url": "https://x/readme"}`))
	}))
	defer server.Close()

	client := &Client{APIBaseURL: server.URL}
	entries, err := client.ListContents(context.Background(), "org", "repo", "docs/readme.md", "")
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Equal(t, "docs/readme.md", entries[0].Path)
	assert.False(t, entries[0].IsDir())
}

func TestListContentsAPIError(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		body        string
		wantMessage string
	}{
		{
			name:        "not found with message",
			status:      http.StatusNotFound,
			body:        `{"message": "Not Found"}`,
			wantMessage: "Not Found",
		},
		{
			name:   "server error without body",
			status: http.StatusInternalServerError,
		},
		{
			name:   "unauthorized with junk body",
			status: http.StatusUnauthorized,
			body:   "nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := &Client{APIBaseURL: server.URL}
			_, err := client.ListContents(context.Background(), "org", "repo", "dir", "")
			require.Error(t, err)

			apiErr, ok := err.(*APIError)
			require.True(t, ok, "expected *APIError, got %T", err)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, tt.wantMessage, apiErr.Message)
		})
	}
}

func TestAPIErrorClassifiers(t *testing.T) {
	assert.True(t, (&APIError{StatusCode: 404}).NotFound())
	assert.False(t, (&APIError{StatusCode: 404}).ServerError())
	assert.True(t, (&APIError{StatusCode: 503}).ServerError())
	assert.False(t, (&APIError{StatusCode: 403}).ServerError())
}

func TestDownload(t *testing.T) {
	payload := []byte{0x00, 0x01, 0xff, 0xfe, 'z', 'i', 'p'}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(payload)
	}))
	defer server.Close()

	client := &Client{}
	got, err := client.Download(context.Background(), server.URL+"/raw/blob")
	require.NoError(t, err)
	assert.Equal(t, payload, got)
}

func TestDownloadNonOK(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer server.Close()

	client := &Client{}
	_, err := client.Download(context.Background(), server.URL+"/raw/blob")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "403")
}

func TestContentsURL(t *testing.T) {
	assert.Equal(t,
		"https://api.github.com/repos/org/repo/contents/path/to/dir?ref=main",
		ContentsURL(DefaultAPIBaseURL, "org", "repo", "path/to/dir", "main"),
	)
	assert.Equal(t,
		"https://api.github.com/repos/org/repo/contents/dir",
		ContentsURL(DefaultAPIBaseURL, "org", "repo", "dir", ""),
	)
	assert.Equal(t,
		"https://api.github.com/repos/org/repo/contents/dir?ref=feat%2Fbranch",
		ContentsURL(DefaultAPIBaseURL, "org", "repo", "dir", "feat/branch"),
	)
}

func TestArchiveURL(t *testing.T) {
	assert.Equal(t,
		"https://api.github.com/repos/org/repo/zipball/v1.2.3",
		ArchiveURL(DefaultAPIBaseURL, "org", "repo", "v1.2.3"),
	)
	assert.Equal(t,
		"https://api.github.com/repos/org/repo/zipball",
		ArchiveURL(DefaultAPIBaseURL, "org", "repo", ""),
	)
}

func TestFetchArchiveRetriesOnServiceUnavailable(t *testing.T) {
	attempts := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		attempts++
		if attempts == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("zipbytes"))
	}))
	defer server.Close()

	client := &Client{APIBaseURL: server.URL}
	data, err := client.FetchArchive(context.Background(), "org", "repo", "main")
	require.NoError(t, err)
	assert.Equal(t, []byte("zipbytes"), data)
	assert.Equal(t, 2, attempts)
}
