// Package mirror reproduces a subtree of a remote repository into a local
// directory. Each directory level fans out its children concurrently and
// waits for all of them before returning; the first failing branch aborts
// the rest through the shared errgroup context.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"

	"repo-mirror/gh"
	"repo-mirror/helpers"
	"repo-mirror/model"
)

// StatusPageURL is where callers are pointed when GitHub itself is failing.
const StatusPageURL = "https://www.githubstatus.com/"

// Source lists repository contents and downloads raw files. *gh.Client
// satisfies it.
type Source interface {
	ListContents(ctx context.Context, owner, repository, dir, ref string) ([]model.ContentEntry, error)
	Download(ctx context.Context, url string) ([]byte, error)
}

// Filter decides whether an entry is mirrored. Returning false for a
// directory prunes its whole subtree: children are never listed, let alone
// downloaded.
type Filter func(sourcePath, destPath string) bool

// Request describes one mirror operation. Ref may be empty, in which case
// the caller should have resolved the repository default branch already
// (gh.Client.ResolveDefaultRef); the contents API also accepts an empty ref
// and falls back to the default branch server-side.
type Request struct {
	Owner       string
	Repository  string
	SourcePath  string
	Destination string
	Ref         string
	Filter      Filter
}

// Mirrorer runs mirror operations against a Source.
type Mirrorer struct {
	source Source
	limit  int
}

// Option configures a Mirrorer.
type Option func(*Mirrorer)

// WithConcurrencyLimit caps the number of in-flight entries per directory
// level. Zero or negative means unlimited.
func WithConcurrencyLimit(n int) Option {
	return func(m *Mirrorer) {
		m.limit = n
	}
}

// New returns a Mirrorer reading from source.
func New(source Source, opts ...Option) *Mirrorer {
	m := &Mirrorer{source: source}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run mirrors the subtree named by req.SourcePath under req.Destination.
// It returns only after every branch has settled; if any branch fails the
// whole operation fails with that error and already-written files are left
// in place.
func (m *Mirrorer) Run(ctx context.Context, req Request) error {
	if err := helpers.EnsureDir(filepath.Dir(req.Destination)); err != nil {
		return fmt.Errorf("creating destination parent: %w", err)
	}

	entries, err := m.source.ListContents(ctx, req.Owner, req.Repository, req.SourcePath, req.Ref)
	if err != nil {
		// Only the initial listing gets the two-category rewrap; failures
		// inside recursive branches propagate as-is.
		return classifyListingError(req.SourcePath, err)
	}

	return m.mirrorEntries(ctx, req, entries)
}

func (m *Mirrorer) mirrorEntries(ctx context.Context, req Request, entries []model.ContentEntry) error {
	g, ctx := errgroup.WithContext(ctx)
	if m.limit > 0 {
		g.SetLimit(m.limit)
	}
	for _, entry := range entries {
		g.Go(func() error {
			return m.mirrorEntry(ctx, req, entry)
		})
	}
	return g.Wait()
}

func (m *Mirrorer) mirrorEntry(ctx context.Context, req Request, entry model.ContentEntry) error {
	destPath := destinationPath(req, entry.Path)
	if req.Filter != nil && !req.Filter(entry.Path, destPath) {
		return nil
	}

	if entry.IsDir() {
		children, err := m.source.ListContents(ctx, req.Owner, req.Repository, entry.Path, req.Ref)
		if err != nil {
			return err
		}
		return m.mirrorEntries(ctx, req, children)
	}

	if entry.DownloadURL == nil {
		return fmt.Errorf("entry %s has no download URL", entry.Path)
	}

	content, err := m.source.Download(ctx, *entry.DownloadURL)
	if err != nil {
		return err
	}

	return helpers.SaveFile(destPath, content)
}

// destinationPath maps an entry's repo-relative path onto the destination by
// stripping the request's source path prefix.
func destinationPath(req Request, entryPath string) string {
	rel := strings.TrimPrefix(entryPath, req.SourcePath)
	rel = strings.TrimPrefix(rel, "/")
	if rel == "" {
		return req.Destination
	}
	return filepath.Join(req.Destination, filepath.FromSlash(rel))
}

// classifyListingError rewraps top-level listing failures into the two
// user-facing categories. Anything that is not a 404 or a 5xx from the
// contents API passes through with generic wrapping.
func classifyListingError(dir string, err error) error {
	var apiErr *gh.APIError
	if errors.As(err, &apiErr) {
		switch {
		case apiErr.StatusCode == http.StatusNotFound:
			msg := apiErr.Message
			if msg == "" {
				msg = fmt.Sprintf("no contents at %q", dir)
			}
			return fmt.Errorf("Failed to fetch contents: %s", msg)
		case apiErr.ServerError():
			if apiErr.Message != "" {
				return fmt.Errorf("GitHub responded with %q. Check the status of GitHub at %s", apiErr.Message, StatusPageURL)
			}
			return fmt.Errorf("GitHub returned a server error. Check the status of GitHub at %s", StatusPageURL)
		}
	}
	return fmt.Errorf("fetching contents of %s: %w", dir, err)
}
