package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveComponentsURL(t *testing.T) {
	components, err := resolveComponents("https://github.com/owner/repo/tree/main/templates")
	require.NoError(t, err)
	assert.Equal(t, "owner", components.Owner)
	assert.Equal(t, "repo", components.Repository)
	assert.Equal(t, "main", components.Ref)
	assert.Equal(t, "templates", components.Dir)
}

func TestResolveComponentsIdentifier(t *testing.T) {
	mirrorPath = "docs"
	defer func() { mirrorPath = "" }()

	components, err := resolveComponents("owner/repo")
	require.NoError(t, err)
	assert.Equal(t, "owner", components.Owner)
	assert.Equal(t, "repo", components.Repository)
	assert.Equal(t, "docs", components.Dir)
	assert.Empty(t, components.Ref)
}

func TestResolveComponentsInvalid(t *testing.T) {
	_, err := resolveComponents("not-an-identifier")
	assert.Error(t, err)
}

func TestExcludeFilter(t *testing.T) {
	filter := excludeFilter([]string{"templates/sub", "vendor"})
	assert.True(t, filter("templates/a.html", "/out/a.html"))
	assert.False(t, filter("templates/sub", "/out/sub"))
	assert.False(t, filter("templates/sub/b.css", "/out/sub/b.css"))
	assert.False(t, filter("vendor/lib.js", "/out/lib.js"))

	assert.Nil(t, excludeFilter(nil))
}
