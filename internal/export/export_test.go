package export

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"/", "index.html"},
		{"/quickstart", filepath.Join("quickstart", "index.html")},
		{"/zh-TW", filepath.Join("zh-TW", "index.html")},
		{"/zh-TW/architecture", filepath.Join("zh-TW", "architecture", "index.html")},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, outputPath(tt.url), "outputPath(%q)", tt.url)
	}
}

func TestRun_WritesBothLocales(t *testing.T) {
	dir := t.TempDir()

	written, err := Run(Config{OutDir: dir, Logger: discardLogger()})
	require.NoError(t, err)

	// Four pages plus a 404 per locale.
	assert.Equal(t, 10, written)

	for _, rel := range []string{
		"index.html",
		"quickstart/index.html",
		"architecture/index.html",
		"compatibility/index.html",
		"404.html",
		"zh-TW/index.html",
		"zh-TW/quickstart/index.html",
		"zh-TW/architecture/index.html",
		"zh-TW/compatibility/index.html",
		"zh-TW/404.html",
	} {
		_, err := os.Stat(filepath.Join(dir, filepath.FromSlash(rel)))
		assert.NoError(t, err, "expected %s to exist", rel)
	}
}

func TestRun_DocumentsAreComplete(t *testing.T) {
	dir := t.TempDir()

	_, err := Run(Config{OutDir: dir, Logger: discardLogger()})
	require.NoError(t, err)

	en, err := os.ReadFile(filepath.Join(dir, "index.html"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(en), "<!DOCTYPE html>"))
	assert.Contains(t, string(en), `lang="en"`)
	assert.Contains(t, string(en), "Nephio O-RAN Orchestration Agents")

	zh, err := os.ReadFile(filepath.Join(dir, "zh-TW", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(zh), `lang="zh-TW"`)

	notFound, err := os.ReadFile(filepath.Join(dir, "404.html"))
	require.NoError(t, err)
	assert.Contains(t, string(notFound), "404")
}

func TestRun_CompatibilityPageIsFullyRendered(t *testing.T) {
	dir := t.TempDir()

	_, err := Run(Config{OutDir: dir, Logger: discardLogger()})
	require.NoError(t, err)

	for _, rel := range []string{"compatibility/index.html", "zh-TW/compatibility/index.html"} {
		html, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(rel)))
		require.NoError(t, err)

		// The exported page must carry the statement itself, never a
		// loading placeholder nothing will ever replace.
		assert.Contains(t, string(html), `data-density="full"`, rel)
		assert.NotContains(t, string(html), `role="status"`, rel)
	}

	en, err := os.ReadFile(filepath.Join(dir, "compatibility", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(en), "Last updated")
	assert.Contains(t, string(en), "Nephio")
}
