// Package export renders every route to static HTML for CDN hosting.
package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/vango/v2/pkg/render"
	"github.com/vango-dev/vango/v2/pkg/server"
	"github.com/vango-dev/vango/v2/pkg/vdom"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/app/routes"
	"github.com/nephio-oran/docsite/internal/i18n"
)

// Config controls one export run.
type Config struct {
	// OutDir is the destination root, e.g. "dist".
	OutDir string

	// Logger receives one line per written file. Defaults to slog.Default.
	Logger *slog.Logger
}

// Run renders every page in every locale under cfg.OutDir, plus a
// root-level 404.html per locale convention. Returns the number of
// files written.
func Run(cfg Config) (int, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx := server.NewTestContext(server.NewMockSession())
	renderer := render.NewRenderer(render.RendererConfig{Pretty: false})

	written := 0
	for _, loc := range i18n.Supported() {
		for _, page := range routes.Pages() {
			url := routes.LocalizedPath(loc, page.Path)
			doc := routes.Layout(ctx, loc, page.StaticRender()(ctx, loc))
			path, err := writeDocument(renderer, cfg.OutDir, outputPath(url), doc)
			if err != nil {
				return written, fmt.Errorf("exporting %s: %w", url, err)
			}
			logger.Info("exported page", "url", url, "file", path)
			written++
		}

		notFound := routes.Layout(ctx, loc, routes.NotFoundPage(ctx, loc))
		rel := "404.html"
		if prefix := i18n.PathPrefix(loc); prefix != "" {
			rel = filepath.Join(strings.TrimPrefix(prefix, "/"), "404.html")
		}
		path, err := writeDocument(renderer, cfg.OutDir, rel, notFound)
		if err != nil {
			return written, fmt.Errorf("exporting 404 for %v: %w", loc, err)
		}
		logger.Info("exported page", "url", "404", "file", path)
		written++
	}
	return written, nil
}

// outputPath maps a URL to its on-disk file: "/" -> index.html,
// "/quickstart" -> quickstart/index.html.
func outputPath(url string) string {
	trimmed := strings.Trim(url, "/")
	if trimmed == "" {
		return "index.html"
	}
	return filepath.Join(filepath.FromSlash(trimmed), "index.html")
}

func writeDocument(renderer *render.Renderer, outDir, rel string, doc *vdom.VNode) (string, error) {
	html, err := renderer.RenderToString(doc)
	if err != nil {
		return "", err
	}

	path := filepath.Join(outDir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte("<!DOCTYPE html>\n"+html), 0o644); err != nil {
		return "", err
	}
	return path, nil
}
