// Package routes declares every page the site serves, in both locales.
// The same table drives live serving (Register) and the static exporter.
package routes

import (
	"strings"

	vango "github.com/vango-dev/vango/v2"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/internal/i18n"
)

// Page is one locale-relative route.
type Page struct {
	// Path is relative to the locale prefix: "/", "/quickstart", ...
	Path string

	// Render produces the page body; the layout is applied around it.
	Render func(ctx vango.Ctx, loc language.Tag) *vango.VNode

	// RenderStatic, when set, replaces Render for static export.
	// Deferred loads never settle in exported HTML, so pages that
	// render lazily must provide an eager variant here.
	RenderStatic func(ctx vango.Ctx, loc language.Tag) *vango.VNode
}

// StaticRender returns the renderer the exporter should use.
func (p Page) StaticRender() func(ctx vango.Ctx, loc language.Tag) *vango.VNode {
	if p.RenderStatic != nil {
		return p.RenderStatic
	}
	return p.Render
}

// Pages returns the site's routing table in navigation order.
func Pages() []Page {
	return []Page{
		{Path: "/", Render: IndexPage},
		{Path: "/quickstart", Render: QuickstartPage},
		{Path: "/architecture", Render: ArchitecturePage},
		{Path: "/compatibility", Render: CompatibilityPage, RenderStatic: CompatibilityPageStatic},
	}
}

// LocalizedPath maps a locale-relative path to its served URL.
func LocalizedPath(loc language.Tag, path string) string {
	prefix := i18n.PathPrefix(loc)
	if prefix == "" {
		return path
	}
	if path == "/" {
		return prefix
	}
	return prefix + path
}

// LocaleFromPath recovers the locale a request path belongs to.
func LocaleFromPath(path string) language.Tag {
	zh := i18n.PathPrefix(language.TraditionalChinese)
	if path == zh || strings.HasPrefix(path, zh+"/") {
		return language.TraditionalChinese
	}
	return language.English
}

// Register wires every page, in every locale, plus the 404 handler.
func Register(app *vango.App) {
	for _, loc := range i18n.Supported() {
		loc := loc
		layout := func(ctx vango.Ctx, children vango.Slot) *vango.VNode {
			return Layout(ctx, loc, children)
		}
		for _, page := range Pages() {
			page := page
			app.Page(LocalizedPath(loc, page.Path), func(ctx vango.Ctx) *vango.VNode {
				return page.Render(ctx, loc)
			}, layout)
		}
	}

	app.SetNotFound(func(ctx vango.Ctx) *vango.VNode {
		loc := LocaleFromPath(ctx.Path())
		return Layout(ctx, loc, NotFoundPage(ctx, loc))
	})
}
