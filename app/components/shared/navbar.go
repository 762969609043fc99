package shared

import (
	"strings"

	. "github.com/vango-dev/vango/v2/el"
	"github.com/vango-dev/vango/v2/pkg/router"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/internal/i18n"
)

// Navbar renders the site header: brand, section links, locale switch and
// theme toggle. currentPath is used to point the locale switch at the same
// page in the other locale.
func Navbar(loc language.Tag, currentPath string) *VNode {
	prefix := i18n.PathPrefix(loc)
	home := prefix
	if home == "" {
		home = "/"
	}

	return Header(Class("border-b border-gray-200 dark:border-gray-700"),
		Div(Class("max-w-5xl mx-auto px-5 py-4 flex items-center justify-between"),
			Div(Class("flex items-center gap-3"),
				router.Link(home,
					Class("font-bold text-lg hover:opacity-80 transition-opacity"),
					Text(i18n.Lookup(loc, "site.title")),
				),
			),
			Div(Class("flex items-center gap-6"),
				Nav(Class("flex items-center gap-4"),
					navItem(loc, prefix, "/", "nav.home"),
					navItem(loc, prefix, "/quickstart", "nav.quickstart"),
					navItem(loc, prefix, "/architecture", "nav.architecture"),
					navItem(loc, prefix, "/compatibility", "nav.compatibility"),
				),
				router.Link(localeSwitchTarget(loc, currentPath),
					Class("text-sm text-gray-500 hover:text-gray-900 dark:hover:text-white transition-colors"),
					Rel("alternate"),
					Text(i18n.Lookup(loc, "nav.locale.switch")),
				),
				ThemeToggle(),
			),
		),
	)
}

func navItem(loc language.Tag, prefix, path, key string) *VNode {
	href := prefix + path
	if path == "/" {
		href = prefix
		if href == "" {
			href = "/"
		}
	}
	return router.NavLink(href, Text(i18n.Lookup(loc, key)))
}

// localeSwitchTarget maps the current path onto the other locale.
func localeSwitchTarget(loc language.Tag, currentPath string) string {
	if loc == language.TraditionalChinese {
		target := strings.TrimPrefix(currentPath, i18n.PathPrefix(language.TraditionalChinese))
		if target == "" {
			target = "/"
		}
		return target
	}
	if currentPath == "/" {
		return i18n.PathPrefix(language.TraditionalChinese)
	}
	return i18n.PathPrefix(language.TraditionalChinese) + currentPath
}

// ThemeToggle switches between light and dark mode. The click handler is
// attached by the layout's inline script.
func ThemeToggle() *VNode {
	return Button(
		ID("theme-toggle"),
		Class("p-2 text-gray-600 dark:text-gray-300 hover:text-gray-900 dark:hover:text-white transition-colors"),
		AriaLabel("Toggle theme"),
		Span(Class("hidden dark:block"), AriaHidden(true), Text("☀")),
		Span(Class("block dark:hidden"), AriaHidden(true), Text("☾")),
	)
}
