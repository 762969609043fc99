package routes

import (
	vango "github.com/vango-dev/vango/v2"
	. "github.com/vango-dev/vango/v2/el"
	"github.com/vango-dev/vango/v2/pkg/router"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/internal/i18n"
)

// NotFoundPage renders the 404 body in the locale the request path
// belongs to.
func NotFoundPage(ctx vango.Ctx, loc language.Tag) *vango.VNode {
	home := LocalizedPath(loc, "/")
	return Div(Class("text-center py-20 space-y-5"),
		P(Class("text-7xl font-bold text-gray-300 dark:text-gray-700"), Text("404")),
		H1(Class("text-2xl font-semibold"), Text(i18n.Lookup(loc, "notfound.title"))),
		P(Class("text-gray-600 dark:text-gray-400"), Text(i18n.Lookup(loc, "notfound.body"))),
		router.Link(home,
			Class("inline-block px-5 py-2.5 rounded-lg bg-blue-600 text-white font-medium hover:bg-blue-700 transition-colors"),
			Text(i18n.Lookup(loc, "notfound.back")),
		),
	)
}
