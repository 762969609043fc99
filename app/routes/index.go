package routes

import (
	vango "github.com/vango-dev/vango/v2"
	. "github.com/vango-dev/vango/v2/el"
	"github.com/vango-dev/vango/v2/pkg/router"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/app/components/docs"
	"github.com/nephio-oran/docsite/internal/i18n"
)

// IndexPage is the landing page: hero, calls to action, and the
// badges-only support summary.
func IndexPage(ctx vango.Ctx, loc language.Tag) *vango.VNode {
	prefix := i18n.PathPrefix(loc)
	return Div(Class("space-y-12"),
		Section(Class("text-center py-12 space-y-5"),
			H1(Class("text-4xl md:text-5xl font-bold tracking-tight"),
				Text(i18n.Lookup(loc, "site.title"))),
			P(Class("text-xl text-gray-600 dark:text-gray-300"),
				Text(i18n.Lookup(loc, "site.tagline"))),
			P(Class("max-w-2xl mx-auto text-gray-600 dark:text-gray-400"),
				Text(i18n.Lookup(loc, "hero.blurb"))),
			Div(Class("flex justify-center gap-4 pt-2"),
				router.Link(prefix+"/quickstart",
					Class("px-5 py-2.5 rounded-lg bg-blue-600 text-white font-medium hover:bg-blue-700 transition-colors"),
					Text(i18n.Lookup(loc, "hero.cta.quickstart")),
				),
				router.Link(prefix+"/compatibility",
					Class("px-5 py-2.5 rounded-lg border border-gray-300 dark:border-gray-600 font-medium hover:bg-gray-50 dark:hover:bg-gray-800 transition-colors"),
					Text(i18n.Lookup(loc, "hero.cta.compatibility")),
				),
			),
		),
		Section(Class("flex justify-center"),
			docs.MustSupportStatement(loc, docs.DensityBadgesOnly, false),
		),
	)
}
