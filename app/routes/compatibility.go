package routes

import (
	vango "github.com/vango-dev/vango/v2"
	. "github.com/vango-dev/vango/v2/el"
	"github.com/vango-dev/vango/v2/pkg/vdom"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/app/components/docs"
	"github.com/nephio-oran/docsite/internal/i18n"
)

// CompatibilityPage shows the full support statement. The panel is
// loaded lazily; the layout stays responsive behind the skeleton.
func CompatibilityPage(ctx vango.Ctx, loc language.Tag) *vango.VNode {
	return Div(Class("space-y-6"),
		P(Class("text-sm text-gray-500 dark:text-gray-400"),
			Text(i18n.Lookup(loc, "compat.lazy.note"))),
		docs.Lazy(loc, func() (*vdom.VNode, error) {
			return docs.SupportStatement(loc, docs.DensityFull, true)
		}),
	)
}

// CompatibilityPageStatic renders the statement eagerly. Static output
// has no live session behind it, so a deferred load would freeze the
// page on its placeholder forever.
func CompatibilityPageStatic(ctx vango.Ctx, loc language.Tag) *vango.VNode {
	return Div(Class("space-y-6"),
		docs.MustSupportStatement(loc, docs.DensityFull, true),
	)
}
