package shared

import (
	. "github.com/vango-dev/vango/v2/el"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/internal/i18n"
)

// AppFooter renders the site footer with upstream project links.
func AppFooter(loc language.Tag) *VNode {
	return Footer(Class("border-t border-gray-200 dark:border-gray-700 mt-auto"),
		Div(Class("max-w-5xl mx-auto px-5 py-4 flex items-center justify-between text-sm text-gray-500 dark:text-gray-400"),
			Text(i18n.Lookup(loc, "footer.copyright")),
			Div(Class("flex items-center gap-4"),
				A(Href("https://nephio.org"), Target("_blank"), Rel("noopener"), Text("Nephio")),
				A(Href("https://o-ran-sc.org"), Target("_blank"), Rel("noopener"), Text("O-RAN SC")),
			),
		),
	)
}
