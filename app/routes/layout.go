package routes

import (
	vango "github.com/vango-dev/vango/v2"
	. "github.com/vango-dev/vango/v2/el"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/app/components/shared"
	"github.com/nephio-oran/docsite/internal/i18n"
)

func langAttr(loc language.Tag) string {
	if loc == language.TraditionalChinese {
		return "zh-TW"
	}
	return "en"
}

// Layout wraps every page in the shared document shell for one locale.
func Layout(ctx vango.Ctx, loc language.Tag, children vango.Slot) *vango.VNode {
	return Html(Lang(langAttr(loc)), Class(""),
		Head(
			Meta(Charset("utf-8")),
			Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
			Meta(Name("color-scheme"), Content("light dark")),
			Meta(Name("description"), Content(i18n.Lookup(loc, "site.tagline"))),
			Title(Text(i18n.Lookup(loc, "site.title"))),
			LinkEl(Rel("stylesheet"), Href(ctx.Asset("styles.css"))),
			// Theme initialization - runs before page renders to prevent flash
			Script(Raw(`(function(){var t=localStorage.getItem('theme');if(t==='dark'||(!t&&window.matchMedia('(prefers-color-scheme:dark)').matches)){document.documentElement.classList.add('dark')}})();`)),
		),
		Body(Class("bg-white dark:bg-[#091D39] text-gray-900 dark:text-white min-h-screen transition-colors"),
			shared.Navbar(loc, ctx.Path()),
			Main(Class("max-w-5xl mx-auto px-5 py-8"), children),
			shared.AppFooter(loc),
			// Theme toggle script - attaches click handler
			Script(Raw(`document.getElementById('theme-toggle').onclick=function(){document.documentElement.classList.toggle('dark');localStorage.setItem('theme',document.documentElement.classList.contains('dark')?'dark':'light')};`)),
			VangoScripts(),
		),
	)
}
