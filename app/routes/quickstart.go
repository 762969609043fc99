package routes

import (
	"strings"

	vango "github.com/vango-dev/vango/v2"
	. "github.com/vango-dev/vango/v2/el"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/app/components/docs"
	"github.com/nephio-oran/docsite/app/components/ui"
	"github.com/nephio-oran/docsite/internal/i18n"
	"github.com/nephio-oran/docsite/internal/releases"
)

func codeBlock(cmd string) *vango.VNode {
	return Pre(Class("bg-gray-100 dark:bg-gray-800 rounded-lg p-4 overflow-x-auto text-sm"),
		Code(Text(cmd)),
	)
}

// QuickstartPage walks through installing the toolchain and deploying
// the agent packages with kpt.
func QuickstartPage(ctx vango.Ctx, loc language.Tag) *vango.VNode {
	goVersion := releases.MustResolve(releases.Runtime)
	// The registry advertises a minimum ("v1.0.0-beta.55+"); install the
	// pinned floor.
	kptVersion := strings.TrimSuffix(releases.MustResolve(releases.PackageTool), "+")

	return Div(Class("space-y-8"),
		Header(Class("space-y-3"),
			H1(Class("text-3xl font-bold"), Text(i18n.Lookup(loc, "quickstart.title"))),
			P(Class("text-gray-600 dark:text-gray-400"), Text(i18n.Lookup(loc, "quickstart.intro"))),
			P(Class("text-sm text-gray-600 dark:text-gray-400"),
				Textf(i18n.Lookup(loc, "quickstart.require"), goVersion, kptVersion)),
		),
		ui.Card(
			ui.CardTitle("1. kpt"),
			ui.CardChildren(
				codeBlock("go install github.com/kptdev/kpt@"+kptVersion+"\nkpt version"),
			),
		),
		ui.Card(
			ui.CardTitle("2. Packages"),
			ui.CardChildren(
				codeBlock("kpt pkg get https://github.com/nephio-oran/agents.git/packages/orchestration@main agents"),
			),
		),
		ui.Card(
			ui.CardTitle("3. Deploy"),
			ui.CardChildren(
				codeBlock("kpt live init agents\nkpt live apply agents --reconcile-timeout=5m"),
				P(Class("text-sm text-gray-600 dark:text-gray-400 mt-3"),
					Text(i18n.Lookup(loc, "quickstart.verify"))),
				codeBlock("kubectl get packagerevisions -n nephio-system"),
			),
		),
		Section(Class("pt-4"),
			docs.MustSupportStatement(loc, docs.DensityCompact, false),
		),
	)
}
