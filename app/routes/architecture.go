package routes

import (
	vango "github.com/vango-dev/vango/v2"
	. "github.com/vango-dev/vango/v2/el"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/app/components/ui"
	"github.com/nephio-oran/docsite/internal/i18n"
)

// architectureLayers lists the O-RAN layers the agents operate across,
// top of the stack first.
var architectureLayers = []struct {
	name string
	key  string
}{
	{"SMO", "arch.smo"},
	{"RIC", "arch.ric"},
	{"O-Cloud", "arch.cloud"},
	{"Network Functions", "arch.nf"},
}

// ArchitecturePage describes where the orchestration agents sit in the
// O-RAN stack.
func ArchitecturePage(ctx vango.Ctx, loc language.Tag) *vango.VNode {
	cards := make([]any, 0, len(architectureLayers)+1)
	cards = append(cards, Class("space-y-4"))
	for _, layer := range architectureLayers {
		cards = append(cards, ui.Card(
			ui.CardTitle(layer.name),
			ui.CardChildren(
				P(Class("text-gray-600 dark:text-gray-400"),
					Text(i18n.Lookup(loc, layer.key))),
			),
		))
	}

	return Div(Class("space-y-8"),
		Header(Class("space-y-3"),
			H1(Class("text-3xl font-bold"), Text(i18n.Lookup(loc, "arch.title"))),
			P(Class("text-gray-600 dark:text-gray-400"), Text(i18n.Lookup(loc, "arch.intro"))),
		),
		Section(cards...),
	)
}
