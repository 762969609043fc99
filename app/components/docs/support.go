package docs

import (
	"fmt"

	. "github.com/vango-dev/vango/v2/pkg/vdom"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/app/components/ui"
	"github.com/nephio-oran/docsite/internal/i18n"
	"github.com/nephio-oran/docsite/internal/releases"
)

// Density selects how verbose the support statement is.
type Density int

const (
	// DensityFull renders title, intro, per-badge descriptions and the
	// two policy notes.
	DensityFull Density = iota
	// DensityCompact renders a short title plus the badge row.
	DensityCompact
	// DensityBadgesOnly renders the badge row alone, at small size.
	DensityBadgesOnly

	numDensities // sentinel, keep last
)

func (d Density) String() string {
	switch d {
	case DensityFull:
		return "full"
	case DensityCompact:
		return "compact"
	case DensityBadgesOnly:
		return "badges-only"
	default:
		return fmt.Sprintf("density(%d)", int(d))
	}
}

// supportedComponents fixes which dependencies the statement certifies and
// the order they appear in.
var supportedComponents = [...]releases.ComponentKey{
	releases.ORANSpec,
	releases.Runtime,
	releases.OrchestratorPlatform,
	releases.PackageTool,
}

// descriptionKeys maps each certified component to its i18n message.
var descriptionKeys = map[releases.ComponentKey]string{
	releases.ORANSpec:             "support.desc.oran",
	releases.Runtime:              "support.desc.go",
	releases.OrchestratorPlatform: "support.desc.nephio",
	releases.PackageTool:          "support.desc.kpt",
}

// SupportStatementView is the resolved view-model of the panel. It is
// constructed per render and carries no identity beyond its value.
type SupportStatementView struct {
	Title string
	Intro string

	// Badges holds one entry per certified component, in fixed order.
	Badges []RenderedBadge

	// Descriptions parallels Badges; populated only at full density.
	Descriptions []string

	// PolicyNotes holds the compatibility caveat and the support-window
	// statement; populated only at full density.
	PolicyNotes []string

	// LastUpdated is the build-time revision date, or empty when the
	// marker was not requested.
	LastUpdated string
}

// supportRequests returns the badge requests for the given density.
func supportRequests(density Density) []BadgeRequest {
	size := SizeMedium
	if density == DensityBadgesOnly {
		size = SizeSmall
	}
	reqs := make([]BadgeRequest, 0, len(supportedComponents))
	for _, key := range supportedComponents {
		req := NewBadgeRequest(key)
		req.Size = size
		reqs = append(reqs, req)
	}
	return reqs
}

// ResolveSupportStatement builds the view-model for the panel. Pure: the
// same inputs always produce the same view, including LastUpdated, which
// comes from build-time configuration rather than the clock.
func ResolveSupportStatement(loc language.Tag, density Density, showLastUpdated bool) (SupportStatementView, error) {
	if density < 0 || density >= numDensities {
		return SupportStatementView{}, &InvalidVariantError{Value: density.String()}
	}

	var view SupportStatementView
	for _, req := range supportRequests(density) {
		badge, err := ResolveBadge(req)
		if err != nil {
			return SupportStatementView{}, err
		}
		view.Badges = append(view.Badges, badge)
	}

	switch density {
	case DensityBadgesOnly:
		// Badge row only, no text of any kind.
	case DensityCompact:
		view.Title = i18n.Lookup(loc, "support.title")
	case DensityFull:
		view.Title = i18n.Lookup(loc, "support.title")
		view.Intro = i18n.Lookup(loc, "support.intro")
		for _, key := range supportedComponents {
			view.Descriptions = append(view.Descriptions, i18n.Lookup(loc, descriptionKeys[key]))
		}
		view.PolicyNotes = []string{
			i18n.Lookup(loc, "support.note.compat"),
			i18n.Lookup(loc, "support.note.window"),
		}
	}

	if showLastUpdated {
		view.LastUpdated = releases.LastUpdated
	}
	return view, nil
}

// SupportStatement renders the certified-versions panel at the requested
// density.
func SupportStatement(loc language.Tag, density Density, showLastUpdated bool) (*VNode, error) {
	view, err := ResolveSupportStatement(loc, density, showLastUpdated)
	if err != nil {
		return nil, err
	}

	reqs := supportRequests(density)
	badgeRow := make([]any, 0, len(reqs)+1)
	badgeRow = append(badgeRow, Class("flex flex-wrap items-center gap-2"))
	for _, req := range reqs {
		node, err := Badge(req)
		if err != nil {
			return nil, err
		}
		badgeRow = append(badgeRow, node)
	}

	args := []any{
		Class("space-y-4"),
		Data("density", density.String()),
	}
	if view.Title != "" {
		args = append(args, H2(Class("text-xl font-bold"), Text(view.Title)))
	}
	if view.Intro != "" {
		args = append(args, P(Class("text-gray-600 dark:text-gray-400"), Text(view.Intro)))
	}

	if density == DensityFull {
		// At full density each badge is paired with its description.
		pairs := make([]any, 0, len(reqs)+1)
		pairs = append(pairs, Class("space-y-3"))
		for i, req := range reqs {
			node, err := Badge(req)
			if err != nil {
				return nil, err
			}
			pairs = append(pairs, Div(
				Class("flex flex-wrap items-center gap-3"),
				node,
				P(Class("text-sm text-gray-600 dark:text-gray-400"), Text(view.Descriptions[i])),
			))
		}
		args = append(args, Div(pairs...))

		args = append(args, ui.Separator())
		for _, note := range view.PolicyNotes {
			args = append(args, P(Class("text-sm text-gray-500 dark:text-gray-400"), Text(note)))
		}
	} else {
		args = append(args, Div(badgeRow...))
	}

	if view.LastUpdated != "" {
		args = append(args, P(
			Class("text-xs text-gray-400"),
			Textf("%s: %s", i18n.Lookup(loc, "support.last.updated"), view.LastUpdated),
		))
	}

	return Section(args...), nil
}

// MustSupportStatement is SupportStatement for compile-time constant
// densities; it panics on resolve errors.
func MustSupportStatement(loc language.Tag, density Density, showLastUpdated bool) *VNode {
	node, err := SupportStatement(loc, density, showLastUpdated)
	if err != nil {
		panic(err)
	}
	return node
}
