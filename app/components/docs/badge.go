// Package docs contains the documentation-site components: version badges,
// the support statement panel, and the deferred-content wrapper. The
// resolve functions are pure; the VNode builders wrap them in markup.
package docs

import (
	"fmt"

	. "github.com/vango-dev/vango/v2/pkg/vdom"

	"github.com/nephio-oran/docsite/app/components/ui"
	"github.com/nephio-oran/docsite/internal/releases"
)

// Variant selects the visual treatment of a badge. It never affects the
// resolved version value.
type Variant int

const (
	VariantDefault Variant = iota
	VariantOutline
	VariantMinimal

	numVariants // sentinel, keep last
)

func (v Variant) String() string {
	switch v {
	case VariantDefault:
		return "default"
	case VariantOutline:
		return "outline"
	case VariantMinimal:
		return "minimal"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Size selects the badge dimensions.
type Size int

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge

	numSizes // sentinel, keep last
)

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	default:
		return fmt.Sprintf("size(%d)", int(s))
	}
}

// InvalidVariantError reports a display mode outside its closed
// enumeration. Like an unknown component key, it is an authoring defect
// that should fail the documentation build, not fall back silently.
type InvalidVariantError struct {
	Value string
}

func (e *InvalidVariantError) Error() string {
	return fmt.Sprintf("docs: invalid display variant %q", e.Value)
}

// BadgeRequest describes one badge render. Construct it with
// NewBadgeRequest and adjust fields as needed; requests are transient and
// never retained across renders.
type BadgeRequest struct {
	Key releases.ComponentKey

	// VersionOverride, when non-empty, is shown verbatim in place of the
	// registry value. Override always wins.
	VersionOverride string

	Variant  Variant
	Size     Size
	ShowIcon bool
}

// NewBadgeRequest returns a request with the display defaults: default
// variant, medium size, icon shown.
func NewBadgeRequest(key releases.ComponentKey) BadgeRequest {
	return BadgeRequest{
		Key:      key,
		Variant:  VariantDefault,
		Size:     SizeMedium,
		ShowIcon: true,
	}
}

// RenderedBadge is the pure output of resolving a BadgeRequest. Icon is
// empty when the request suppressed it; consumers must not emit an icon
// slot for an empty value.
type RenderedBadge struct {
	Label   string
	Version string
	Icon    string
}

// ResolveBadge resolves a request against the release registry. It has no
// side effects: the same request always yields the same badge.
func ResolveBadge(req BadgeRequest) (RenderedBadge, error) {
	if req.Variant < 0 || req.Variant >= numVariants {
		return RenderedBadge{}, &InvalidVariantError{Value: req.Variant.String()}
	}
	if req.Size < 0 || req.Size >= numSizes {
		return RenderedBadge{}, &InvalidVariantError{Value: req.Size.String()}
	}

	entry, err := releases.Get(req.Key)
	if err != nil {
		return RenderedBadge{}, err
	}

	badge := RenderedBadge{
		Label:   entry.Label,
		Version: entry.Version,
	}
	if req.VersionOverride != "" {
		badge.Version = req.VersionOverride
	}
	if req.ShowIcon {
		badge.Icon = entry.Icon
	}
	return badge, nil
}

var badgeVariantClasses = map[Variant]string{
	VariantDefault: "border-transparent bg-blue-600 text-white",
	VariantOutline: "border-gray-300 dark:border-gray-600 text-gray-900 dark:text-gray-100",
	VariantMinimal: "border-transparent bg-transparent text-gray-600 dark:text-gray-300",
}

var badgeSizeClasses = map[Size]string{
	SizeSmall:  "px-2 py-0.5 text-xs",
	SizeMedium: "px-2.5 py-0.5 text-sm",
	SizeLarge:  "px-3 py-1 text-base",
}

// Badge renders a version badge: icon, component name, version string.
func Badge(req BadgeRequest) (*VNode, error) {
	badge, err := ResolveBadge(req)
	if err != nil {
		return nil, err
	}

	args := []any{
		Class(ui.CN(
			"inline-flex items-center gap-1 rounded-full border font-semibold whitespace-nowrap",
			badgeVariantClasses[req.Variant],
			badgeSizeClasses[req.Size],
		)),
		Data("component", req.Key.String()),
		TitleAttr(badge.Label + " " + badge.Version),
	}
	if badge.Icon != "" {
		args = append(args, Span(AriaHidden(true), Text(badge.Icon)))
	}
	args = append(args,
		Span(Class("font-semibold"), Text(badge.Label)),
		Span(Class("font-normal opacity-90"), Text(badge.Version)),
	)

	return Span(args...), nil
}

// MustBadge is Badge for requests whose key is a compile-time constant.
// It panics on resolve errors, which are programming mistakes there.
func MustBadge(req BadgeRequest) *VNode {
	node, err := Badge(req)
	if err != nil {
		panic(err)
	}
	return node
}
