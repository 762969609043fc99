package docs

import (
	vango "github.com/vango-dev/vango/v2"
	. "github.com/vango-dev/vango/v2/pkg/vdom"
	"golang.org/x/text/language"

	"github.com/nephio-oran/docsite/app/components/ui"
	"github.com/nephio-oran/docsite/internal/i18n"
)

// LazyOption configures the deferred-content wrapper.
type LazyOption func(*lazyConfig)

type lazyConfig struct {
	placeholder *VNode
}

// LazyPlaceholder replaces the default loading indicator.
func LazyPlaceholder(node *VNode) LazyOption {
	return func(c *lazyConfig) {
		c.placeholder = node
	}
}

// Lazy defers rendering of content until its load function completes,
// showing a placeholder meanwhile. Like NewResource it is hook-like and
// must be called unconditionally during render.
//
// There is no retry policy and no local error handling: a failed load
// leaves the wrapper without a node, which surfaces through the app's
// configured error page. If the session is torn down before the load
// finishes, the resource discards the pending result and nothing further
// renders.
func Lazy(loc language.Tag, load func() (*VNode, error), opts ...LazyOption) *VNode {
	cfg := lazyConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.placeholder == nil {
		cfg.placeholder = LoadingIndicator(loc)
	}

	return lazyMatch(vango.NewResource(load), cfg.placeholder)
}

// lazyMatch maps the resource state to markup: placeholder while waiting,
// the loaded content once ready, nothing on failure.
func lazyMatch(res *vango.Resource[*VNode], placeholder *VNode) *VNode {
	return res.Match(
		vango.OnLoadingOrPending[*VNode](func() *VNode {
			return placeholder
		}),
		vango.OnReady(func(content *VNode) *VNode {
			return content
		}),
	)
}

// LoadingIndicator is the default Lazy placeholder: a skeleton block
// announced to assistive technology as a live loading status.
func LoadingIndicator(loc language.Tag) *VNode {
	return Div(
		Role("status"),
		AriaLabel(i18n.Lookup(loc, "lazy.loading")),
		AriaLive("polite"),
		AriaBusy(true),
		ui.SkeletonBlock(),
	)
}
