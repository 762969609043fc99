// Source: vango.dev/ui/card
// Version: 2.0.3
// Checksum: sha256:a97f30d2e55cbb04

package ui

import (
	. "github.com/vango-dev/vango/v2/pkg/vdom"
)

// CardOption configures a Card component.
type CardOption func(*cardConfig)

type cardConfig struct {
	className string
	title     string
	children  []any
}

// CardClass adds additional CSS classes to the card.
func CardClass(className string) CardOption {
	return func(c *cardConfig) {
		c.className = className
	}
}

// CardTitle sets the card heading.
func CardTitle(title string) CardOption {
	return func(c *cardConfig) {
		c.title = title
	}
}

// CardChildren sets the card body content.
func CardChildren(children ...any) CardOption {
	return func(c *cardConfig) {
		c.children = children
	}
}

// Card renders a bordered content card with an optional heading.
func Card(opts ...CardOption) *VNode {
	cfg := cardConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := CN(
		"rounded-lg border border-gray-200 dark:border-gray-700 bg-white dark:bg-gray-800 p-6 shadow-sm",
		cfg.className,
	)

	attrs := []any{Class(classes)}
	if cfg.title != "" {
		attrs = append(attrs, H3(Class("text-lg font-semibold mb-2"), Text(cfg.title)))
	}
	attrs = append(attrs, cfg.children...)

	return Div(attrs...)
}
