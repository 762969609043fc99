// Source: vango.dev/ui/skeleton
// Version: 2.0.3
// Checksum: sha256:6c1f9be20a4d83f1

package ui

import (
	. "github.com/vango-dev/vango/v2/pkg/vdom"
)

// SkeletonOption configures a Skeleton component.
type SkeletonOption func(*skeletonConfig)

type skeletonConfig struct {
	className string
}

// SkeletonClass adds additional CSS classes.
func SkeletonClass(className string) SkeletonOption {
	return func(c *skeletonConfig) {
		c.className = className
	}
}

// Skeleton renders a loading skeleton placeholder.
func Skeleton(opts ...SkeletonOption) *VNode {
	cfg := skeletonConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	classes := CN(
		"animate-pulse rounded-md bg-gray-200 dark:bg-gray-700",
		cfg.className,
	)

	return Div(Class(classes), AriaHidden(true))
}

// SkeletonText renders a text-sized skeleton line.
func SkeletonText(opts ...SkeletonOption) *VNode {
	return Skeleton(append(opts, SkeletonClass("h-4 w-full"))...)
}

// SkeletonTitle renders a title-sized skeleton line.
func SkeletonTitle(opts ...SkeletonOption) *VNode {
	return Skeleton(append(opts, SkeletonClass("h-6 w-3/4"))...)
}

// SkeletonBlock renders the placeholder used for deferred page sections:
// a title line followed by three text lines.
func SkeletonBlock() *VNode {
	return Div(
		Class("space-y-3"),
		SkeletonTitle(),
		SkeletonText(),
		SkeletonText(),
		SkeletonText(SkeletonClass("w-2/3")),
	)
}
