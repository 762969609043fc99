// Source: vango.dev/ui/separator
// Version: 2.0.3
// Checksum: sha256:4b80cbf1d2ae9c37

package ui

import (
	. "github.com/vango-dev/vango/v2/pkg/vdom"
)

// Separator renders a horizontal rule between content sections.
// The separator is decorative and hidden from assistive technology.
func Separator(classes ...string) *VNode {
	return Div(
		Class(CN(append([]string{"h-[1px] w-full shrink-0 bg-gray-200 dark:bg-gray-700 my-4"}, classes...)...)),
		Role("separator"),
		AriaHidden(true),
	)
}
