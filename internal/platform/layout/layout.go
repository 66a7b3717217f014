// Package layout defines the page's responsive breakpoint and the grid
// rules derived from it.
package layout

import (
	"fmt"
	"strings"
)

// Breakpoint is the viewport width in CSS pixels at which the wide layout
// begins. Widths below it use the narrow layout.
const Breakpoint = 768

const (
	// NarrowColumns is the catalog column count below Breakpoint.
	NarrowColumns = 1
	// WideColumns is the catalog column count at or above Breakpoint.
	WideColumns = 3
)

// Wide reports whether width uses the wide layout.
func Wide(width int) bool {
	return width >= Breakpoint
}

// Columns returns the catalog column count for a viewport width.
func Columns(width int) int {
	if Wide(width) {
		return WideColumns
	}
	return NarrowColumns
}

// Stacked reports whether navigation and actions stack vertically.
func Stacked(width int) bool {
	return !Wide(width)
}

// MediaWide returns the media query that selects the wide layout.
func MediaWide() string {
	return fmt.Sprintf("(min-width: %dpx)", Breakpoint)
}

// GridCSS renders the responsive column rules for selector.
func GridCSS(selector string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s { display: grid; grid-template-columns: repeat(%d, minmax(0, 1fr)); }\n", selector, NarrowColumns)
	fmt.Fprintf(&b, "@media %s {\n", MediaWide())
	fmt.Fprintf(&b, "  %s { grid-template-columns: repeat(%d, minmax(0, 1fr)); }\n", selector, WideColumns)
	b.WriteString("}\n")
	return b.String()
}

// VisibilityCSS hides narrowOnly elements in the wide layout and wideOnly
// elements in the narrow layout.
func VisibilityCSS(wideOnly, narrowOnly string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s { display: none; }\n", wideOnly)
	fmt.Fprintf(&b, "@media %s {\n", MediaWide())
	fmt.Fprintf(&b, "  %s { display: flex; }\n", wideOnly)
	fmt.Fprintf(&b, "  %s { display: none; }\n", narrowOnly)
	b.WriteString("}\n")
	return b.String()
}

// StackCSS stacks selector's children vertically in the narrow layout and
// lays them out inline in the wide layout.
func StackCSS(selector string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s { display: flex; flex-direction: column; }\n", selector)
	fmt.Fprintf(&b, "@media %s {\n", MediaWide())
	fmt.Fprintf(&b, "  %s { flex-direction: row; }\n", selector)
	b.WriteString("}\n")
	return b.String()
}
