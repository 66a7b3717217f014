package icons

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"
)

// DefaultColor is used when a mark is configured without a color.
const DefaultColor = "currentColor"

// MarkOptions configures a brand mark.
type MarkOptions struct {
	// Color fills and strokes the mark.
	Color string
	// Size sets width in CSS pixels; zero leaves sizing to Class.
	Size int
	// Class is applied to the root svg element.
	Class string
	// Label, when set, exposes the mark to assistive technology.
	Label string
}

func (o MarkOptions) color() string {
	if c := strings.TrimSpace(o.Color); c != "" {
		return c
	}
	return DefaultColor
}

// LogoSVG renders the lightbulb-and-circuit logo.
func LogoSVG(opts MarkOptions) string {
	c := templ.EscapeString(opts.color())
	var b strings.Builder
	b.WriteString(`<svg viewBox="0 0 100 120" fill="none" xmlns="http://www.w3.org/2000/svg"`)
	writeFrame(&b, opts, 100, 120)
	b.WriteString(`>`)
	b.WriteString(`<path d="M50 10C33.4315 10 20 23.4315 20 40C20 52.3245 27.4355 62.9065 38 67.485V80H62V67.485C72.5645 62.9065 80 52.3245 80 40C80 23.4315 66.5685 10 50 10Z" stroke="` + c + `" stroke-width="4" stroke-linecap="round" stroke-linejoin="round"/>`)
	b.WriteString(`<path d="M42 86H58" stroke="` + c + `" stroke-width="4" stroke-linecap="round"/>`)
	b.WriteString(`<path d="M45 92H55" stroke="` + c + `" stroke-width="4" stroke-linecap="round"/>`)
	b.WriteString(`<rect x="44" y="42" width="12" height="12" rx="2" stroke="` + c + `" stroke-width="3"/>`)
	b.WriteString(`<path d="M50 42V25" stroke="` + c + `" stroke-width="3" stroke-linecap="round"/>`)
	b.WriteString(`<circle cx="50" cy="22" r="3" fill="` + c + `"/>`)
	b.WriteString(`<path d="M44 45L35 32" stroke="` + c + `" stroke-width="3" stroke-linecap="round"/>`)
	b.WriteString(`<circle cx="33" cy="30" r="3" fill="` + c + `"/>`)
	b.WriteString(`<path d="M56 45L65 32" stroke="` + c + `" stroke-width="3" stroke-linecap="round"/>`)
	b.WriteString(`<circle cx="67" cy="30" r="3" fill="` + c + `"/>`)
	b.WriteString(`</svg>`)
	return b.String()
}

const socialGlyphPath = "M448 209.91a210.06 210.06 0 0 1-122.77-39.25v178.72A162.55 162.55 0 1 1 185 188.31v89.89a74.62 74.62 0 1 0 52.23 71.18V0h88a121.18 121.18 0 0 0 1.86 22.17A122.18 122.18 0 0 0 381 102.39a121.43 121.43 0 0 0 67 20.14z"

// SocialSVG renders the social-profile glyph with its offset color layers.
// Color tints the front layer.
func SocialSVG(opts MarkOptions) string {
	front := "#fff"
	if strings.TrimSpace(opts.Color) != "" {
		front = opts.Color
	}
	var b strings.Builder
	b.WriteString(`<svg viewBox="0 0 448 512" xmlns="http://www.w3.org/2000/svg"`)
	writeFrame(&b, opts, 448, 512)
	b.WriteString(`>`)
	b.WriteString(`<path fill="#ff0050" d="` + socialGlyphPath + `" transform="translate(4, 4)"/>`)
	b.WriteString(`<path fill="#00f2ea" d="` + socialGlyphPath + `" transform="translate(-4, -4)"/>`)
	b.WriteString(`<path fill="` + templ.EscapeString(front) + `" d="` + socialGlyphPath + `"/>`)
	b.WriteString(`</svg>`)
	return b.String()
}

func writeFrame(b *strings.Builder, opts MarkOptions, viewW, viewH int) {
	if class := strings.TrimSpace(opts.Class); class != "" {
		b.WriteString(` class="` + templ.EscapeString(class) + `"`)
	}
	if opts.Size > 0 {
		height := opts.Size * viewH / viewW
		b.WriteString(` width="` + strconv.Itoa(opts.Size) + `" height="` + strconv.Itoa(height) + `"`)
	}
	if label := strings.TrimSpace(opts.Label); label != "" {
		b.WriteString(` role="img" aria-label="` + templ.EscapeString(label) + `"`)
	} else {
		b.WriteString(` aria-hidden="true"`)
	}
}

// Logo renders LogoSVG as a component.
func Logo(opts MarkOptions) templ.Component {
	return markComponent(LogoSVG(opts))
}

// Social renders SocialSVG as a component.
func Social(opts MarkOptions) templ.Component {
	return markComponent(SocialSVG(opts))
}

func markComponent(markup string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, markup)
		return err
	})
}
