package icons

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const lucideSymbolPrefix = "lucide-"

var lucideIconNames = map[ID]string{
	Check:      "circle-check",
	ArrowRight: "arrow-right",
}

// lucideSprite holds one symbol per mapped glyph.
const lucideSprite = `<svg xmlns="http://www.w3.org/2000/svg" style="display:none" aria-hidden="true">` +
	`<symbol id="lucide-circle-check" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/></symbol>` +
	`<symbol id="lucide-arrow-right" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round"><path d="M5 12h14"/><path d="m12 5 7 7-7 7"/></symbol>` +
	`</svg>`

// LucideName returns the Lucide icon name for a glyph.
func LucideName(id ID) (string, bool) {
	name, ok := lucideIconNames[id]
	return name, ok
}

// LucideNameOrDefault provides a stable Lucide name even when the glyph is unknown.
func LucideNameOrDefault(id ID) string {
	if name, ok := lucideIconNames[id]; ok {
		return name
	}
	return "circle-check"
}

// LucideSymbolID returns the sprite symbol ID for a Lucide icon name.
func LucideSymbolID(name string) string {
	return lucideSymbolPrefix + name
}

// LucideSprite returns the SVG sprite markup for the mapped glyphs.
func LucideSprite() string {
	return lucideSprite
}

// Sprite renders the sprite as a component.
func Sprite() templ.Component {
	return templ.Raw(lucideSprite)
}

// Glyph renders a reference to a sprite symbol.
func Glyph(id ID, class string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<svg class="`+templ.EscapeString(class)+`" aria-hidden="true"><use href="#`+templ.EscapeString(LucideSymbolID(LucideNameOrDefault(id)))+`"></use></svg>`)
		return err
	})
}
