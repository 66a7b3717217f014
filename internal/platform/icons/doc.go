// Package icons renders the page's fixed vector marks.
//
// Brand marks (the lightbulb logo and the social glyph) are produced from a
// color and size configuration. Interface glyphs come from a Lucide sprite and
// are referenced by symbol id so each page embeds their paths once.
package icons
