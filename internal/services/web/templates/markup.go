package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup accumulates the first write error so component bodies read as a
// straight sequence of writes.
type markup struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newMarkup(ctx context.Context, w io.Writer) *markup {
	return &markup{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// text writes escaped character data.
func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// href writes a sanitized href attribute.
func (m *markup) href(url string) {
	m.attr("href", string(templ.URL(url)))
}

// external writes the attributes shared by every outbound link.
func (m *markup) external(url string) {
	m.href(url)
	m.raw(` target="_blank" rel="noopener noreferrer"`)
}

// component renders c in place.
func (m *markup) component(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

func (m *markup) done() error {
	return m.err
}

// group renders components one after another.
func group(parts ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(ctx, w)
		for _, p := range parts {
			m.component(p)
		}
		return m.done()
	})
}
