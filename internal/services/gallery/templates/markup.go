package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// markup writes HTML and keeps the first write error.
type markup struct {
	w   io.Writer
	err error
}

func newMarkup(w io.Writer) *markup {
	return &markup{w: w}
}

// raw writes trusted markup.
func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// text writes s HTML-escaped.
func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// attr writes name="value" with a leading space.
func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

// href writes a sanitized href attribute.
func (m *markup) href(target string) {
	m.attr("href", string(templ.URL(target)))
}

func (m *markup) element(tag, class, content string) {
	m.raw("<" + tag)
	if class != "" {
		m.attr("class", class)
	}
	m.raw(">")
	m.text(content)
	m.raw("</" + tag + ">")
}

// render writes a nested component.
func (m *markup) render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}
