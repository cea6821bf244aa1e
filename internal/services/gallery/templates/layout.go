package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/i18n"
	"github.com/louisbranch/character-gallery/internal/services/gallery/routepath"
)

// LayoutView carries the page shell inputs.
type LayoutView struct {
	Title string
	Copy  i18n.Copy
}

// ComposePageTitle appends the site name unless title already is it.
func ComposePageTitle(title string, siteName string) string {
	title = strings.TrimSpace(title)
	if title == "" || title == siteName {
		return siteName
	}
	return title + " | " + siteName
}

// Layout renders the HTML document around the children on the context.
func Layout(v LayoutView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		lang := v.Copy.Lang
		if lang == "" {
			lang = "en-US"
		}
		m.raw("<!DOCTYPE html><html")
		m.attr("lang", lang)
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		m.text(ComposePageTitle(v.Title, v.Copy.PageTitle))
		m.raw(`</title><link rel="stylesheet"`)
		m.href(routepath.Static("gallery.css"))
		m.raw("></head><body>")
		m.render(ctx, Header(v.Copy))
		m.raw(`<main class="cg-main">`)
		m.render(ctx, templ.GetChildren(ctx))
		m.raw("</main></body></html>")
		return m.err
	})
}

// Header renders the site header with the gallery and submission links.
func Header(ui i18n.Copy) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<header class="cg-header"><span><a`)
		m.href(routepath.Root)
		m.raw("><strong>")
		m.text(ui.SiteTitle)
		m.raw(`</strong></a></span><a class="cg-submit"`)
		m.href(routepath.Submit)
		m.raw(">")
		m.text(ui.SubmitCharacter)
		m.raw("</a></header>")
		return m.err
	})
}
