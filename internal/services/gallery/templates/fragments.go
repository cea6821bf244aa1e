package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"github.com/louisbranch/character-gallery/internal/services/gallery/integration/characterapi"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/i18n"
	"github.com/louisbranch/character-gallery/internal/services/gallery/routepath"
	"github.com/louisbranch/character-gallery/internal/services/gallery/view"
)

// GalleryView carries the gallery page state and presentation inputs.
type GalleryView struct {
	State     view.GalleryState
	Copy      i18n.Copy
	Portraits PortraitResolver
}

// GalleryFragment renders the listing for every gallery state.
func GalleryFragment(v GalleryView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		state := v.State
		switch state.Status {
		case view.StatusLoading:
			m.element("p", "cg-loading", v.Copy.Loading)
			return m.err
		case view.StatusFailed:
			m.element("p", "cg-empty", v.Copy.Empty)
			m.raw(`<p class="cg-notice" role="alert" data-notice="load-failed">`)
			m.text(v.Copy.LoadFailed)
			m.raw("</p>")
			return m.err
		}

		if state.Stale {
			staleNotice(m, v.Copy)
		}
		if len(state.Characters) == 0 {
			m.element("p", "cg-empty", v.Copy.Empty)
		} else {
			m.raw(`<ul class="cg-grid">`)
			for i := range state.Characters {
				record := state.Characters[i]
				m.raw("<li><a")
				m.href(routepath.Character(record.ID))
				m.raw(">")
				m.render(ctx, CharacterCard(CardView{Character: &record, Copy: v.Copy, Portraits: v.Portraits}))
				m.raw("</a></li>")
			}
			m.raw("</ul>")
		}
		pager(m, state.Page, state.Pagination, v.Copy)
		return m.err
	})
}

// DetailView carries the detail page state and presentation inputs.
type DetailView struct {
	State     view.DetailState
	Copy      i18n.Copy
	Portraits PortraitResolver
}

// DetailFragment renders the single-card page for every detail state.
func DetailFragment(v DetailView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		switch v.State.Status {
		case view.StatusLoaded:
			if v.State.Stale {
				staleNotice(m, v.Copy)
			}
			m.render(ctx, CharacterCard(CardView{Character: v.State.Character, Copy: v.Copy, Portraits: v.Portraits}))
		case view.StatusNotFound:
			m.render(ctx, CharacterCard(CardView{Copy: v.Copy}))
		case view.StatusFailed:
			m.raw(`<p class="cg-notice" role="alert" data-notice="load-failed">`)
			m.text(v.Copy.DetailLoadFailed)
			m.raw("</p>")
		default:
			m.element("p", "cg-loading", v.Copy.Loading)
		}
		m.raw(`<p class="cg-back"><a`)
		m.href(routepath.Root)
		m.raw(">")
		m.text(v.Copy.BackToGallery)
		m.raw("</a></p>")
		return m.err
	})
}

// ErrorView describes an application error page body.
type ErrorView struct {
	StatusCode int
	Title      string
	Message    string
	Copy       i18n.Copy
}

// ErrorFragment renders an error heading, message and a link home.
func ErrorFragment(v ErrorView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<section class="cg-error"`)
		m.attr("data-status", strconv.Itoa(v.StatusCode))
		m.raw(">")
		m.element("h1", "", v.Title)
		if v.Message != "" {
			m.element("p", "", v.Message)
		}
		m.raw("<p><a")
		m.href(routepath.Root)
		m.raw(">")
		m.text(v.Copy.BackToGallery)
		m.raw("</a></p></section>")
		return m.err
	})
}

func staleNotice(m *markup, ui i18n.Copy) {
	m.raw(`<p class="cg-notice" role="status" data-notice="stale">`)
	m.text(ui.StaleNotice)
	m.raw("</p>")
}

// pager renders previous and next links. Bare-array listings carry no
// pagination and render nothing.
func pager(m *markup, page int, pagination *characterapi.Pagination, ui i18n.Copy) {
	if pagination == nil {
		return
	}
	if page <= 0 && !pagination.HasNext {
		return
	}
	m.raw(`<nav class="cg-pager">`)
	if page > 0 {
		m.raw(`<a rel="prev"`)
		m.href(routepath.GalleryPage(page - 1))
		m.raw(">")
		m.text(ui.PreviousPage)
		m.raw("</a>")
	}
	m.element("span", "cg-pager__current", ui.PageIndicator(page+1))
	if pagination.HasNext {
		m.raw(`<a rel="next"`)
		m.href(routepath.GalleryPage(page + 1))
		m.raw(">")
		m.text(ui.NextPage)
		m.raw("</a>")
	}
	m.raw("</nav>")
}
