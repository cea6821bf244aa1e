// Package pagerender centralizes full-page rendering for gallery handlers.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/httpx"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/i18n"
	"github.com/louisbranch/character-gallery/internal/services/gallery/templates"
)

// Page describes one page response.
type Page struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage writes page inside the shared layout. The status defaults to 200.
func WritePage(w http.ResponseWriter, r *http.Request, ui i18n.Copy, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return templates.Layout(templates.LayoutView{Title: page.Title, Copy: ui}).Render(ctx, w)
}
