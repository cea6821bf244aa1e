// Package weberror renders app-shell error pages for gallery handlers.
package weberror

import (
	"net/http"
	"strings"

	apperrors "github.com/louisbranch/character-gallery/internal/services/gallery/platform/errors"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/i18n"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/pagerender"
	"github.com/louisbranch/character-gallery/internal/services/gallery/templates"
)

// ShouldRenderAppError reports whether status should use the error page.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized message for err.
func PublicMessage(ui i18n.Copy, err error) string {
	if err == nil {
		return ""
	}
	if key := apperrors.LocalizationKey(err); key != "" {
		if localized, ok := ui.Lookup(key); ok && strings.TrimSpace(localized) != "" {
			return localized
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return http.StatusText(http.StatusInternalServerError)
}

// WriteAppError writes the error page for err with its mapped status.
func WriteAppError(w http.ResponseWriter, r *http.Request, ui i18n.Copy, err error) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	title := ui.ServerError
	if statusCode == http.StatusNotFound {
		title = ui.PageNotFound
	}
	fragment := templates.ErrorFragment(templates.ErrorView{
		StatusCode: statusCode,
		Title:      title,
		Message:    PublicMessage(ui, err),
		Copy:       ui,
	})
	if renderErr := pagerender.WritePage(w, r, ui, pagerender.Page{
		Title:      title,
		StatusCode: statusCode,
		Fragment:   fragment,
	}); renderErr != nil {
		http.Error(w, PublicMessage(ui, err), statusCode)
	}
}

// WriteNotFound writes the app 404 page.
func WriteNotFound(w http.ResponseWriter, r *http.Request, ui i18n.Copy) {
	WriteAppError(w, r, ui, apperrors.EK(apperrors.KindNotFound, "gallery.page_not_found_body", "page not found"))
}
