package pagerender

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/text/language"

	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/i18n"
)

func TestWritePageDefaultsStatusAndRendersFragment(t *testing.T) {
	t.Parallel()
	fragment := templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<p class="fragment">body</p>`)
		return err
	})
	rec := httptest.NewRecorder()
	err := WritePage(rec, httptest.NewRequest(http.MethodGet, "/", nil), i18n.Gallery(language.AmericanEnglish), Page{
		Title:    "Gallery",
		Fragment: fragment,
	})
	if err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `<p class="fragment">body</p>`) {
		t.Fatalf("body missing fragment: %s", body)
	}
	if !strings.HasPrefix(body, "<!DOCTYPE html>") {
		t.Fatalf("body should start with doctype: %s", body)
	}
}

func TestWritePageNilFragmentAndStatus(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	if err := WritePage(rec, nil, i18n.Gallery(language.Spanish), Page{StatusCode: http.StatusBadGateway}); err != nil {
		t.Fatalf("WritePage() error = %v", err)
	}
	if rec.Code != http.StatusBadGateway {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadGateway)
	}
	if !strings.Contains(rec.Body.String(), `lang="es"`) {
		t.Fatalf("body missing Spanish lang attribute: %s", rec.Body.String())
	}
	if err := WritePage(nil, nil, i18n.Copy{}, Page{}); err != nil {
		t.Fatalf("WritePage(nil writer) = %v, want nil", err)
	}
}
