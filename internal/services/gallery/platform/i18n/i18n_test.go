package i18n

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/text/language"

	"github.com/louisbranch/character-gallery/internal/character"
)

func TestResolveTagOrder(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		target      string
		cookie      string
		accept      string
		want        language.Tag
		wantPersist bool
	}{
		{name: "default", target: "/", want: language.AmericanEnglish},
		{name: "query wins", target: "/?lang=es", cookie: "en-US", accept: "en", want: language.Spanish, wantPersist: true},
		{name: "regional query", target: "/?lang=es-MX", want: language.Spanish, wantPersist: true},
		{name: "cookie before header", target: "/", cookie: "es", accept: "en-US", want: language.Spanish},
		{name: "accept language", target: "/", accept: "fr;q=0.9, es;q=0.8", want: language.Spanish},
		{name: "unsupported query ignored", target: "/?lang=zz-invalid!", accept: "es", want: language.Spanish},
		{name: "unsupported header", target: "/", accept: "ja", want: language.AmericanEnglish},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest(http.MethodGet, tc.target, nil)
			if tc.cookie != "" {
				req.AddCookie(&http.Cookie{Name: LangCookieName, Value: tc.cookie})
			}
			if tc.accept != "" {
				req.Header.Set("Accept-Language", tc.accept)
			}
			got, persist := ResolveTag(req)
			if got != tc.want {
				t.Fatalf("ResolveTag() = %q, want %q", got, tc.want)
			}
			if persist != tc.wantPersist {
				t.Fatalf("persist = %v, want %v", persist, tc.wantPersist)
			}
		})
	}
}

func TestResolveTagNilRequest(t *testing.T) {
	t.Parallel()
	if got, _ := ResolveTag(nil); got != Default() {
		t.Fatalf("ResolveTag(nil) = %q, want %q", got, Default())
	}
}

func TestSetLanguageCookie(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	SetLanguageCookie(rec, language.Spanish)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	if cookies[0].Name != LangCookieName || cookies[0].Value != "es" {
		t.Fatalf("cookie = %s=%s, want %s=es", cookies[0].Name, cookies[0].Value, LangCookieName)
	}
}

func TestGalleryCopyEnglish(t *testing.T) {
	t.Parallel()
	c := Gallery(language.AmericanEnglish)
	if c.SiteTitle != "CHARACTER GALLERY" {
		t.Fatalf("SiteTitle = %q, want %q", c.SiteTitle, "CHARACTER GALLERY")
	}
	if c.SubmitCharacter != "Submit Character" {
		t.Fatalf("SubmitCharacter = %q, want %q", c.SubmitCharacter, "Submit Character")
	}
	if c.NotFound != "Character not found" {
		t.Fatalf("NotFound = %q, want %q", c.NotFound, "Character not found")
	}
	if c.Empty != "No characters found" {
		t.Fatalf("Empty = %q, want %q", c.Empty, "No characters found")
	}
	if got := c.IDLabel(42); got != "ID: 00000042" {
		t.Fatalf("IDLabel(42) = %q, want %q", got, "ID: 00000042")
	}
	if got := c.PageIndicator(2); got != "Page 2" {
		t.Fatalf("PageIndicator(2) = %q, want %q", got, "Page 2")
	}
	if got := c.StatLabel(character.Wisdom); got != "WIS" {
		t.Fatalf("StatLabel(wisdom) = %q, want %q", got, "WIS")
	}
}

func TestGalleryCopySpanish(t *testing.T) {
	t.Parallel()
	c := Gallery(language.MustParse("es-419"))
	if c.Lang != "es" {
		t.Fatalf("Lang = %q, want %q", c.Lang, "es")
	}
	if c.NotFound != "Personaje no encontrado" {
		t.Fatalf("NotFound = %q, want Spanish copy", c.NotFound)
	}
	if got := c.StatLabel(character.Strength); got != "FUE" {
		t.Fatalf("StatLabel(strength) = %q, want %q", got, "FUE")
	}
	if got := c.PageIndicator(3); got != "Página 3" {
		t.Fatalf("PageIndicator(3) = %q, want %q", got, "Página 3")
	}
}

func TestGalleryCopyUnsupportedFallsBackToEnglish(t *testing.T) {
	t.Parallel()
	c := Gallery(language.Japanese)
	if c.Lang != "en-US" || c.SiteTitle != "CHARACTER GALLERY" {
		t.Fatalf("copy = (%q, %q), want English", c.Lang, c.SiteTitle)
	}
}

func TestStatLabelDefaultsToAbbreviation(t *testing.T) {
	t.Parallel()
	var c Copy
	if got := c.StatLabel(character.Charisma); got != "CHA" {
		t.Fatalf("zero Copy StatLabel = %q, want %q", got, "CHA")
	}
}

func TestResolveCopyPersistsQueryChoice(t *testing.T) {
	t.Parallel()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/?lang=es", nil)
	c := ResolveCopy(rec, req)
	if c.Lang != "es" {
		t.Fatalf("Lang = %q, want %q", c.Lang, "es")
	}
	if cookies := rec.Result().Cookies(); len(cookies) != 1 || cookies[0].Value != "es" {
		t.Fatalf("cookies = %v, want one es cookie", cookies)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "es")
	ResolveCopy(rec, req)
	if cookies := rec.Result().Cookies(); len(cookies) != 0 {
		t.Fatalf("cookies = %v, want none without an explicit choice", cookies)
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	c := Gallery(language.AmericanEnglish)
	if got, ok := c.Lookup("gallery.page_not_found"); !ok || got != "Page not found" {
		t.Fatalf("Lookup() = (%q, %v), want (Page not found, true)", got, ok)
	}
	if _, ok := c.Lookup("gallery.missing"); ok {
		t.Fatal("expected missing key")
	}
}
