// Package i18n resolves the request language and exposes the localized
// gallery copy.
package i18n

import (
	"net/http"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/character-gallery/internal/platform/i18n/catalog"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "cg_lang"
)

var (
	supportedTags = []language.Tag{language.AmericanEnglish, language.Spanish}
	matcher       = language.NewMatcher(supportedTags)
)

// Supported returns the supported language tags, default first.
func Supported() []language.Tag {
	out := make([]language.Tag, len(supportedTags))
	copy(out, supportedTags)
	return out
}

// Default returns the default language tag.
func Default() language.Tag {
	return supportedTags[0]
}

// ParseTag parses value and reports whether it maps onto a supported language.
func ParseTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return language.Und, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return language.Und, false
	}
	matched, _, confidence := matcher.Match(tag)
	if confidence == language.No {
		return language.Und, false
	}
	return supportedBase(matched), true
}

// ResolveTag picks the request language from the lang query parameter,
// then the language cookie, then Accept-Language. The bool reports whether
// the query parameter chose it and should be persisted.
func ResolveTag(r *http.Request) (language.Tag, bool) {
	if r == nil {
		return Default(), false
	}
	if tag, ok := ParseTag(r.URL.Query().Get(LangParam)); ok {
		return tag, true
	}
	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if tag, ok := ParseTag(cookie.Value); ok {
			return tag, false
		}
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil && len(tags) > 0 {
			matched, _, confidence := matcher.Match(tags...)
			if confidence != language.No {
				return supportedBase(matched), false
			}
		}
	}
	return Default(), false
}

// SetLanguageCookie persists the selected language on the response.
func SetLanguageCookie(w http.ResponseWriter, tag language.Tag) {
	if w == nil {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    tag.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ResolveCopy resolves the request language, persists an explicit lang
// choice as a cookie and returns the copy for the resolved language.
func ResolveCopy(w http.ResponseWriter, r *http.Request) Copy {
	tag, persist := ResolveTag(r)
	if persist {
		SetLanguageCookie(w, tag)
	}
	return Gallery(tag)
}

// Printer returns a message printer backed by the embedded catalogs.
func Printer(tag language.Tag) *message.Printer {
	_ = catalog.Default()
	return message.NewPrinter(tag)
}

// supportedBase maps a matcher result, which may carry a -u-rg extension,
// back onto the supported tag with the same base language.
func supportedBase(tag language.Tag) language.Tag {
	base, _ := tag.Base()
	for _, supported := range supportedTags {
		if supportedBase, _ := supported.Base(); supportedBase == base {
			return supported
		}
	}
	return Default()
}
