// Package routepath stores canonical HTTP paths for gallery pages.
package routepath

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/louisbranch/character-gallery/internal/character"
)

const (
	Root             = "/"
	Health           = "/up"
	StaticPrefix     = "/static/"
	CharacterPrefix  = "/character/"
	CharacterPattern = CharacterPrefix + "{id}"
	Submit           = "/submit"
	PageQueryKey     = "page"
)

// Character returns the detail page path for id.
func Character(id character.ID) string {
	return CharacterPrefix + url.PathEscape(id.String())
}

// GalleryPage returns the gallery path for a zero-based page index.
func GalleryPage(page int) string {
	if page <= 0 {
		return Root
	}
	query := url.Values{}
	query.Set(PageQueryKey, strconv.Itoa(page))
	return Root + "?" + query.Encode()
}

// ParsePage reads the zero-based page index from a raw query value.
func ParsePage(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 0 {
		return 0, false
	}
	return page, true
}

// Static returns the path for an embedded static asset.
func Static(name string) string {
	return StaticPrefix + strings.TrimPrefix(strings.TrimSpace(name), "/")
}
