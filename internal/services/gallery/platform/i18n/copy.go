package i18n

import (
	"fmt"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/louisbranch/character-gallery/internal/character"
	"github.com/louisbranch/character-gallery/internal/platform/i18n/catalog"
)

// Copy holds the localized strings rendered by the gallery templates.
type Copy struct {
	Lang string

	SiteTitle         string
	SubmitCharacter   string
	PageTitle         string
	Empty             string
	LoadFailed        string
	DetailLoadFailed  string
	StaleNotice       string
	Loading           string
	NotFound          string
	PageNotFound      string
	PageNotFoundBody  string
	ServerError       string
	BackToGallery     string
	PreviousPage      string
	NextPage          string
	CardName          string
	CardSpecies       string
	CardClass         string
	CardBodyType      string
	StatsHeading      string
	StatAbbreviations map[character.StatName]string

	printer *message.Printer
}

// Gallery returns localized copy for tag. Keys missing from the tag's
// catalog fall back to the base locale.
func Gallery(tag language.Tag) Copy {
	tag = supportedBase(tag)
	printer := Printer(tag)
	c := Copy{Lang: tag.String(), printer: printer}

	c.SiteTitle = c.text("gallery.site_title")
	c.SubmitCharacter = c.text("gallery.submit_character")
	c.PageTitle = c.text("gallery.page_title")
	c.Empty = c.text("gallery.empty")
	c.LoadFailed = c.text("gallery.load_failed")
	c.DetailLoadFailed = c.text("gallery.detail_load_failed")
	c.StaleNotice = c.text("gallery.stale_notice")
	c.Loading = c.text("gallery.loading")
	c.NotFound = c.text("gallery.not_found")
	c.PageNotFound = c.text("gallery.page_not_found")
	c.PageNotFoundBody = c.text("gallery.page_not_found_body")
	c.ServerError = c.text("gallery.server_error")
	c.BackToGallery = c.text("gallery.back_to_gallery")
	c.PreviousPage = c.text("gallery.previous_page")
	c.NextPage = c.text("gallery.next_page")
	c.CardName = c.text("gallery.card.name")
	c.CardSpecies = c.text("gallery.card.species")
	c.CardClass = c.text("gallery.card.class")
	c.CardBodyType = c.text("gallery.card.body_type")
	c.StatsHeading = c.text("gallery.stats.heading")
	c.StatAbbreviations = map[character.StatName]string{
		character.Strength:     c.text("gallery.stats.strength"),
		character.Dexterity:    c.text("gallery.stats.dexterity"),
		character.Constitution: c.text("gallery.stats.constitution"),
		character.Intelligence: c.text("gallery.stats.intelligence"),
		character.Wisdom:       c.text("gallery.stats.wisdom"),
		character.Charisma:     c.text("gallery.stats.charisma"),
	}
	return c
}

// IDLabel formats the card identifier line.
func (c Copy) IDLabel(id character.ID) string {
	return c.format("gallery.card.id", id.Label())
}

// DetailTitle formats the detail page title.
func (c Copy) DetailTitle(id character.ID) string {
	return c.format("gallery.detail_title", id.Label())
}

// PageIndicator formats the current page marker.
func (c Copy) PageIndicator(page int) string {
	return c.format("gallery.page_indicator", page)
}

// PortraitAlt formats the portrait alt text.
func (c Copy) PortraitAlt(name string) string {
	return c.format("gallery.portrait_alt", name)
}

// StatLabel returns the abbreviation for name, defaulting to the English one.
func (c Copy) StatLabel(name character.StatName) string {
	if label, ok := c.StatAbbreviations[name]; ok && label != "" {
		return label
	}
	return name.Abbreviation()
}

// Lookup returns the localized message for key, if one is defined.
func (c Copy) Lookup(key string) (string, bool) {
	if _, ok := catalog.Default().Message(c.Lang, key); !ok {
		return "", false
	}
	return c.format(key), true
}

func (c Copy) text(key string) string {
	return c.format(key)
}

func (c Copy) format(key string, args ...any) string {
	if c.printer != nil {
		if _, ok := catalog.Default().Message(c.Lang, key); ok {
			return c.printer.Sprintf(key, args...)
		}
	}
	if value, ok := catalog.Default().Message(catalog.BaseLocale, key); ok {
		return fmt.Sprintf(value, args...)
	}
	return key
}
