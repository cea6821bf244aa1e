package templates

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/character-gallery/internal/character"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/i18n"
	"github.com/louisbranch/character-gallery/internal/services/gallery/routepath"
)

const defaultPortraitFile = "portraits/human_b_base.svg"

// DefaultPortraitPath is the single portrait every character currently uses.
var DefaultPortraitPath = routepath.Static(defaultPortraitFile)

// PortraitResolver picks the portrait asset for a character. Body type and
// customization are available to implementations that select by them.
type PortraitResolver interface {
	PortraitURL(c character.Character) string
}

// PortraitFunc adapts a function to PortraitResolver.
type PortraitFunc func(c character.Character) string

// PortraitURL calls f(c).
func (f PortraitFunc) PortraitURL(c character.Character) string {
	return f(c)
}

// StaticPortraits returns DefaultPortraitPath for every character.
type StaticPortraits struct{}

// PortraitURL returns DefaultPortraitPath.
func (StaticPortraits) PortraitURL(character.Character) string {
	return DefaultPortraitPath
}

// AssetPortraits serves the default portrait from an external asset host.
// An empty BaseURL falls back to the embedded asset.
type AssetPortraits struct {
	BaseURL string
}

// PortraitURL joins BaseURL with the default portrait file.
func (p AssetPortraits) PortraitURL(character.Character) string {
	base := strings.TrimRight(strings.TrimSpace(p.BaseURL), "/")
	if base == "" {
		return DefaultPortraitPath
	}
	return base + "/" + defaultPortraitFile
}

// CardView carries the inputs of one character card.
type CardView struct {
	// Character is nil when no record exists.
	Character *character.Character
	Copy      i18n.Copy
	Portraits PortraitResolver
}

// CharacterCard renders a fixed-layout card. A nil character renders the
// not-found placeholder without a stat block.
func CharacterCard(v CardView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := newMarkup(w)
		if v.Character == nil {
			m.raw(`<div class="cg-card cg-card--empty" data-card="not-found">`)
			m.text(v.Copy.NotFound)
			m.raw("</div>")
			return m.err
		}

		c := *v.Character
		portraits := v.Portraits
		if portraits == nil {
			portraits = StaticPortraits{}
		}
		src := portraits.PortraitURL(c)
		if src == "" {
			src = DefaultPortraitPath
		}

		m.raw(`<div class="cg-card"`)
		m.attr("data-card", "character")
		m.attr("data-character-id", c.ID.String())
		m.raw(`><div class="cg-card__portrait"><img`)
		m.attr("src", string(templ.URL(src)))
		m.attr("alt", v.Copy.PortraitAlt(c.Name))
		m.raw(">")
		m.element("span", "cg-card__id", v.Copy.IDLabel(c.ID))
		m.raw(`</div><div class="cg-card__body"><dl class="cg-card__fields">`)
		field(m, v.Copy.CardName, c.Name)
		field(m, v.Copy.CardSpecies, string(c.Species))
		field(m, v.Copy.CardClass, string(c.Class))
		field(m, v.Copy.CardBodyType, c.BodyType.Label())
		m.raw("</dl>")
		m.render(ctx, StatBlock(c.Stats, v.Copy))
		m.raw("</div></div>")
		return m.err
	})
}

func field(m *markup, name, value string) {
	m.raw(`<div class="cg-field"`)
	m.attr("data-field", name)
	m.raw(">")
	m.element("dt", "", name)
	m.element("dd", "", value)
	m.raw("</div>")
}

// StatBlock renders the six stat values in their stable order.
func StatBlock(stats character.Stats, ui i18n.Copy) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := newMarkup(w)
		m.raw(`<ul class="cg-stats"`)
		m.attr("aria-label", ui.StatsHeading)
		m.raw(">")
		for _, entry := range stats.Entries() {
			m.raw(`<li class="cg-stat"`)
			m.attr("data-stat", string(entry.Name))
			m.raw(">")
			m.element("span", "cg-stat__label", ui.StatLabel(entry.Name))
			m.element("span", "cg-stat__value", strconv.Itoa(entry.Value))
			m.raw("</li>")
		}
		m.raw("</ul>")
		return m.err
	})
}
