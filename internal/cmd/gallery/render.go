package gallery

import (
	"fmt"
	"io"
	"strings"

	"github.com/louisbranch/character-gallery/internal/character"
	"github.com/louisbranch/character-gallery/internal/services/gallery/platform/i18n"
	"github.com/louisbranch/character-gallery/internal/services/gallery/view"
)

// writeCard prints one card as labeled lines followed by the stat row.
func writeCard(w io.Writer, ui i18n.Copy, record character.Character) error {
	var b strings.Builder
	fmt.Fprintln(&b, ui.IDLabel(record.ID))
	fmt.Fprintf(&b, "%s: %s\n", ui.CardName, record.Name)
	fmt.Fprintf(&b, "%s: %s\n", ui.CardSpecies, record.Species.String())
	fmt.Fprintf(&b, "%s: %s\n", ui.CardClass, record.Class.String())
	fmt.Fprintf(&b, "%s: %s\n", ui.CardBodyType, record.BodyType.Label())

	entries := record.Stats.Entries()
	stats := make([]string, 0, len(entries))
	for _, entry := range entries {
		stats = append(stats, fmt.Sprintf("%s %d", ui.StatLabel(entry.Name), entry.Value))
	}
	fmt.Fprintln(&b, strings.Join(stats, "  "))

	_, err := io.WriteString(w, b.String())
	return err
}

func writeGallery(w io.Writer, ui i18n.Copy, state view.GalleryState) error {
	if len(state.Characters) == 0 {
		_, err := fmt.Fprintln(w, ui.Empty)
		return err
	}
	for idx, record := range state.Characters {
		if idx > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := writeCard(w, ui, record); err != nil {
			return err
		}
	}
	if state.Pagination == nil {
		return nil
	}
	footer := ui.PageIndicator(state.Page + 1)
	if state.Pagination.HasNext {
		footer += fmt.Sprintf(" (%s: --page %d)", ui.NextPage, state.Page+1)
	}
	_, err := fmt.Fprintf(w, "\n%s\n", footer)
	return err
}

func writeDetail(w io.Writer, ui i18n.Copy, state view.DetailState) error {
	if state.Status != view.StatusLoaded || state.Character == nil {
		_, err := fmt.Fprintf(w, "%s\n%s\n", ui.IDLabel(state.ID), ui.NotFound)
		return err
	}
	return writeCard(w, ui, *state.Character)
}
