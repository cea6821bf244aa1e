package templates

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"golang.org/x/net/html"

	"github.com/louisbranch/character-gallery/internal/character"
	"github.com/louisbranch/character-gallery/internal/services/gallery/integration/characterapi"
	"github.com/louisbranch/character-gallery/internal/services/gallery/view"
)

func TestGalleryFragmentEmpty(t *testing.T) {
	t.Parallel()
	doc := renderDoc(t, GalleryFragment(GalleryView{
		State: view.GalleryState{Status: view.StatusLoaded},
		Copy:  englishCopy,
	}))
	if cards := findAll(doc, byClass("cg-card")); len(cards) != 0 {
		t.Fatalf("cards = %d, want 0", len(cards))
	}
	empty := findAll(doc, byClass("cg-empty"))
	if len(empty) != 1 || textContent(empty[0]) != "No characters found" {
		t.Fatalf("empty message = %v, want No characters found", empty)
	}
	if notices := findAll(doc, byClass("cg-notice")); len(notices) != 0 {
		t.Fatalf("notices = %d, want 0", len(notices))
	}
}

func TestGalleryFragmentCardsInArrivalOrderWithLinks(t *testing.T) {
	t.Parallel()
	doc := renderDoc(t, GalleryFragment(GalleryView{
		State: view.GalleryState{Status: view.StatusLoaded, Characters: []character.Character{
			{ID: 9, Name: "Zed"}, {ID: 2, Name: "Ana"}, {ID: 5, Name: "Kell"},
		}},
		Copy: englishCopy,
	}))

	cards := findAll(doc, byAttr("data-card", "character"))
	if len(cards) != 3 {
		t.Fatalf("cards = %d, want 3", len(cards))
	}
	wantIDs := []string{"9", "2", "5"}
	for i, card := range cards {
		if got := attr(card, "data-character-id"); got != wantIDs[i] {
			t.Fatalf("card[%d] id = %q, want %q", i, got, wantIDs[i])
		}
	}

	links := findAll(doc, func(n *html.Node) bool {
		return n.Data == "a" && strings.HasPrefix(attr(n, "href"), "/character/")
	})
	if len(links) != 3 || attr(links[0], "href") != "/character/9" {
		t.Fatalf("card links = %d, want 3 starting at /character/9", len(links))
	}
	if empty := findAll(doc, byClass("cg-empty")); len(empty) != 0 {
		t.Fatal("empty message must not render with cards")
	}
	if pagers := findAll(doc, byClass("cg-pager")); len(pagers) != 0 {
		t.Fatal("pager must not render without pagination metadata")
	}
}

func TestGalleryFragmentFailed(t *testing.T) {
	t.Parallel()
	doc := renderDoc(t, GalleryFragment(GalleryView{
		State: view.GalleryState{Status: view.StatusFailed, Reason: errors.New("secret upstream detail")},
		Copy:  englishCopy,
	}))
	if empty := findAll(doc, byClass("cg-empty")); len(empty) != 1 {
		t.Fatalf("empty message count = %d, want 1", len(empty))
	}
	notice := findAll(doc, byAttr("data-notice", "load-failed"))
	if len(notice) != 1 {
		t.Fatalf("failure notices = %d, want 1", len(notice))
	}
	if strings.Contains(textContent(doc), "secret upstream detail") {
		t.Fatal("failure reason must not be rendered")
	}
}

func TestGalleryFragmentStaleNotice(t *testing.T) {
	t.Parallel()
	doc := renderDoc(t, GalleryFragment(GalleryView{
		State: view.GalleryState{Status: view.StatusLoaded, Stale: true, Characters: []character.Character{{ID: 1}}},
		Copy:  englishCopy,
	}))
	if notice := findAll(doc, byAttr("data-notice", "stale")); len(notice) != 1 {
		t.Fatalf("stale notices = %d, want 1", len(notice))
	}
}

func TestGalleryFragmentPager(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		page     int
		hasNext  bool
		wantPrev string
		wantNext string
		wantNav  bool
	}{
		{name: "single page", page: 0, hasNext: false},
		{name: "first of many", page: 0, hasNext: true, wantNext: "/?page=1", wantNav: true},
		{name: "middle", page: 2, hasNext: true, wantPrev: "/?page=1", wantNext: "/?page=3", wantNav: true},
		{name: "last", page: 1, hasNext: false, wantPrev: "/", wantNav: true},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := renderDoc(t, GalleryFragment(GalleryView{
				State: view.GalleryState{
					Status:     view.StatusLoaded,
					Page:       tc.page,
					Characters: []character.Character{{ID: 1}},
					Pagination: &characterapi.Pagination{Page: tc.page, Limit: 20, HasNext: tc.hasNext},
				},
				Copy: englishCopy,
			}))
			navs := findAll(doc, byClass("cg-pager"))
			if (len(navs) == 1) != tc.wantNav {
				t.Fatalf("pager rendered = %v, want %v", len(navs) == 1, tc.wantNav)
			}
			prev := findAll(doc, byAttr("rel", "prev"))
			next := findAll(doc, byAttr("rel", "next"))
			if got := hrefOf(prev); got != tc.wantPrev {
				t.Fatalf("prev href = %q, want %q", got, tc.wantPrev)
			}
			if got := hrefOf(next); got != tc.wantNext {
				t.Fatalf("next href = %q, want %q", got, tc.wantNext)
			}
		})
	}
}

func hrefOf(nodes []*html.Node) string {
	if len(nodes) == 0 {
		return ""
	}
	return attr(nodes[0], "href")
}

func TestDetailFragmentStates(t *testing.T) {
	t.Parallel()
	record := character.Character{ID: 7, Name: "Mira"}
	tests := []struct {
		name      string
		state     view.DetailState
		wantCard  string
		wantText  string
		wantStats int
	}{
		{name: "loaded", state: view.DetailState{Status: view.StatusLoaded, ID: 7, Character: &record}, wantCard: "character", wantText: "Mira", wantStats: 1},
		{name: "not found", state: view.DetailState{Status: view.StatusNotFound, ID: 7}, wantCard: "not-found", wantText: "Character not found"},
		{name: "failed", state: view.DetailState{Status: view.StatusFailed, ID: 7, Reason: errors.New("boom")}, wantText: "could not be loaded"},
		{name: "loading", state: view.DetailState{Status: view.StatusLoading, ID: 7}, wantText: "Loading"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			doc := renderDoc(t, DetailFragment(DetailView{State: tc.state, Copy: englishCopy}))
			cards := findAll(doc, byClass("cg-card"))
			if tc.wantCard == "" {
				if len(cards) != 0 {
					t.Fatalf("cards = %d, want 0", len(cards))
				}
			} else if len(cards) != 1 || attr(cards[0], "data-card") != tc.wantCard {
				t.Fatalf("cards = %d, want one %s card", len(cards), tc.wantCard)
			}
			if got := len(findAll(doc, byClass("cg-stats"))); got != tc.wantStats {
				t.Fatalf("stat blocks = %d, want %d", got, tc.wantStats)
			}
			if !strings.Contains(textContent(doc), tc.wantText) {
				t.Fatalf("text = %q, want it to contain %q", textContent(doc), tc.wantText)
			}
			if strings.Contains(textContent(doc), "boom") {
				t.Fatal("failure reason must not be rendered")
			}
		})
	}
}

func TestErrorFragment(t *testing.T) {
	t.Parallel()
	doc := renderDoc(t, ErrorFragment(ErrorView{StatusCode: 404, Title: "Page not found", Message: "Nope", Copy: englishCopy}))
	sections := findAll(doc, byClass("cg-error"))
	if len(sections) != 1 || attr(sections[0], "data-status") != "404" {
		t.Fatalf("error sections = %v, want one with status 404", sections)
	}
	if h1 := findAll(doc, byTag("h1")); len(h1) != 1 || textContent(h1[0]) != "Page not found" {
		t.Fatalf("heading = %v, want Page not found", h1)
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

func TestRenderReportsWriteErrors(t *testing.T) {
	t.Parallel()
	components := []templ.Component{
		CharacterCard(CardView{Copy: englishCopy}),
		GalleryFragment(GalleryView{State: view.GalleryState{Status: view.StatusLoaded}, Copy: englishCopy}),
		DetailFragment(DetailView{State: view.DetailState{Status: view.StatusNotFound}, Copy: englishCopy}),
	}
	for i, c := range components {
		if err := c.Render(context.Background(), io.Writer(failingWriter{})); err == nil {
			t.Fatalf("component %d: expected write error", i)
		}
	}
}
