package view

import (
	"github.com/louisbranch/character-gallery/internal/character"
	"github.com/louisbranch/character-gallery/internal/services/gallery/integration/characterapi"
)

// Status is the tag of a view state.
type Status int

const (
	// StatusLoading means no fetch has resolved for the current generation.
	StatusLoading Status = iota
	// StatusLoaded means the fetch returned data.
	StatusLoaded
	// StatusNotFound means the API has no record for the requested id.
	StatusNotFound
	// StatusFailed means the fetch failed for any other reason.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusLoaded:
		return "loaded"
	case StatusNotFound:
		return "not_found"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// GalleryState is the display state of the gallery page.
type GalleryState struct {
	Status Status
	// Page is the zero-based page index.
	Page       int
	Characters []character.Character
	// Pagination is nil unless the API answered with the paginated envelope.
	Pagination *characterapi.Pagination
	Stale      bool
	// Reason is set for StatusFailed. It is logged, never rendered.
	Reason error
}

// DetailState is the display state of the detail page.
type DetailState struct {
	Status Status
	ID     character.ID
	// Character is set only for StatusLoaded.
	Character *character.Character
	Stale     bool
	Reason    error
}
