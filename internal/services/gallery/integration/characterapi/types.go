package characterapi

import "github.com/louisbranch/character-gallery/internal/character"

// Pagination is the page metadata returned by paginated list responses.
type Pagination struct {
	Page    int    `json:"page"`
	Limit   int    `json:"limit"`
	Total   uint64 `json:"total"`
	HasNext bool   `json:"has_next"`
}

// ListInput selects a page of the character listing. Page zero is the
// first page.
type ListInput struct {
	Page int
}

// ListOutput holds one listing response in arrival order.
type ListOutput struct {
	Characters []character.Character `json:"characters"`
	// Pagination is nil when the API answered with a bare array.
	Pagination *Pagination `json:"pagination,omitempty"`
	// Stale is set when the result came from a stored snapshot.
	Stale bool `json:"-"`
}

// GetOutput holds one character record.
type GetOutput struct {
	Character character.Character `json:"character"`
	Stale     bool                `json:"-"`
}
