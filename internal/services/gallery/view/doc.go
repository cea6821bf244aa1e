// Package view owns the per-request display state of the gallery and
// detail pages.
//
// A view fetches through the character API client, translates the result
// into an explicit state and exposes a snapshot of that state to the
// templates. Detail views tie every fetch to a generation so that a
// response for a superseded id never overwrites the current state.
package view
