// Package character defines the character records served by the gallery API.
//
// Records are owned by the upstream API. This package only models their JSON
// shape and the display rules the gallery applies to them.
package character
