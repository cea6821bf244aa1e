package character

import (
	"strconv"
	"strings"
)

// idLabelWidth is the minimum digit count of a displayed identifier.
const idLabelWidth = 8

// ID identifies a character record.
type ID uint64

// ParseID parses a route or CLI identifier. Negative and non-integer values
// are rejected.
func ParseID(raw string) (ID, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return ID(value), true
}

// String returns the decimal form used in URLs.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// Label returns the identifier zero-padded to eight digits. Larger values
// keep every digit.
func (id ID) Label() string {
	digits := id.String()
	if len(digits) >= idLabelWidth {
		return digits
	}
	return strings.Repeat("0", idLabelWidth-len(digits)) + digits
}

// Customization holds cosmetic slot indices. Their meaning belongs to the
// asset catalog and is not interpreted here.
type Customization struct {
	Hair  int `json:"hair"`
	Face  int `json:"face"`
	Shirt int `json:"shirt"`
	Pants int `json:"pants"`
	Shoes int `json:"shoes"`
}

// Character is one gallery record.
type Character struct {
	ID            ID            `json:"id"`
	Name          string        `json:"name"`
	BodyType      BodyType      `json:"body_type"`
	Species       Species       `json:"species"`
	Class         Class         `json:"class"`
	Stats         Stats         `json:"stats"`
	Customization Customization `json:"customization"`
}
