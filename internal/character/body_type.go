package character

// BodyType selects the base body of a character.
type BodyType string

const (
	TypeA BodyType = "type_a"
	TypeB BodyType = "type_b"
)

func (bt BodyType) String() string {
	return string(bt)
}

// Valid reports whether bt is one of the known body types.
func (bt BodyType) Valid() bool {
	switch bt {
	case TypeA, TypeB:
		return true
	}
	return false
}

// Label returns the display text for bt. Only type_a is matched; every other
// value, known or not, displays as Type B.
func (bt BodyType) Label() string {
	if bt == TypeA {
		return "Type A"
	}
	return "Type B"
}
