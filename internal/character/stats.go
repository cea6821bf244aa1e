package character

// Stats is the six-attribute block of a character. Values are not range
// checked.
type Stats struct {
	Strength     int `json:"strength"`
	Dexterity    int `json:"dexterity"`
	Constitution int `json:"constitution"`
	Intelligence int `json:"intelligence"`
	Wisdom       int `json:"wisdom"`
	Charisma     int `json:"charisma"`
}

// StatName names one attribute of a stat block.
type StatName string

const (
	Strength     StatName = "strength"
	Dexterity    StatName = "dexterity"
	Constitution StatName = "constitution"
	Intelligence StatName = "intelligence"
	Wisdom       StatName = "wisdom"
	Charisma     StatName = "charisma"
)

// Abbreviation returns the three-letter label printed on cards.
func (n StatName) Abbreviation() string {
	switch n {
	case Strength:
		return "STR"
	case Dexterity:
		return "DEX"
	case Constitution:
		return "CON"
	case Intelligence:
		return "INT"
	case Wisdom:
		return "WIS"
	case Charisma:
		return "CHA"
	default:
		return string(n)
	}
}

// StatEntry is one named value of a stat block.
type StatEntry struct {
	Name  StatName
	Value int
}

// Entries returns all six attributes in display order.
func (s Stats) Entries() []StatEntry {
	return []StatEntry{
		{Name: Strength, Value: s.Strength},
		{Name: Dexterity, Value: s.Dexterity},
		{Name: Constitution, Value: s.Constitution},
		{Name: Intelligence, Value: s.Intelligence},
		{Name: Wisdom, Value: s.Wisdom},
		{Name: Charisma, Value: s.Charisma},
	}
}
