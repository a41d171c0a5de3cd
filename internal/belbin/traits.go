package belbin

import "fmt"

// Coordinate addresses one answer slot; both indices are 1-based.
type Coordinate struct {
	Section int `json:"section"`
	Item    int `json:"item"`
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(%d,%d)", c.Section, c.Item)
}

// TraitDefinition maps a team role to the one item per section that feeds its score.
type TraitDefinition struct {
	Code        string       `json:"code"`
	Name        string       `json:"name"`
	Coordinates []Coordinate `json:"coordinates"`
}

// Codes of the eight team roles, in the order results are reported.
const (
	TraitPO  = "PO"
	TraitNL  = "NL"
	TraitCZA = "CZA"
	TraitSIE = "SIE"
	TraitCZK = "CZK"
	TraitSE  = "SĘ"
	TraitCZG = "CZG"
	TraitPER = "PER"
)

// DefaultTraits returns a fresh copy of the standard mapping. Within every section the
// eight roles claim the eight items exactly once.
func DefaultTraits() []TraitDefinition {
	return copyTraits(defaultTraits)
}

func copyTraits(traits []TraitDefinition) []TraitDefinition {
	out := make([]TraitDefinition, len(traits))
	for i, t := range traits {
		c := make([]Coordinate, len(t.Coordinates))
		copy(c, t.Coordinates)
		out[i] = TraitDefinition{Code: t.Code, Name: t.Name, Coordinates: c}
	}
	return out
}

func coords(items ...int) []Coordinate {
	out := make([]Coordinate, len(items))
	for i, item := range items {
		out[i] = Coordinate{Section: i + 1, Item: item}
	}
	return out
}

var defaultTraits = []TraitDefinition{
	{Code: TraitPO, Name: "Praktyczny Organizator", Coordinates: coords(7, 1, 8, 4, 2, 6, 5)},
	{Code: TraitNL, Name: "Naturalny Lider", Coordinates: coords(4, 2, 1, 8, 6, 3, 7)},
	{Code: TraitCZA, Name: "Człowiek Akcji", Coordinates: coords(6, 5, 3, 2, 4, 7, 1)},
	{Code: TraitSIE, Name: "Siewca", Coordinates: coords(3, 7, 4, 5, 8, 1, 6)},
	{Code: TraitCZK, Name: "Człowiek Kontaktów", Coordinates: coords(1, 3, 6, 7, 5, 8, 4)},
	{Code: TraitSE, Name: "Sędzia", Coordinates: coords(8, 4, 7, 3, 1, 5, 2)},
	// CZG takes (6,2); (6,5) belongs to SĘ.
	{Code: TraitCZG, Name: "Człowiek Grupy", Coordinates: coords(2, 6, 5, 1, 3, 2, 8)},
	{Code: TraitPER, Name: "Perfekcjonista", Coordinates: coords(5, 8, 2, 6, 7, 4, 3)},
}
