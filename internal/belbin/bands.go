package belbin

import (
	"fmt"
	"math"
)

// Level is the ordinal class of a trait score. The zero value means "no qualifying level".
type Level int

const (
	LevelNone Level = iota
	LevelAverage
	LevelHigh
	LevelVeryHigh
)

// Unbounded is the upper bound of the last band of every trait.
const Unbounded = math.MaxInt

func (l Level) String() string {
	switch l {
	case LevelAverage:
		return "average"
	case LevelHigh:
		return "high"
	case LevelVeryHigh:
		return "very high"
	default:
		return "none"
	}
}

// Marker is the suffix a level adds to a trait code in the encoded result.
func (l Level) Marker() string {
	switch l {
	case LevelVeryHigh:
		return "*"
	case LevelHigh:
		return "^"
	default:
		return ""
	}
}

// MarshalText renders the level label, so JSON carries "very high" instead of 3.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText accepts the labels produced by MarshalText.
func (l *Level) UnmarshalText(text []byte) error {
	switch string(text) {
	case "none", "":
		*l = LevelNone
	case "average":
		*l = LevelAverage
	case "high":
		*l = LevelHigh
	case "very high":
		*l = LevelVeryHigh
	default:
		return fmt.Errorf("unknown level %q", text)
	}
	return nil
}

// Band is an inclusive score range [Low, High] labelled with a level.
type Band struct {
	Level Level `json:"level"`
	Low   int   `json:"low"`
	High  int   `json:"high"`
}

// Contains reports whether v lies in the band, bounds included.
func (b Band) Contains(v int) bool {
	return v >= b.Low && v <= b.High
}

// BandTable holds the ascending bands of every trait, keyed by trait code.
type BandTable map[string][]Band

func bands(average, high, veryHigh int) []Band {
	return []Band{
		{Level: LevelAverage, Low: average, High: high - 1},
		{Level: LevelHigh, Low: high, High: veryHigh - 1},
		{Level: LevelVeryHigh, Low: veryHigh, High: Unbounded},
	}
}

// DefaultBands returns a fresh copy of the per-role norms.
func DefaultBands() BandTable {
	return BandTable{
		TraitPO:  bands(9, 14, 19),
		TraitNL:  bands(5, 9, 13),
		TraitCZA: bands(10, 15, 21),
		TraitSIE: bands(4, 8, 12),
		TraitCZK: bands(6, 10, 14),
		TraitSE:  bands(7, 12, 17),
		TraitCZG: bands(5, 11, 16),
		TraitPER: bands(8, 14, 20),
	}
}

// Classify returns the level of the first band containing the score. A score under the
// lowest band has no level; the trait is then left out of the result.
func Classify(score TraitScore, table []Band) (Level, bool) {
	for _, b := range table {
		if b.Contains(score.Value) {
			return b.Level, true
		}
	}
	return LevelNone, false
}
