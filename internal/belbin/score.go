package belbin

import (
	"fmt"
	"strings"
)

// TraitScore is the raw score of one team role for one submission.
type TraitScore struct {
	Code  string `json:"code"`
	Value int    `json:"value"`
}

// TraitLevel pairs a role with the level its score reached.
type TraitLevel struct {
	Code  string `json:"code"`
	Level Level  `json:"level"`
}

// Aggregate sums, for every trait, the answers found at its coordinates. Scores come back
// in trait order. A coordinate without an answer is a configuration defect, not a zero.
func Aggregate(v ValidatedAnswers, traits []TraitDefinition) ([]TraitScore, error) {
	scores := make([]TraitScore, 0, len(traits))
	for _, t := range traits {
		values := make([]int, 0, len(t.Coordinates))
		for _, c := range t.Coordinates {
			val, ok := v.Value(c)
			if !ok {
				return nil, &ConfigurationError{Problems: []string{
					fmt.Sprintf("trait %s references unanswered slot %s", t.Code, c),
				}}
			}
			values = append(values, val)
		}
		sum, exact := checkedSum(values)
		if !exact {
			return nil, fmt.Errorf("%w: trait %s", ErrScoreOverflow, t.Code)
		}
		scores = append(scores, TraitScore{Code: t.Code, Value: sum})
	}
	return scores, nil
}

// SelectTop returns the code of the highest score. On a tie the earliest trait wins.
func SelectTop(scores []TraitScore) string {
	if len(scores) == 0 {
		return ""
	}
	top := scores[0]
	for _, s := range scores[1:] {
		if s.Value > top.Value {
			top = s
		}
	}
	return top.Code
}

// Encode renders qualifying roles as "PO*, NL^, CZA": '*' marks very high, '^' high.
func Encode(qualifying []TraitLevel) string {
	tokens := make([]string, 0, len(qualifying))
	for _, q := range qualifying {
		if q.Level == LevelNone {
			continue
		}
		tokens = append(tokens, q.Code+q.Level.Marker())
	}
	return strings.Join(tokens, ", ")
}
