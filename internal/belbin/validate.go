package belbin

import (
	"math"
	"math/big"
	"sort"
)

// SectionTotal is the number of points every section distributes across its items.
const SectionTotal = 10

// ValidatedAnswers is an AnswerSet that passed Validate. Only Validate builds one, so
// aggregation can never run on unchecked input.
type ValidatedAnswers struct {
	answers AnswerSet
}

// Value returns the score at c.
func (v ValidatedAnswers) Value(c Coordinate) (int, bool) {
	val, ok := v.answers[c]
	return val, ok
}

// Len is the number of answered slots.
func (v ValidatedAnswers) Len() int {
	return len(v.answers)
}

// Validate checks that answers cover every slot of q exactly once and that each section
// sums to SectionTotal. Structural problems are reported before sums are looked at; sum
// violations are reported for all sections at once.
func Validate(answers AnswerSet, q Questionnaire) (ValidatedAnswers, error) {
	if err := checkStructure(answers, q); err != nil {
		return ValidatedAnswers{}, err
	}

	var mismatches []GroupSumMismatch
	for si, s := range q.sections {
		values := make([]int, len(s.Items))
		for ii := range s.Items {
			values[ii] = answers[Coordinate{Section: si + 1, Item: ii + 1}]
		}
		sum, exact := checkedSum(values)
		if !exact || sum != SectionTotal {
			mismatches = append(mismatches, GroupSumMismatch{
				Section:  si + 1,
				Name:     s.Name,
				Sum:      sum,
				Expected: SectionTotal,
			})
		}
	}
	if len(mismatches) > 0 {
		return ValidatedAnswers{}, &ValidationError{Mismatches: mismatches}
	}

	own := make(AnswerSet, len(answers))
	for c, val := range answers {
		own[c] = val
	}
	return ValidatedAnswers{answers: own}, nil
}

func checkStructure(answers AnswerSet, q Questionnaire) error {
	serr := &StructuralError{Missing: missingCoordinates(answers, q)}
	for c := range answers {
		if !q.Contains(c) {
			serr.Extra = append(serr.Extra, FieldName(c))
		}
	}
	sort.Strings(serr.Extra)
	return serr.orNil()
}

func missingCoordinates(answers AnswerSet, q Questionnaire) []Coordinate {
	var missing []Coordinate
	for _, c := range q.Coordinates() {
		if _, ok := answers[c]; !ok {
			missing = append(missing, c)
		}
	}
	return missing
}

// checkedSum adds values without wrapping. When the true total does not fit an int,
// exact is false and sum is clamped to the nearest bound.
func checkedSum(values []int) (sum int, exact bool) {
	total := new(big.Int)
	for _, v := range values {
		total.Add(total, big.NewInt(int64(v)))
	}
	if total.IsInt64() {
		if n := total.Int64(); int64(int(n)) == n {
			return int(n), true
		}
	}
	if total.Sign() > 0 {
		return math.MaxInt, false
	}
	return math.MinInt, false
}
