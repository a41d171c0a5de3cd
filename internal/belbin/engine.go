package belbin

import (
	"errors"
	"sort"
)

// ScoringResult is the outcome of one submission.
type ScoringResult struct {
	Scores   []TraitScore `json:"scores"`
	Levels   []TraitLevel `json:"levels"`
	TopTrait string       `json:"top_trait"`
	Encoded  string       `json:"encoded"`
}

// Engine scores submissions against a fixed, pre-checked configuration. It keeps no
// per-call state and is safe for concurrent use.
type Engine struct {
	questionnaire Questionnaire
	traits        []TraitDefinition
	bands         BandTable
}

// NewEngine checks the configuration and refuses to build an engine around a defect.
func NewEngine(q Questionnaire, traits []TraitDefinition, table BandTable) (*Engine, error) {
	if err := CheckConfiguration(q, traits, table); err != nil {
		return nil, err
	}
	ownBands := make(BandTable, len(table))
	for code, bs := range table {
		ownBands[code] = append([]Band(nil), bs...)
	}
	return &Engine{
		questionnaire: NewQuestionnaire(q.sections),
		traits:        copyTraits(traits),
		bands:         ownBands,
	}, nil
}

// DefaultEngine builds the engine for the standard inventory and panics if the built-in
// tables are inconsistent.
func DefaultEngine() *Engine {
	e, err := NewEngine(DefaultQuestionnaire(), DefaultTraits(), DefaultBands())
	if err != nil {
		panic(err)
	}
	return e
}

// Questionnaire returns the questionnaire the engine scores against.
func (e *Engine) Questionnaire() Questionnaire {
	return e.questionnaire
}

// Traits returns a copy of the trait definitions.
func (e *Engine) Traits() []TraitDefinition {
	return copyTraits(e.traits)
}

// Bands returns a copy of the bands of one trait.
func (e *Engine) Bands(code string) []Band {
	return append([]Band(nil), e.bands[code]...)
}

// Score runs validation, aggregation, classification, encoding and top-trait selection.
func (e *Engine) Score(answers AnswerSet) (ScoringResult, error) {
	validated, err := Validate(answers, e.questionnaire)
	if err != nil {
		return ScoringResult{}, err
	}
	scores, err := Aggregate(validated, e.traits)
	if err != nil {
		return ScoringResult{}, err
	}

	levels := make([]TraitLevel, 0, len(scores))
	for _, s := range scores {
		if level, ok := Classify(s, e.bands[s.Code]); ok {
			levels = append(levels, TraitLevel{Code: s.Code, Level: level})
		}
	}

	return ScoringResult{
		Scores:   scores,
		Levels:   levels,
		TopTrait: SelectTop(scores),
		Encoded:  Encode(levels),
	}, nil
}

// ScoreForm parses a flat form and scores it. When the form has unknown keys or
// non-integer values, the missing slots are reported in the same error.
func (e *Engine) ScoreForm(form map[string]string) (ScoringResult, error) {
	answers, err := ParseAnswerForm(form)
	if err != nil {
		return ScoringResult{}, e.completeStructuralError(err, answers)
	}
	return e.Score(answers)
}

// ScoreFields is ScoreForm for already-decoded integer values.
func (e *Engine) ScoreFields(fields map[string]int) (ScoringResult, error) {
	answers, err := ParseAnswerFields(fields)
	if err != nil {
		return ScoringResult{}, e.completeStructuralError(err, answers)
	}
	return e.Score(answers)
}

func (e *Engine) completeStructuralError(err error, answers AnswerSet) error {
	var serr *StructuralError
	if !errors.As(err, &serr) {
		return err
	}
	invalid := make(map[string]bool, len(serr.Invalid))
	for _, name := range serr.Invalid {
		invalid[name] = true
	}
	serr.Missing = nil
	for _, c := range missingCoordinates(answers, e.questionnaire) {
		if !invalid[FieldName(c)] {
			serr.Missing = append(serr.Missing, c)
		}
	}
	for c := range answers {
		if !e.questionnaire.Contains(c) {
			serr.Extra = append(serr.Extra, FieldName(c))
		}
	}
	sort.Strings(serr.Extra)
	return serr
}
