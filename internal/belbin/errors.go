package belbin

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrIncompleteSubmission = errors.New("cannot score: incomplete submission")
	ErrGroupSumMismatch     = errors.New("group sum mismatch")
	ErrInvalidConfiguration = errors.New("invalid belbin configuration")
	ErrScoreOverflow        = errors.New("trait score out of range")
)

// StructuralError reports answers that do not cover the questionnaire one-to-one.
type StructuralError struct {
	Missing []Coordinate
	Extra   []string
	Invalid []string
}

func (e *StructuralError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		names := make([]string, len(e.Missing))
		for i, c := range e.Missing {
			names[i] = FieldName(c)
		}
		parts = append(parts, "missing "+strings.Join(names, ", "))
	}
	if len(e.Extra) > 0 {
		parts = append(parts, "unexpected "+strings.Join(e.Extra, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "not an integer "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return ErrIncompleteSubmission.Error()
	}
	return fmt.Sprintf("%s: %s", ErrIncompleteSubmission, strings.Join(parts, "; "))
}

func (e *StructuralError) Is(target error) bool {
	return target == ErrIncompleteSubmission
}

// GroupSumMismatch describes one section whose items do not add up to the expected total.
type GroupSumMismatch struct {
	Section  int    `json:"group"`
	Name     string `json:"name"`
	Sum      int    `json:"sum"`
	Expected int    `json:"expected"`
}

// Message is the text shown next to the offending group.
func (m GroupSumMismatch) Message() string {
	return fmt.Sprintf("The sum of the fields in '%s' must equal %d.", m.Name, m.Expected)
}

// ValidationError carries every section that broke the sum rule, in section order.
type ValidationError struct {
	Mismatches []GroupSumMismatch
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Mismatches))
	for i, m := range e.Mismatches {
		msgs[i] = m.Message()
	}
	return fmt.Sprintf("%s: %s", ErrGroupSumMismatch, strings.Join(msgs, " "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrGroupSumMismatch
}

// ConfigurationError lists defects of the static questionnaire, mapping or band tables.
type ConfigurationError struct {
	Problems []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %s", ErrInvalidConfiguration, strings.Join(e.Problems, "; "))
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrInvalidConfiguration
}
