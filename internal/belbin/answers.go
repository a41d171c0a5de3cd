package belbin

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// AnswerSet holds one submission: the score given to each answer slot.
type AnswerSet map[Coordinate]int

var (
	answerFieldRe = regexp.MustCompile(`^group_([1-9][0-9]*)_question_([1-9][0-9]*)$`)
	groupFieldRe  = regexp.MustCompile(`^group_([1-9][0-9]*)$`)
)

// ParseAnswerForm reads the flat group_{g}_question_{q} form encoding. Unknown keys and
// values that are not integers are collected into a *StructuralError; the parsed part of
// the form is returned either way. Hidden group_{g} marker fields are ignored.
func ParseAnswerForm(form map[string]string) (AnswerSet, error) {
	answers := make(AnswerSet, len(form))
	serr := &StructuralError{}
	for key, raw := range form {
		c, ok, marker := parseFieldName(key)
		if marker {
			continue
		}
		if !ok {
			serr.Extra = append(serr.Extra, key)
			continue
		}
		v, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			serr.Invalid = append(serr.Invalid, key)
			continue
		}
		answers[c] = v
	}
	return answers, serr.orNil()
}

// ParseAnswerFields is ParseAnswerForm for callers that already decoded integers.
func ParseAnswerFields(fields map[string]int) (AnswerSet, error) {
	answers := make(AnswerSet, len(fields))
	serr := &StructuralError{}
	for key, v := range fields {
		c, ok, marker := parseFieldName(key)
		if marker {
			continue
		}
		if !ok {
			serr.Extra = append(serr.Extra, key)
			continue
		}
		answers[c] = v
	}
	return answers, serr.orNil()
}

// Fields renders the answers back into the flat form encoding.
func (a AnswerSet) Fields() map[string]int {
	out := make(map[string]int, len(a))
	for c, v := range a {
		out[FieldName(c)] = v
	}
	return out
}

// parseFieldName matches keys exactly; " group_1_question_1" is an unknown key, not a
// second value for the same slot.
func parseFieldName(key string) (c Coordinate, ok bool, marker bool) {
	if groupFieldRe.MatchString(key) {
		return Coordinate{}, false, true
	}
	m := answerFieldRe.FindStringSubmatch(key)
	if m == nil {
		return Coordinate{}, false, false
	}
	section, err := strconv.Atoi(m[1])
	if err != nil {
		return Coordinate{}, false, false
	}
	item, err := strconv.Atoi(m[2])
	if err != nil {
		return Coordinate{}, false, false
	}
	return Coordinate{Section: section, Item: item}, true, false
}

func (e *StructuralError) orNil() error {
	if len(e.Missing) == 0 && len(e.Extra) == 0 && len(e.Invalid) == 0 {
		return nil
	}
	sort.Strings(e.Extra)
	sort.Strings(e.Invalid)
	return e
}
