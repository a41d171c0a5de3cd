package main

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"hepi-staff/internal/belbin"
	"hepi-staff/internal/domain"
)

func TestAnswersFromJSON(t *testing.T) {
	nested, err := answersFromJSON([]byte(`{"respondent":"x","answers":{"group_1_question_1":3,"group_1_question_2":"7","group_1":""}}`))
	if err != nil {
		t.Fatalf("nested: %v", err)
	}
	if nested["group_1_question_1"] != "3" || nested["group_1_question_2"] != "7" || len(nested) != 3 {
		t.Fatalf("unexpected form %v", nested)
	}

	root, err := answersFromJSON([]byte(`{"group_2_question_4": 1.5}`))
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if root["group_2_question_4"] != "1.5" {
		t.Fatalf("raw number expected, got %v", root)
	}

	if _, err := answersFromJSON([]byte(`{"answers":`)); !errors.Is(err, errInvalidAnswersFile) {
		t.Fatalf("expected invalid json error, got %v", err)
	}
	if _, err := answersFromJSON([]byte(`[1,2]`)); err == nil {
		t.Fatalf("expected error for non-object answers")
	}
}

func TestRunQuestionnaire_RepromptsBadSection(t *testing.T) {
	q := belbin.DefaultQuestionnaire()
	var input strings.Builder
	// Primera pasada de la seccion 1 suma 9 y se repite.
	input.WriteString("9\n\n\n\n\n\n\n\n")
	for s := 0; s < q.Len(); s++ {
		input.WriteString("10\n")
		for i := 1; i < 8; i++ {
			if i == 3 && s == 0 {
				input.WriteString("abc\n")
			}
			input.WriteString("\n")
		}
	}

	var out bytes.Buffer
	form := runQuestionnaire(bufio.NewReader(strings.NewReader(input.String())), &out, q)
	if len(form) != 56 {
		t.Fatalf("expected 56 answers, got %d", len(form))
	}
	if !strings.Contains(out.String(), "La seccion suma 9") {
		t.Fatalf("expected a re-prompt, got output:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "Ingresa un numero entero.") {
		t.Fatalf("expected a non-integer warning")
	}

	res, err := belbin.DefaultEngine().ScoreForm(form)
	if err != nil {
		t.Fatalf("score: %v", err)
	}
	if res.Encoded != "PO, NL^, CZA, SIE^, CZK^, SĘ, CZG" {
		t.Fatalf("unexpected result %q", res.Encoded)
	}
}

func TestRunQuestionnaire_StopsOnEOF(t *testing.T) {
	form := runQuestionnaire(bufio.NewReader(strings.NewReader("10\n")), &bytes.Buffer{}, belbin.DefaultQuestionnaire())
	if len(form) != 0 {
		t.Fatalf("expected no complete section, got %v", form)
	}
	_, err := belbin.DefaultEngine().ScoreForm(form)
	if !errors.Is(err, belbin.ErrIncompleteSubmission) {
		t.Fatalf("expected incomplete submission, got %v", err)
	}
}

func TestPrintScoringError(t *testing.T) {
	engine := belbin.DefaultEngine()
	form := map[string]string{}
	for _, c := range engine.Questionnaire().Coordinates() {
		form[belbin.FieldName(c)] = "0"
	}
	_, err := engine.ScoreForm(form)

	var out bytes.Buffer
	printScoringError(&out, err)
	if strings.Count(out.String(), "must equal 10") != 7 {
		t.Fatalf("expected one line per section, got:\n%s", out.String())
	}

	out.Reset()
	delete(form, "group_3_question_3")
	form["bogus"] = "1"
	_, err = engine.ScoreForm(form)
	printScoringError(&out, err)
	if !strings.Contains(out.String(), "faltan: group_3_question_3") || !strings.Contains(out.String(), "sobran: bogus") {
		t.Fatalf("unexpected structural report:\n%s", out.String())
	}
}

func TestPrintResultAndHistory(t *testing.T) {
	engine := belbin.DefaultEngine()
	form := map[string]string{}
	for _, c := range engine.Questionnaire().Coordinates() {
		v := "0"
		if c.Item == 1 {
			v = "10"
		}
		form[belbin.FieldName(c)] = v
	}
	res, err := engine.ScoreForm(form)
	if err != nil {
		t.Fatalf("score: %v", err)
	}

	var out bytes.Buffer
	printResult(&out, engine, res)
	if !strings.Contains(out.String(), "Resultado: PO, NL^") || !strings.Contains(out.String(), "Rol principal: PO") {
		t.Fatalf("unexpected report:\n%s", out.String())
	}

	out.Reset()
	printHistory(&out, nil)
	if !strings.Contains(out.String(), "Sin resultados") {
		t.Fatalf("expected empty history message")
	}
	out.Reset()
	printHistory(&out, []domain.BelbinAssessment{{EmployeeID: "jan", TopTrait: "PO", Result: "PO*", CreatedAt: time.Date(2024, 1, 2, 3, 4, 0, 0, time.UTC)}})
	if !strings.Contains(out.String(), "2024-01-02 03:04") || !strings.Contains(out.String(), "PO*") {
		t.Fatalf("unexpected history line:\n%s", out.String())
	}
}
