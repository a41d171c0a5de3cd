package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"hepi-staff/internal/belbin"
	"hepi-staff/internal/domain"
)

func printResult(out io.Writer, engine *belbin.Engine, result belbin.ScoringResult) {
	encoded := result.Encoded
	if encoded == "" {
		encoded = "(ningun rol alcanza el nivel medio)"
	}
	fmt.Fprintf(out, "\nResultado: %s\n", encoded)

	levels := make(map[string]belbin.Level, len(result.Levels))
	for _, l := range result.Levels {
		levels[l.Code] = l.Level
	}
	names := make(map[string]string)
	for _, t := range engine.Traits() {
		names[t.Code] = t.Name
	}
	for _, s := range result.Scores {
		fmt.Fprintf(out, "  %-4s %-28s %3d  %s\n", s.Code, names[s.Code], s.Value, levels[s.Code])
	}
	fmt.Fprintf(out, "Rol principal: %s\n", result.TopTrait)
}

func printScoringError(out io.Writer, err error) {
	var (
		structural *belbin.StructuralError
		mismatch   *belbin.ValidationError
	)
	switch {
	case errors.As(err, &structural):
		fmt.Fprintln(out, belbin.ErrIncompleteSubmission.Error())
		if len(structural.Missing) > 0 {
			names := make([]string, len(structural.Missing))
			for i, c := range structural.Missing {
				names[i] = belbin.FieldName(c)
			}
			fmt.Fprintf(out, "  faltan: %s\n", strings.Join(names, ", "))
		}
		if len(structural.Extra) > 0 {
			fmt.Fprintf(out, "  sobran: %s\n", strings.Join(structural.Extra, ", "))
		}
		if len(structural.Invalid) > 0 {
			fmt.Fprintf(out, "  no son enteros: %s\n", strings.Join(structural.Invalid, ", "))
		}
	case errors.As(err, &mismatch):
		for _, m := range mismatch.Mismatches {
			fmt.Fprintf(out, "%s (suma %d)\n", m.Message(), m.Sum)
		}
	default:
		fmt.Fprintln(out, err)
	}
}

func printHistory(out io.Writer, entries []domain.BelbinAssessment) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "Sin resultados guardados.")
		return
	}
	for _, e := range entries {
		fmt.Fprintf(out, "%s  %-20s %-4s %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.EmployeeID, e.TopTrait, e.Result)
	}
}
