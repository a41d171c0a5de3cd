package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"hepi-staff/internal/belbin"
)

// runQuestionnaire pide cada item por stdin y repite la seccion mientras no sume 10.
func runQuestionnaire(reader *bufio.Reader, out io.Writer, q belbin.Questionnaire) map[string]string {
	form := map[string]string{}
	sections := q.Sections()

	fmt.Fprintf(out, "\n--- TEST DE ROLES DE BELBIN (%d secciones) ---\n", len(sections))
	fmt.Fprintf(out, "Reparti %d puntos entre las frases de cada seccion.\n", belbin.SectionTotal)

	for i, s := range sections {
		group := i + 1
		for {
			fmt.Fprintf(out, "\n[%d/%d] %s\n", group, len(sections), s.Name)
			values := make([]int, len(s.Items))
			total := 0
			for j, item := range s.Items {
				prompt := fmt.Sprintf("  %d. %s (quedan %d): ", j+1, item, belbin.SectionTotal-total)
				v, ok := readInt(reader, out, prompt)
				if !ok {
					return form
				}
				values[j] = v
				total += v
			}
			if total != belbin.SectionTotal {
				fmt.Fprintf(out, "La seccion suma %d, tiene que sumar %d. Repetila.\n", total, belbin.SectionTotal)
				continue
			}
			for j, v := range values {
				form[belbin.FieldName(belbin.Coordinate{Section: group, Item: j + 1})] = strconv.Itoa(v)
			}
			break
		}
	}
	return form
}

// readInt vuelve a preguntar hasta leer un entero; ok=false si se termino la entrada.
// Una linea vacia cuenta como 0.
func readInt(reader *bufio.Reader, out io.Writer, prompt string) (int, bool) {
	for {
		fmt.Fprint(out, prompt)
		line, err := reader.ReadString('\n')
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			if err != nil {
				return 0, false
			}
			return 0, true
		}
		if v, convErr := strconv.Atoi(trimmed); convErr == nil {
			return v, true
		}
		if err != nil {
			return 0, false
		}
		fmt.Fprintln(out, "Ingresa un numero entero.")
	}
}
