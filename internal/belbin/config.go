package belbin

import "fmt"

// CheckConfiguration validates the static tables once, at startup. Every defect found is
// listed in the returned *ConfigurationError.
func CheckConfiguration(q Questionnaire, traits []TraitDefinition, table BandTable) error {
	var problems []string
	report := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if q.Len() == 0 {
		report("questionnaire has no sections")
	}
	for si, s := range q.sections {
		if len(s.Items) == 0 {
			report("section %d %q has no items", si+1, s.Name)
		}
	}
	if len(traits) == 0 {
		report("no traits defined")
	}

	seenCode := make(map[string]bool, len(traits))
	claimedBy := make(map[Coordinate]string)
	for _, t := range traits {
		if t.Code == "" {
			report("trait with empty code")
			continue
		}
		if seenCode[t.Code] {
			report("duplicate trait code %s", t.Code)
			continue
		}
		seenCode[t.Code] = true

		if len(t.Coordinates) != q.Len() {
			report("trait %s has %d coordinates, want one per section (%d)", t.Code, len(t.Coordinates), q.Len())
		}
		perSection := make(map[int]bool, len(t.Coordinates))
		for _, c := range t.Coordinates {
			if !q.Contains(c) {
				report("trait %s references %s outside the questionnaire", t.Code, c)
				continue
			}
			if perSection[c.Section] {
				report("trait %s uses section %d more than once", t.Code, c.Section)
			}
			perSection[c.Section] = true
			if other, ok := claimedBy[c]; ok {
				report("item %s is claimed by both %s and %s", c, other, t.Code)
				continue
			}
			claimedBy[c] = t.Code
		}

		problems = append(problems, checkBands(t.Code, table[t.Code])...)
	}

	for code := range table {
		if !seenCode[code] {
			report("band table for unknown trait %s", code)
		}
	}

	if len(problems) > 0 {
		return &ConfigurationError{Problems: problems}
	}
	return nil
}

func checkBands(code string, bands []Band) []string {
	if len(bands) == 0 {
		return []string{fmt.Sprintf("trait %s has no bands", code)}
	}
	var problems []string
	if bands[0].Low <= 0 {
		problems = append(problems, fmt.Sprintf("trait %s: lowest band must start above zero, got %d", code, bands[0].Low))
	}
	for i, b := range bands {
		if b.Level == LevelNone {
			problems = append(problems, fmt.Sprintf("trait %s: band %d has no level", code, i+1))
		}
		if b.Low > b.High {
			problems = append(problems, fmt.Sprintf("trait %s: band %d is empty [%d,%d]", code, i+1, b.Low, b.High))
		}
		if i == 0 {
			continue
		}
		prev := bands[i-1]
		if b.Low <= prev.High {
			problems = append(problems, fmt.Sprintf("trait %s: band %d overlaps band %d", code, i+1, i))
		}
		if b.Level <= prev.Level {
			problems = append(problems, fmt.Sprintf("trait %s: band %d level %s does not rise above %s", code, i+1, b.Level, prev.Level))
		}
	}
	if last := bands[len(bands)-1]; last.High != Unbounded {
		problems = append(problems, fmt.Sprintf("trait %s: last band must be unbounded, ends at %d", code, last.High))
	}
	return problems
}
