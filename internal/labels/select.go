package labels

import (
	"strings"
	"unicode"
)

// Scoring weights. Higher total wins; ties keep the earlier candidate.
const (
	perCharPenalty    = 0.1
	parenthesesPen    = 4.0
	upperInitialBonus = 2.0
	perHyphenPenalty  = 1.0
	diacriticsBonus   = 2.0
)

// Clean collapses runs of whitespace and trims the label.
func Clean(label string) string {
	return strings.Join(strings.Fields(label), " ")
}

// SelectBest returns the preferred display label among candidates. Candidates
// are cleaned first; empty ones are skipped. Returns "" when nothing remains.
func SelectBest(candidates []string) string {
	best := ""
	bestScore := 0.0
	for _, candidate := range candidates {
		cleaned := Clean(candidate)
		if cleaned == "" {
			continue
		}
		s := score(cleaned)
		if best == "" || s > bestScore {
			best = cleaned
			bestScore = s
		}
	}
	return best
}

func score(label string) float64 {
	s := -perCharPenalty * float64(len([]rune(label)))
	if strings.ContainsAny(label, "()") {
		s -= parenthesesPen
	}
	if first := []rune(label)[0]; unicode.IsUpper(first) {
		s += upperInitialBonus
	}
	s -= perHyphenPenalty * float64(strings.Count(label, "-"))
	if strings.ContainsAny(label, "äöüßÄÖÜ") {
		s += diacriticsBonus
	}
	return s
}
