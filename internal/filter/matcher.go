package filter

import (
	"regexp"
	"strings"
)

// deadlineRegex captures the free-text phrase that follows a
// deadline-indicating keyword, ending in 1-4 digits.
var deadlineRegex = regexp.MustCompile(`(?i)(?:last date|closing date|deadline|apply by)[\s:.\-]*([\w\s,./\-]+\d{1,4})`)

// jobKeywords are the topical markers counted by RelevanceScore. The
// "responsibilit" stem covers responsibility/responsibilities.
var jobKeywords = []string{"qualification", "experience", "salary", "location", "apply", "responsibilit"}

// MinRelevanceScore is the accept gate: pages scoring lower are treated
// as false positives (navigation pages with a date-like string).
const MinRelevanceScore = 2

// FindDeadline returns the trimmed deadline phrase from raw HTML, or
// ok=false when no deadline keyword is present.
func FindDeadline(html string) (string, bool) {
	m := deadlineRegex.FindStringSubmatch(html)
	if m == nil {
		return "", false
	}
	phrase := strings.TrimSpace(m[1])
	if phrase == "" {
		return "", false
	}
	return phrase, true
}

// RelevanceScore counts how many job keywords appear anywhere in the page.
func RelevanceScore(html string) int {
	text := NormalizeText(html)
	score := 0
	for _, kw := range jobKeywords {
		if strings.Contains(text, kw) {
			score++
		}
	}
	return score
}
