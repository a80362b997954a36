package filter

import (
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	numericDateRegex = regexp.MustCompile(`(\d{1,2})[./-](\d{1,2})[./-](\d{2,4})`)
	//after ", " is collapsed to " ": optional leading day, month name, optional trailing day, 4-digit year
	monthNameDateRegex = regexp.MustCompile(`(?i)(?:(\d{1,2}) )?([a-zA-Z]{3,}) (?:(\d{1,2}) )?(\d{4})`)
)

var monthsByPrefix = map[string]time.Month{
	"jan": time.January, "feb": time.February, "mar": time.March,
	"apr": time.April, "may": time.May, "jun": time.June,
	"jul": time.July, "aug": time.August, "sep": time.September,
	"oct": time.October, "nov": time.November, "dec": time.December,
}

// layouts tried by the last-resort strategy when neither pattern matches;
// dayless month-year forms normalize to the 1st of the month
var fallbackLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"January 2 2006",
	"January 2006",
	"Jan 2006",
}

// ParseDate extracts a calendar date from free text. Three strategies are
// tried in order; the first success wins and failures never panic.
//
// Strategy 1: numeric d[./-]m[./-]y, day before month, 2-digit years are
// 2000-based. Strategy 2: month-name dates like "5 Jan 2025" or
// "Jan 5, 2025". Strategy 3: a short list of standard layouts.
func ParseDate(text string) (time.Time, bool) {
	if text == "" {
		return time.Time{}, false
	}

	if m := numericDateRegex.FindStringSubmatch(text); m != nil {
		day, _ := strconv.Atoi(m[1])
		month, _ := strconv.Atoi(m[2])
		year, _ := strconv.Atoi(m[3])
		if year < 100 {
			year += 2000
		}
		if d, ok := makeUTCDate(year, time.Month(month), day); ok {
			return d, true
		}
	}

	//"jan 5, 2025" and "5 jan 2025" both normalize to day-month-year slots
	collapsed := strings.ReplaceAll(text, ", ", " ")
	if m := monthNameDateRegex.FindStringSubmatch(collapsed); m != nil {
		if month, ok := monthsByPrefix[strings.ToLower(m[2][:3])]; ok {
			dayStr := m[1]
			if dayStr == "" {
				dayStr = m[3]
			}
			if dayStr != "" {
				day, _ := strconv.Atoi(dayStr)
				year, _ := strconv.Atoi(m[4])
				if d, ok := makeUTCDate(year, month, day); ok {
					return d, true
				}
			}
		}
	}

	trimmed := strings.TrimSpace(text)
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}

	return time.Time{}, false
}

// makeUTCDate builds a UTC midnight date and rejects values that only
// survive through calendar wraparound (month 13, day 32 and friends).
func makeUTCDate(year int, month time.Month, day int) (time.Time, bool) {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	if d.Year() != year || d.Month() != month || d.Day() != day {
		return time.Time{}, false
	}
	return d, true
}

// NormalizeText folds diacritics and lowercases, so keyword matching does
// not break on accented text.
func NormalizeText(str string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	result, _, _ := transform.String(t, str)
	return strings.ToLower(result)
}
