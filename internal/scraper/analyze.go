package scraper

import (
	"strings"
	"time"

	"go-deadline-crawler/internal/filter"
)

// titleSelectors is ordered most specific first; plain h1 is the catch-all.
var titleSelectors = []string{
	"h1.entry-title",
	"h2.entry-title",
	"h1.post-title",
	"article h1",
	"main h1",
	".entry-content h1",
	"h1",
}

const fallbackTitle = "Post Title Not Found"

// Analyze decides whether a fetched page is a live job posting. It returns
// nil when the page has no deadline phrase, scores below the relevance
// gate, or its deadline has already passed. Dates are compared at day
// granularity, so a deadline equal to today is still accepted.
//
// The returned Job has no YouTubeLink yet; video matching happens after
// acceptance.
func Analyze(page *Page, today time.Time) *Job {
	phrase, ok := filter.FindDeadline(page.HTML)
	if !ok {
		return nil
	}

	if filter.RelevanceScore(page.HTML) < filter.MinRelevanceScore {
		return nil
	}

	lastDate, ok := filter.ParseDate(phrase)
	if !ok {
		return nil
	}

	//truncate both sides to midnight before comparing
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	if lastDate.Before(day) {
		return nil
	}

	return &Job{
		Title:    findTitle(page),
		Link:     page.URL,
		LastDate: lastDate,
	}
}

func findTitle(page *Page) string {
	for _, selector := range titleSelectors {
		text := strings.TrimSpace(page.Doc.Find(selector).First().Text())
		if text != "" {
			return text
		}
	}
	return fallbackTitle
}
