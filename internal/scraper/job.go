// Core types shared across the crawl pipeline.

package scraper

import (
	"time"

	"github.com/PuerkitoBio/goquery"
)

type Job struct {
	Title       string    `json:"title"`
	Link        string    `json:"link"`
	LastDate    time.Time `json:"lastDate"`
	YouTubeLink string    `json:"youtubeLink,omitempty"`
}

// Page is one fetched document. It only lives for a single
// fetch-then-analyze step and is not retained afterwards.
type Page struct {
	URL  string
	HTML string
	Doc  *goquery.Document
}
