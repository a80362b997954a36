package youtube

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"go-deadline-crawler/internal/filter"
)

// minTokenMatches is how many >3-char title words a video must share
// before the token fallback accepts it.
const minTokenMatches = 3

// MatchVideo finds a video for the job title in the pre-fetched index.
// Whole-title containment wins outright; otherwise the first video sharing
// at least minTokenMatches long words is taken. First match wins in both
// passes, there is no global best-score selection.
func MatchVideo(jobTitle string, index []Video) string {
	if jobTitle == "" || len(index) == 0 {
		return ""
	}

	lowerTitle := filter.NormalizeText(jobTitle)
	for _, video := range index {
		if strings.Contains(video.Title, lowerTitle) {
			return video.URL
		}
	}

	var words []string
	for _, w := range strings.Fields(lowerTitle) {
		if len(w) > 3 {
			words = append(words, w)
		}
	}

	for _, video := range index {
		count := 0
		for _, w := range words {
			if strings.Contains(video.Title, w) {
				count++
			}
		}
		if count >= minTokenMatches {
			return video.URL
		}
	}
	return ""
}

// FindEmbedded pulls a YouTube link straight out of the posting page:
// an embedded player frame first, then a plain watch/short link.
func FindEmbedded(doc *goquery.Document) string {
	if src, ok := doc.Find(`iframe[src*="youtube.com/embed/"]`).First().Attr("src"); ok && src != "" {
		return src
	}
	if href, ok := doc.Find(`a[href*="youtube.com/watch"], a[href*="youtu.be/"]`).First().Attr("href"); ok && href != "" {
		return href
	}
	return ""
}
