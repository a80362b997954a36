package scraper

import (
	"errors"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrNoCandidates is returned when the seed page yields no job-like links.
var ErrNoCandidates = errors.New("could not find any potential job post links")

// linkSelectors targets anchors inside likely content containers plus
// heading-level anchors.
const linkSelectors = "article a, .post a, .job-listing a, h2 a, h3 a"

var urlKeywords = []string{"job", "career", "vacancy", "hiring", "position"}

// DiscoverLinks scans the seed document for candidate job post links.
// Only same-origin links survive, and only when the anchor text or the URL
// itself mentions one of the job keywords. The result preserves document
// order with duplicates removed.
func DiscoverLinks(doc *goquery.Document, seedURL string) ([]string, error) {
	seed, err := url.Parse(seedURL)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find(linkSelectors).Each(func(_ int, anchor *goquery.Selection) {
		href, exists := anchor.Attr("href")
		if !exists || href == "" {
			return
		}

		ref, err := url.Parse(strings.TrimSpace(href))
		if err != nil {
			return //silently skip unresolvable hrefs
		}
		resolved := seed.ResolveReference(ref)

		//same-site restriction: never follow cross-domain links
		if resolved.Scheme != seed.Scheme || resolved.Host != seed.Host {
			return
		}

		absolute := resolved.String()
		text := strings.ToLower(anchor.Text())
		lowerURL := strings.ToLower(absolute)

		matched := false
		for _, kw := range urlKeywords {
			if strings.Contains(text, kw) || strings.Contains(lowerURL, kw) {
				matched = true
				break
			}
		}
		if !matched {
			return
		}

		if !seen[absolute] {
			seen[absolute] = true
			links = append(links, absolute)
		}
	})

	if len(links) == 0 {
		return nil, ErrNoCandidates
	}
	return links, nil
}
