package scraper

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// FetchError reports a transport-level failure or a non-success status.
type FetchError struct {
	URL        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to fetch %s: %v", e.URL, e.Err)
	}
	return fmt.Sprintf("failed to fetch %s: status %d", e.URL, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

// relayEnvelope is the JSON wrapper returned by the CORS relay
// (https://api.allorigins.win/get?url=...). The raw HTML sits in Contents.
type relayEnvelope struct {
	Contents string `json:"contents"`
}

type Fetcher struct {
	client   *http.Client
	relayURL string
	useRelay bool
}

func NewFetcher(relayURL string, useRelay bool, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client:   &http.Client{Timeout: timeout},
		relayURL: relayURL,
		useRelay: useRelay,
	}
}

// FetchHTML downloads the raw HTML of targetURL, going through the relay
// when the fetcher was built with useRelay. No retries: a failed fetch is
// final for that URL within the run.
func (f *Fetcher) FetchHTML(ctx context.Context, targetURL string) (string, error) {
	fetchURL := targetURL
	if f.useRelay {
		fetchURL = f.relayURL + "?url=" + url.QueryEscape(targetURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fetchURL, nil)
	if err != nil {
		return "", &FetchError{URL: targetURL, Err: err}
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", &FetchError{URL: targetURL, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &FetchError{URL: targetURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &FetchError{URL: targetURL, Err: err}
	}

	if !f.useRelay {
		return string(body), nil
	}

	//relay wraps the page in a JSON envelope
	var envelope relayEnvelope
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", &FetchError{URL: targetURL, Err: fmt.Errorf("bad relay envelope: %w", err)}
	}
	return envelope.Contents, nil
}

// FetchPage fetches targetURL and parses it into a queryable document.
func (f *Fetcher) FetchPage(ctx context.Context, targetURL string) (*Page, error) {
	html, err := f.FetchHTML(ctx, targetURL)
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, &FetchError{URL: targetURL, Err: fmt.Errorf("parse HTML failed: %w", err)}
	}

	return &Page{URL: targetURL, HTML: html, Doc: doc}, nil
}
