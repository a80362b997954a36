package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFetchHTML_Direct(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "<html><body>direct</body></html>")
	}))
	defer srv.Close()

	f := NewFetcher("", false, time.Second)
	html, err := f.FetchHTML(context.Background(), srv.URL)

	assert.NoError(t, err)
	assert.Contains(t, html, "direct")
}

func TestFetchHTML_RelayEnvelope(t *testing.T) {
	var gotTarget string
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotTarget = r.URL.Query().Get("url")
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"contents": "<html><body>relayed</body></html>", "status": {"http_code": 200}}`)
	}))
	defer relay.Close()

	f := NewFetcher(relay.URL, true, time.Second)
	html, err := f.FetchHTML(context.Background(), "https://example.com/careers")

	assert.NoError(t, err)
	assert.Equal(t, "https://example.com/careers", gotTarget)
	assert.Contains(t, html, "relayed")
}

func TestFetchHTML_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	f := NewFetcher("", false, time.Second)
	_, err := f.FetchHTML(context.Background(), srv.URL)

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, http.StatusNotFound, fetchErr.StatusCode)
}

func TestFetchHTML_BadRelayEnvelope(t *testing.T) {
	relay := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "this is not json")
	}))
	defer relay.Close()

	f := NewFetcher(relay.URL, true, time.Second)
	_, err := f.FetchHTML(context.Background(), "https://example.com/")

	var fetchErr *FetchError
	assert.ErrorAs(t, err, &fetchErr)
}

func TestFetchPage_ParsesDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><h1 class="entry-title">Hello</h1></body></html>`)
	}))
	defer srv.Close()

	f := NewFetcher("", false, time.Second)
	page, err := f.FetchPage(context.Background(), srv.URL)

	assert.NoError(t, err)
	assert.Equal(t, srv.URL, page.URL)
	assert.Equal(t, "Hello", page.Doc.Find("h1.entry-title").Text())
}
