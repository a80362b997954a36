package youtube

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
)

func TestMatchVideo_TitleContainment(t *testing.T) {
	index := []Video{
		{Title: "weekly news roundup", URL: "https://www.youtube.com/watch?v=V0"},
		{Title: "staff engineer hiring 2025", URL: "https://www.youtube.com/watch?v=V1"},
	}

	got := MatchVideo("Staff Engineer", index)
	assert.Equal(t, "https://www.youtube.com/watch?v=V1", got)
}

func TestMatchVideo_TokenThreshold(t *testing.T) {
	//no containment match: the video titles never contain the full job title
	index := []Video{
		{Title: "backend engineer walkthrough golang senior roles", URL: "https://www.youtube.com/watch?v=V2"},
	}

	//4 tokens longer than 3 chars: senior, backend, golang, engineer -> 4 hits
	assert.Equal(t, "https://www.youtube.com/watch?v=V2",
		MatchVideo("Senior Backend Golang Engineer", index))

	//only 2 shared tokens (senior, golang) -> below threshold, no match
	assert.Equal(t, "",
		MatchVideo("Senior Golang Wizard Needed", index))
}

func TestMatchVideo_FirstMatchWins(t *testing.T) {
	index := []Video{
		{Title: "backend engineer golang senior part one", URL: "https://www.youtube.com/watch?v=A"},
		{Title: "backend engineer golang senior part two", URL: "https://www.youtube.com/watch?v=B"},
	}

	//both reach the threshold; the earlier entry is taken, no best-score scan
	assert.Equal(t, "https://www.youtube.com/watch?v=A",
		MatchVideo("Senior Backend Golang Engineer", index))
}

func TestMatchVideo_EmptyInputs(t *testing.T) {
	assert.Equal(t, "", MatchVideo("", []Video{{Title: "x", URL: "u"}}))
	assert.Equal(t, "", MatchVideo("Staff Engineer", nil))
}

func mustDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("could not parse test html: %v", err)
	}
	return doc
}

func TestFindEmbedded(t *testing.T) {
	tests := []struct {
		name string
		html string
		want string
	}{
		{
			name: "embed iframe wins over anchor",
			html: `<a href="https://www.youtube.com/watch?v=anchor">link</a>
				<iframe src="https://www.youtube.com/embed/abc123"></iframe>`,
			want: "https://www.youtube.com/embed/abc123",
		},
		{
			name: "watch anchor",
			html: `<a href="https://www.youtube.com/watch?v=xyz">watch</a>`,
			want: "https://www.youtube.com/watch?v=xyz",
		},
		{
			name: "short link anchor",
			html: `<a href="https://youtu.be/short1">watch</a>`,
			want: "https://youtu.be/short1",
		},
		{
			name: "unrelated iframe ignored",
			html: `<iframe src="https://player.vimeo.com/video/1"></iframe>`,
			want: "",
		},
		{
			name: "nothing embedded",
			html: `<p>plain text post</p>`,
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FindEmbedded(mustDoc(t, tt.html)))
		})
	}
}
