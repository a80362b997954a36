package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindDeadline(t *testing.T) {
	tests := []struct {
		name   string
		html   string
		want   string
		wantOK bool
	}{
		{
			name:   "last date with colon",
			html:   "Last Date: 15/10/2025 apply soon",
			want:   "15/10/2025",
			wantOK: true,
		},
		{
			name:   "apply by with dash",
			html:   "please apply by - 5 Jan 2025.",
			want:   "5 Jan 2025",
			wantOK: true,
		},
		{
			name:   "closing date mixed case",
			html:   "CLOSING DATE 30.06.2026",
			want:   "30.06.2026",
			wantOK: true,
		},
		{
			name:   "no deadline keyword",
			html:   "submit your application before 15/10/2025",
			wantOK: false,
		},
		{
			name:   "keyword without a date-like tail",
			html:   "the deadline will be announced",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FindDeadline(tt.html)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestRelevanceScore(t *testing.T) {
	tests := []struct {
		name string
		html string
		want int
	}{
		{"empty", "", 0},
		{"single keyword", "competitive salary offered", 1},
		{"keyword counted once", "salary salary salary", 1},
		{
			name: "full posting",
			html: "Qualification: BSc. Experience: 2 years. Salary: good. Location: remote. Apply now. Responsibilities include...",
			want: 6,
		},
		{"case insensitive", "SALARY and LOCATION", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RelevanceScore(tt.html))
		})
	}
}
