package analysis

import (
	"testing"

	"github.com/dotcommander/sitescore/internal/document"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		in      string
		want    Mode
		wantErr bool
	}{
		{"auto", ModeAuto, false},
		{"", ModeAuto, false},
		{"Individual", ModeIndividual, false},
		{"  WEBSITE  ", ModeWebsite, false},
		{"competitive", ModeCompetitive, false},
		{"sideways", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMode(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseMode(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestDetectMode(t *testing.T) {
	tests := []struct {
		name string
		docs []document.Document
		want Mode
	}{
		{
			name: "multiple domains wins over hierarchy",
			docs: []document.Document{
				{Meta: document.Metadata{document.KeySiteDomain: "a.com", document.KeyHierarchy: "1.0"}},
				{Meta: document.Metadata{document.KeySiteDomain: "b.com"}},
			},
			want: ModeCompetitive,
		},
		{
			name: "single domain with hierarchy",
			docs: []document.Document{
				{Meta: document.Metadata{document.KeySiteDomain: "a.com", document.KeyHierarchy: "1.0"}},
				{Meta: document.Metadata{document.KeySiteDomain: "a.com", document.KeyHierarchy: "1.1"}},
			},
			want: ModeWebsite,
		},
		{
			name: "content type counts as hierarchy",
			docs: []document.Document{
				{Meta: document.Metadata{document.KeyContentType: "tutorial"}},
			},
			want: ModeWebsite,
		},
		{
			name: "bare documents",
			docs: []document.Document{
				{ID: "a", Text: "plain"},
				{ID: "b", Text: "plain"},
			},
			want: ModeIndividual,
		},
		{
			name: "empty collection",
			docs: nil,
			want: ModeIndividual,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetectMode(document.Collection{Docs: tt.docs})
			if got != tt.want {
				t.Errorf("DetectMode() = %q, want %q", got, tt.want)
			}
		})
	}
}
