package lexicon

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDetectContentType(t *testing.T) {
	lex := Default()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "tutorial keywords",
			text: "step one of this guide shows how to install; the tutorial continues",
			want: "tutorial",
		},
		{
			name: "technical keywords",
			text: "the api exposes a function whose parameter controls configuration",
			want: "technical",
		},
		{
			name: "legal keywords",
			text: "our attorney handles every injury and accident case in court",
			want: "legal",
		},
		{
			name: "no keyword hits",
			text: "quiet morning walks along empty beaches",
			want: "general",
		},
		{
			name: "empty text",
			text: "",
			want: "general",
		},
		{
			name: "api does not match inside rapid",
			text: "rapid growth continued",
			want: "general",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lex.DetectContentType(tt.text)
			if got != tt.want {
				t.Errorf("DetectContentType(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestDetectContentTypeDeterministicTie(t *testing.T) {
	lex := Default()
	// "review" hits review; "news" hits update. Equal single hits must
	// resolve the same way on every run.
	text := "a review of the update"
	first := lex.DetectContentType(text)
	for i := 0; i < 20; i++ {
		if got := lex.DetectContentType(text); got != first {
			t.Fatalf("DetectContentType not deterministic: %q then %q", first, got)
		}
	}
	if first != "news" {
		t.Errorf("tie should resolve to lexicographically smallest type, got %q", first)
	}
}

func TestCountTrustSignals(t *testing.T) {
	lex := Default()

	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "no signals",
			text: "We sell shoes online.",
			want: 0,
		},
		{
			name: "single signal",
			text: "Our team is fully licensed.",
			want: 1,
		},
		{
			name: "multiple distinct signals",
			text: "Licensed and insured, with 20 years of experience.",
			want: 3,
		},
		{
			name: "pattern counted once regardless of repeats",
			text: "licensed licensed licensed",
			want: 1,
		},
		{
			name: "case insensitive",
			text: "CERTIFIED specialists on staff",
			want: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lex.CountTrustSignals(tt.text); got != tt.want {
				t.Errorf("CountTrustSignals(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}

func TestContainsCTA(t *testing.T) {
	lex := Default()

	tests := []struct {
		name string
		text string
		want bool
	}{
		{"call now", "Call now for a free assessment!", true},
		{"contact without us nearby", "Please write to our support desk", false},
		{"contact us", "Contact us today", true},
		{"schedule consultation with words between", "Schedule your free consultation", true},
		{"plain prose", "The weather was mild all week.", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lex.ContainsCTA(tt.text); got != tt.want {
				t.Errorf("ContainsCTA(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	content := `vague:
  - foo
  - bar
content_types:
  recipe:
    - ingredients
    - oven
ideal_type_count: 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	lex, err := LoadOverrides(path)
	if err != nil {
		t.Fatalf("LoadOverrides() error = %v", err)
	}

	if len(lex.Vague) != 2 || lex.Vague[0] != "foo" {
		t.Errorf("Vague list not replaced: %v", lex.Vague)
	}
	if len(lex.Precise) == 0 {
		t.Error("Precise list should keep defaults when not overridden")
	}
	if _, ok := lex.ContentTypes["recipe"]; !ok {
		t.Error("ContentTypes should merge new keys")
	}
	if _, ok := lex.ContentTypes["tutorial"]; !ok {
		t.Error("ContentTypes should keep default keys")
	}
	if lex.IdealTypeCount != 3 {
		t.Errorf("IdealTypeCount = %d, want 3", lex.IdealTypeCount)
	}
	// Pattern tables must still be usable after a reload.
	if !lex.ContainsCTA("call now") {
		t.Error("CTA patterns should survive override reload")
	}
}

func TestLoadOverridesMissingFile(t *testing.T) {
	if _, err := LoadOverrides(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadOverrides() should fail for a missing file")
	}
}

func TestLoadOverridesBadPattern(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lexicon.yaml")
	if err := os.WriteFile(path, []byte("cta_patterns:\n  - '('\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOverrides(path); err == nil {
		t.Error("LoadOverrides() should reject an invalid pattern")
	}
}
