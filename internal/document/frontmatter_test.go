package document

import (
	"strings"
	"testing"
)

func TestParseFrontmatter(t *testing.T) {
	content := `---
site_domain: example.com
importance_weight: 2.0
contains_cta: true
---
# Body

Text after the frontmatter.`

	fm, err := ParseFrontmatter(content)
	if err != nil {
		t.Fatalf("ParseFrontmatter() error = %v", err)
	}
	if got := fm.Data.String("site_domain", ""); got != "example.com" {
		t.Errorf("site_domain = %q, want example.com", got)
	}
	if got := fm.Data.Float("importance_weight", 0); got != 2.0 {
		t.Errorf("importance_weight = %v, want 2.0", got)
	}
	if !fm.Data.Bool("contains_cta", false) {
		t.Error("contains_cta should parse as true")
	}
	if !strings.Contains(fm.Body, "# Body") {
		t.Errorf("body lost: %q", fm.Body)
	}
	if strings.Contains(fm.Body, "site_domain") {
		t.Errorf("frontmatter leaked into body: %q", fm.Body)
	}
}

func TestParseFrontmatterAbsent(t *testing.T) {
	content := "Just text, no delimiters."
	fm, err := ParseFrontmatter(content)
	if err != nil {
		t.Fatalf("ParseFrontmatter() error = %v", err)
	}
	if len(fm.Data) != 0 {
		t.Errorf("Data = %v, want empty", fm.Data)
	}
	if fm.Body != content {
		t.Errorf("Body = %q, want original content", fm.Body)
	}
}

func TestParseFrontmatterUnclosed(t *testing.T) {
	content := "---\nkey: value\nno closing delimiter"
	fm, err := ParseFrontmatter(content)
	if err != nil {
		t.Fatalf("ParseFrontmatter() error = %v", err)
	}
	if len(fm.Data) != 0 || fm.Body != content {
		t.Errorf("unclosed frontmatter should return content unchanged, got %+v", fm)
	}
}

func TestParseFrontmatterInvalidYAML(t *testing.T) {
	content := "---\n: : :\n---\nbody"
	if _, err := ParseFrontmatter(content); err == nil {
		t.Error("ParseFrontmatter() should report malformed YAML")
	}
}
