package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/dotcommander/sitescore/internal/analysis"
	"github.com/dotcommander/sitescore/internal/scoring"
)

// Helper function to capture stdout
func captureStdout(t *testing.T, fn func()) string {
	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func sampleReport() *analysis.Report {
	return &analysis.Report{
		Collection: "site",
		ModeUsed:   analysis.ModeWebsite,
		Documents: []analysis.DocumentResult{
			{
				ID:          "home",
				ContentType: "business",
				WordCount:   120,
				ContainsCTA: true,
				Scores:      scoring.ScoreVector{WordPrecision: 0.5, ModalCertainty: 0.7, Overall: 0.65},
			},
			{
				ID:          "about",
				ContentType: "general",
				WordCount:   80,
				Scores:      scoring.ScoreVector{WordPrecision: 0.3, ModalCertainty: 0.5, Overall: 0.35},
			},
		},
		PerDocument: map[string]scoring.ScoreVector{
			"home":  {Overall: 0.65},
			"about": {Overall: 0.35},
		},
		Aggregates: analysis.Aggregates{
			Overall: analysis.DimensionStats{Mean: 0.5, Min: 0.35, Max: 0.65},
		},
		BestDocumentID:  "home",
		WorstDocumentID: "about",
		Website: &analysis.WebsiteMetrics{
			ContentCoherence: 0.6,
			CTAEffectiveness: 0.5,
			TrustBuilding:    0.4,
			ContentStructure: 0.2,
			SiteScore:        0.465,
		},
		GeneratedAt: time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestNewFormatter(t *testing.T) {
	for _, format := range []string{"console", "json", "markdown"} {
		if _, err := NewFormatter(format, false, false, ""); err != nil {
			t.Errorf("NewFormatter(%q) error = %v", format, err)
		}
	}
	if _, err := NewFormatter("xml", false, false, ""); err == nil {
		t.Error("NewFormatter should reject unknown formats")
	}
}

func TestJSONFormatterStdout(t *testing.T) {
	output := captureStdout(t, func() {
		if err := NewJSONFormatter(false, "").Format(sampleReport()); err != nil {
			t.Errorf("Format() error = %v", err)
		}
	})

	var wrapped JSONReport
	if err := json.Unmarshal([]byte(output), &wrapped); err != nil {
		t.Fatalf("Failed to parse JSON: %v", err)
	}
	if wrapped.Header.Tool != "sitescore" {
		t.Errorf("Tool = %q, want sitescore", wrapped.Header.Tool)
	}
	if wrapped.Report.ModeUsed != analysis.ModeWebsite {
		t.Errorf("ModeUsed = %q, want website", wrapped.Report.ModeUsed)
	}
	if len(wrapped.Report.Documents) != 2 {
		t.Errorf("Documents length = %d, want 2", len(wrapped.Report.Documents))
	}
	if wrapped.Report.Website == nil || wrapped.Report.Website.SiteScore != 0.465 {
		t.Errorf("Website payload lost: %+v", wrapped.Report.Website)
	}
}

func TestJSONFormatterFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")
	if err := NewJSONFormatter(true, path).Format(sampleReport()); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	var wrapped JSONReport
	if err := json.Unmarshal(data, &wrapped); err != nil {
		t.Fatalf("Failed to parse written JSON: %v", err)
	}
	if wrapped.Report.BestDocumentID != "home" {
		t.Errorf("BestDocumentID = %q, want home", wrapped.Report.BestDocumentID)
	}
}

func TestMarkdownFormatter(t *testing.T) {
	output := captureStdout(t, func() {
		if err := NewMarkdownFormatter(true, "").Format(sampleReport()); err != nil {
			t.Errorf("Format() error = %v", err)
		}
	})

	for _, want := range []string{
		"# Content Quality Report",
		"**Collection:** site",
		"## Summary",
		"| Word Precision |",
		"## Documents",
		"| home | 0.650 | business | 120 | yes |",
		"## Website Metrics",
		"| **Site Score** | **0.465** |",
		"### Dimension Detail",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
}

func TestMarkdownFormatterCompetitive(t *testing.T) {
	report := sampleReport()
	report.Website = nil
	report.ModeUsed = analysis.ModeCompetitive
	report.Competitive = &analysis.CompetitiveReport{
		Groups: []analysis.GroupStat{
			{Domain: "a.com", Documents: 2, MeanOverall: 0.6, CTADensity: 0.5, TrustSignals: 4},
		},
		Rankings:        []analysis.DocumentRank{{Rank: 1, ID: "home", Domain: "a.com", Overall: 0.65}},
		Opportunities:   []string{"about"},
		MarketMean:      0.5,
		MarketStdDev:    0.15,
		Recommendations: []string{"Top performer: a.com"},
	}

	output := captureStdout(t, func() {
		if err := NewMarkdownFormatter(false, "").Format(report); err != nil {
			t.Errorf("Format() error = %v", err)
		}
	})

	for _, want := range []string{
		"## Competitive Analysis",
		"| a.com | 2 | 0.600 |",
		"### Opportunities",
		"`about`",
		"### Recommendations",
	} {
		if !strings.Contains(output, want) {
			t.Errorf("markdown output missing %q", want)
		}
	}
	if strings.Contains(output, "Dimension Detail") {
		t.Error("non-verbose markdown should omit the dimension detail table")
	}
}

func TestConsoleFormatter(t *testing.T) {
	output := captureStdout(t, func() {
		if err := NewConsoleFormatter(false, true).Format(sampleReport()); err != nil {
			t.Errorf("Format() error = %v", err)
		}
	})

	for _, want := range []string{"site", "home", "about", "site score:", "best: home"} {
		if !strings.Contains(output, want) {
			t.Errorf("console output missing %q", want)
		}
	}
}

func TestConsoleFormatterQuiet(t *testing.T) {
	output := captureStdout(t, func() {
		if err := NewConsoleFormatter(true, false).Format(sampleReport()); err != nil {
			t.Errorf("Format() error = %v", err)
		}
	})
	if output != "" {
		t.Errorf("quiet console output = %q, want none", output)
	}
}

func TestReportFileName(t *testing.T) {
	at := time.Date(2026, 8, 29, 14, 30, 5, 0, time.UTC)
	got := ReportFileName("site", analysis.ModeWebsite, at)
	want := "site_website_20260829T143005.json"
	if got != want {
		t.Errorf("ReportFileName() = %q, want %q", got, want)
	}
}
