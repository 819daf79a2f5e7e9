package output

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/dotcommander/sitescore/internal/analysis"
	"github.com/dotcommander/sitescore/internal/scoring"
)

// MarkdownFormatter formats output as Markdown
type MarkdownFormatter struct {
	verbose    bool
	outputFile string
}

// NewMarkdownFormatter creates a new MarkdownFormatter
func NewMarkdownFormatter(verbose bool, outputFile string) *MarkdownFormatter {
	return &MarkdownFormatter{
		verbose:    verbose,
		outputFile: outputFile,
	}
}

// Format formats the analysis report as Markdown
func (f *MarkdownFormatter) Format(report *analysis.Report) error {
	var builder strings.Builder

	// Header
	builder.WriteString("# Content Quality Report\n\n")
	builder.WriteString(fmt.Sprintf("**Generated:** %s\n\n", time.Now().Format("2006-01-02 15:04:05")))
	if report.Collection != "" {
		builder.WriteString(fmt.Sprintf("**Collection:** %s\n\n", report.Collection))
	}
	builder.WriteString(fmt.Sprintf("**Mode:** %s\n\n", report.ModeUsed))
	if report.FallbackNote != "" {
		builder.WriteString(fmt.Sprintf("> %s\n\n", report.FallbackNote))
	}
	builder.WriteString(strings.Repeat("-", 50) + "\n\n")

	// Summary Table
	builder.WriteString("## Summary\n\n")
	builder.WriteString("| Dimension | Mean | Min | Max |\n")
	builder.WriteString("|-----------|------|-----|-----|\n")
	for _, dim := range scoring.Dimensions {
		stats := report.Aggregates.Dimension(dim)
		builder.WriteString(fmt.Sprintf("| %s | %.3f | %.3f | %.3f |\n",
			dimLabel(dim), stats.Mean, stats.Min, stats.Max))
	}
	builder.WriteString(fmt.Sprintf("| **Overall** | **%.3f** | %.3f | %.3f |\n\n",
		report.Aggregates.Overall.Mean, report.Aggregates.Overall.Min, report.Aggregates.Overall.Max))

	if report.BestDocumentID != "" {
		builder.WriteString(fmt.Sprintf("Best: `%s` · Worst: `%s`\n\n",
			report.BestDocumentID, report.WorstDocumentID))
	}

	// Documents
	builder.WriteString("## Documents\n\n")
	if len(report.Documents) == 0 {
		builder.WriteString("*No documents in collection.*\n\n")
	} else {
		builder.WriteString("| Document | Overall | Type | Words | CTA | Trust |\n")
		builder.WriteString("|----------|---------|------|-------|-----|-------|\n")
		for _, result := range report.Documents {
			cta := ""
			if result.ContainsCTA {
				cta = "yes"
			}
			builder.WriteString(fmt.Sprintf("| %s | %.3f | %s | %d | %s | %d |\n",
				result.ID, result.Scores.Overall, result.ContentType,
				result.WordCount, cta, result.TrustSignals))
		}
		builder.WriteString("\n")
	}

	if f.verbose && len(report.Documents) > 0 {
		builder.WriteString("### Dimension Detail\n\n")
		builder.WriteString("| Document | Precision | Certainty | Structure | Punctuation | Consistency |\n")
		builder.WriteString("|----------|-----------|-----------|-----------|-------------|-------------|\n")
		for _, result := range report.Documents {
			builder.WriteString(fmt.Sprintf("| %s | %.3f | %.3f | %.3f | %.3f | %.3f |\n",
				result.ID,
				result.Scores.WordPrecision, result.Scores.ModalCertainty,
				result.Scores.StructureEfficiency, result.Scores.PunctuationImpact,
				result.Scores.SemanticConsistency))
		}
		builder.WriteString("\n")
	}

	if report.Website != nil {
		f.writeWebsite(&builder, report.Website)
	}
	if report.Competitive != nil {
		f.writeCompetitive(&builder, report.Competitive)
	}

	// Write to file or stdout
	content := builder.String()
	if f.outputFile != "" {
		err := os.WriteFile(f.outputFile, []byte(content), 0644)
		if err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
	} else {
		fmt.Print(content)
	}

	return nil
}

func (f *MarkdownFormatter) writeWebsite(builder *strings.Builder, site *analysis.WebsiteMetrics) {
	builder.WriteString("## Website Metrics\n\n")
	builder.WriteString("| Metric | Score |\n")
	builder.WriteString("|--------|-------|\n")
	builder.WriteString(fmt.Sprintf("| Content Coherence | %.3f |\n", site.ContentCoherence))
	builder.WriteString(fmt.Sprintf("| CTA Effectiveness | %.3f |\n", site.CTAEffectiveness))
	builder.WriteString(fmt.Sprintf("| Trust Building | %.3f |\n", site.TrustBuilding))
	builder.WriteString(fmt.Sprintf("| Content Structure | %.3f |\n", site.ContentStructure))
	builder.WriteString(fmt.Sprintf("| **Site Score** | **%.3f** |\n\n", site.SiteScore))
}

func (f *MarkdownFormatter) writeCompetitive(builder *strings.Builder, comp *analysis.CompetitiveReport) {
	builder.WriteString("## Competitive Analysis\n\n")
	builder.WriteString("| Domain | Documents | Mean Overall | CTA Density | Trust Signals |\n")
	builder.WriteString("|--------|-----------|--------------|-------------|---------------|\n")
	for _, group := range comp.Groups {
		builder.WriteString(fmt.Sprintf("| %s | %d | %.3f | %.2f | %d |\n",
			group.Domain, group.Documents, group.MeanOverall, group.CTADensity, group.TrustSignals))
	}
	builder.WriteString(fmt.Sprintf("\nMarket mean %.3f, standard deviation %.3f\n\n",
		comp.MarketMean, comp.MarketStdDev))

	if len(comp.Opportunities) > 0 {
		builder.WriteString("### Opportunities\n\n")
		for _, id := range comp.Opportunities {
			builder.WriteString(fmt.Sprintf("- `%s`\n", id))
		}
		builder.WriteString("\n")
	}

	if len(comp.Recommendations) > 0 {
		builder.WriteString("### Recommendations\n\n")
		for _, rec := range comp.Recommendations {
			builder.WriteString(fmt.Sprintf("- %s\n", rec))
		}
		builder.WriteString("\n")
	}
}

// dimLabel converts a snake_case dimension name for table display.
func dimLabel(dim string) string {
	parts := strings.Split(dim, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}
