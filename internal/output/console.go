package output

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dotcommander/sitescore/internal/analysis"
	"github.com/dotcommander/sitescore/internal/scoring"
)

// ConsoleFormatter formats output for console display
type ConsoleFormatter struct {
	quiet     bool
	verbose   bool
	colorize  bool
	startTime time.Time
}

// NewConsoleFormatter creates a new ConsoleFormatter
func NewConsoleFormatter(quiet, verbose bool) *ConsoleFormatter {
	return &ConsoleFormatter{
		quiet:     quiet,
		verbose:   verbose,
		colorize:  true,
		startTime: time.Now(),
	}
}

// Format formats the analysis report for console output
func (f *ConsoleFormatter) Format(report *analysis.Report) error {
	if f.quiet {
		return nil
	}

	f.printHeader(report)
	f.printDocuments(report)
	f.printAggregates(report)
	if report.Website != nil {
		f.printWebsite(report.Website)
	}
	if report.Competitive != nil {
		f.printCompetitive(report.Competitive)
	}
	f.printConclusion(report)

	return nil
}

func (f *ConsoleFormatter) printHeader(report *analysis.Report) {
	var style lipgloss.Style
	if f.colorize {
		style = lipgloss.NewStyle().Bold(true)
	}
	fmt.Printf("%s (%s mode, %d documents)\n\n",
		style.Render(report.Collection), report.ModeUsed, len(report.Documents))
	if report.FallbackNote != "" {
		f.printNote(report.FallbackNote)
	}
}

func (f *ConsoleFormatter) printDocuments(report *analysis.Report) {
	for _, result := range report.Documents {
		// Flag weak documents; skip healthy ones unless verbose
		weak := result.Scores.Overall < 0.4
		if !weak && !f.verbose {
			continue
		}

		status := "✓"
		if weak {
			status = "✗"
		}

		var docStyle lipgloss.Style
		if f.colorize {
			if weak {
				docStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")) // red
			} else if result.Scores.Overall < 0.6 {
				docStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
			} else {
				docStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")) // green
			}
		}

		fmt.Printf("%s %s  %.3f  [%s]\n", docStyle.Render(status), result.ID, result.Scores.Overall, result.ContentType)

		if f.verbose {
			for _, dim := range scoring.Dimensions {
				fmt.Printf("    %-22s %.3f\n", dim, result.Scores.Dimension(dim))
			}
		}
	}
}

func (f *ConsoleFormatter) printAggregates(report *analysis.Report) {
	fmt.Println()
	fmt.Printf("overall: mean %.3f (min %.3f, max %.3f)\n",
		report.Aggregates.Overall.Mean, report.Aggregates.Overall.Min, report.Aggregates.Overall.Max)
	if f.verbose {
		for _, dim := range scoring.Dimensions {
			stats := report.Aggregates.Dimension(dim)
			fmt.Printf("  %-22s mean %.3f (min %.3f, max %.3f)\n", dim, stats.Mean, stats.Min, stats.Max)
		}
	}
	if report.BestDocumentID != "" {
		fmt.Printf("best: %s  worst: %s\n", report.BestDocumentID, report.WorstDocumentID)
	}
}

func (f *ConsoleFormatter) printWebsite(site *analysis.WebsiteMetrics) {
	fmt.Println()
	var style lipgloss.Style
	if f.colorize {
		style = lipgloss.NewStyle().Bold(true)
	}
	fmt.Printf("%s %.3f\n", style.Render("site score:"), site.SiteScore)
	fmt.Printf("  content coherence    %.3f\n", site.ContentCoherence)
	fmt.Printf("  cta effectiveness    %.3f\n", site.CTAEffectiveness)
	fmt.Printf("  trust building       %.3f\n", site.TrustBuilding)
	fmt.Printf("  content structure    %.3f\n", site.ContentStructure)
}

func (f *ConsoleFormatter) printCompetitive(comp *analysis.CompetitiveReport) {
	fmt.Println()
	for i, group := range comp.Groups {
		marker := "  "
		if i == 0 {
			marker = "★ "
		}
		fmt.Printf("%s%-24s %.3f (%d documents)\n", marker, group.Domain, group.MeanOverall, group.Documents)
	}
	fmt.Printf("\nmarket mean %.3f, stddev %.3f\n", comp.MarketMean, comp.MarketStdDev)
	if len(comp.Opportunities) > 0 {
		fmt.Printf("opportunities: %d documents below market\n", len(comp.Opportunities))
	}
	for _, rec := range comp.Recommendations {
		f.printNote(rec)
	}
}

func (f *ConsoleFormatter) printNote(note string) {
	var style lipgloss.Style
	if f.colorize {
		style = lipgloss.NewStyle().Foreground(lipgloss.Color("3")) // yellow
	}
	fmt.Printf("  ⚠ %s\n", style.Render(note))
}

func (f *ConsoleFormatter) printConclusion(report *analysis.Report) {
	fmt.Println()
	duration := time.Since(f.startTime)
	if report.Aggregates.Overall.Mean >= 0.6 {
		if f.colorize {
			style := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
			fmt.Printf("%s (%v)\n", style.Render("✓ Healthy collection"), duration.Round(time.Millisecond))
		} else {
			fmt.Printf("✓ Healthy collection (%v)\n", duration.Round(time.Millisecond))
		}
	} else {
		fmt.Printf("%d/%d documents scored (%v)\n",
			len(report.Documents), len(report.Documents), duration.Round(time.Millisecond))
	}
}
