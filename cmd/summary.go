package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/dotcommander/sitescore/internal/analysis"
	"github.com/dotcommander/sitescore/internal/config"
	"github.com/dotcommander/sitescore/internal/scoring"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [collection-or-path]",
	Short: "Print a compact quality overview of a collection",
	Long: `The summary command scores a collection in auto mode and prints a
condensed overview: score distribution, per-content-type counts, and the
lowest scoring documents. Use analyze for the full per-document report.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSummary(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(args []string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if concurrency > 0 {
		cfg.Concurrency = concurrency
	}

	lex, err := loadLexicon(cfg)
	if err != nil {
		return err
	}

	collection, err := resolveCollection(cfg, args)
	if err != nil {
		return err
	}

	scorer := scoring.NewScorer(lex, cfg.Weights, cfg.Scoring)
	engine := analysis.NewEngine(scorer, lex, analysis.Options{
		Concurrency:     cfg.Concurrency,
		TrustSaturation: cfg.TrustSaturation,
		ExpandSections:  cfg.ExpandSections,
	})

	report, err := engine.Analyze(collection, analysis.ModeAuto)
	if err != nil {
		return err
	}

	printSummaryReport(report)
	return nil
}

// summaryStyles holds the styles used by the summary report.
type summaryStyles struct {
	header lipgloss.Style
	strong lipgloss.Style
	fair   lipgloss.Style
	weak   lipgloss.Style
}

func newSummaryStyles() summaryStyles {
	return summaryStyles{
		header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		strong: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		fair:   lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		weak:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	}
}

// boxWidth is the interior width of the summary box, between the two
// border runes and their padding spaces.
const boxWidth = 57

// boxRow prints one bordered row. Padding is computed on the plain text
// before any styling so ANSI escape bytes never shift the right border;
// style, when non-nil, wraps the already padded text.
func boxRow(text string, style *lipgloss.Style) {
	pad := boxWidth - utf8.RuneCountInString(text)
	if pad < 0 {
		pad = 0
	}
	if style != nil {
		text = style.Render(text)
	}
	fmt.Printf("║ %s%s ║\n", text, strings.Repeat(" ", pad))
}

func printSummaryReport(report *analysis.Report) {
	styles := newSummaryStyles()

	fmt.Println()
	fmt.Println(styles.header.Render("╔═══════════════════════════════════════════════════════════╗"))
	fmt.Println(styles.header.Render("║               COLLECTION QUALITY SUMMARY                  ║"))
	fmt.Println(styles.header.Render("╠═══════════════════════════════════════════════════════════╣"))

	boxRow(fmt.Sprintf("Documents Analyzed: %d", len(report.Documents)), nil)
	boxRow(fmt.Sprintf("Mode: %s", report.ModeUsed), nil)
	boxRow(fmt.Sprintf("Overall: mean %.3f | min %.3f | max %.3f",
		report.Aggregates.Overall.Mean,
		report.Aggregates.Overall.Min,
		report.Aggregates.Overall.Max), nil)

	printScoreDistribution(report, styles)
	printContentTypes(report, styles)
	printLowestScoring(report, styles)

	fmt.Println(styles.header.Render("╚═══════════════════════════════════════════════════════════╝"))
	fmt.Println()
}

func printScoreDistribution(report *analysis.Report, styles summaryStyles) {
	fmt.Println(styles.header.Render("╠───────────────────────────────────────────────────────────╣"))
	boxRow("SCORE DISTRIBUTION", nil)

	var strong, fair, weak int
	for _, d := range report.Documents {
		switch {
		case d.Scores.Overall >= 0.6:
			strong++
		case d.Scores.Overall >= 0.4:
			fair++
		default:
			weak++
		}
	}

	total := len(report.Documents)
	if total == 0 {
		total = 1
	}
	bands := []struct {
		label string
		count int
		style *lipgloss.Style
	}{
		{"Strong (>=0.60)", strong, &styles.strong},
		{"Fair   (>=0.40)", fair, &styles.fair},
		{"Weak   (<0.40) ", weak, &styles.weak},
	}
	for _, b := range bands {
		boxRow(fmt.Sprintf("  %s: %4d (%5.1f%%)",
			b.label, b.count, float64(b.count)/float64(total)*100), b.style)
	}
}

func printContentTypes(report *analysis.Report, styles summaryStyles) {
	if len(report.ContentTypes) == 0 {
		return
	}

	fmt.Println(styles.header.Render("╠───────────────────────────────────────────────────────────╣"))
	boxRow("CONTENT TYPES", nil)

	names := make([]string, 0, len(report.ContentTypes))
	for name := range report.ContentTypes {
		names = append(names, name)
	}
	// Most common type first, ties by name.
	sort.Slice(names, func(i, j int) bool {
		ci, cj := report.ContentTypes[names[i]], report.ContentTypes[names[j]]
		if ci.Documents != cj.Documents {
			return ci.Documents > cj.Documents
		}
		return names[i] < names[j]
	})

	for _, name := range names {
		ts := report.ContentTypes[name]
		boxRow(fmt.Sprintf("  %-16s %4d docs   mean %.3f", name, ts.Documents, ts.MeanOverall), nil)
	}
}

func printLowestScoring(report *analysis.Report, styles summaryStyles) {
	if len(report.Documents) == 0 {
		return
	}

	fmt.Println(styles.header.Render("╠───────────────────────────────────────────────────────────╣"))
	boxRow("LOWEST SCORING DOCUMENTS", nil)

	ranked := make([]analysis.DocumentResult, len(report.Documents))
	copy(ranked, report.Documents)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Scores.Overall < ranked[j].Scores.Overall
	})

	for i, d := range ranked {
		if i >= 5 {
			break
		}
		style := &styles.fair
		if d.Scores.Overall < 0.4 {
			style = &styles.weak
		}
		id := d.ID
		if len(id) > 40 {
			id = "..." + id[len(id)-37:]
		}
		boxRow(fmt.Sprintf("  %d. %-40s %.3f", i+1, id, d.Scores.Overall), style)
	}
}
