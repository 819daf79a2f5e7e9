package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/dotcommander/sitescore/internal/analysis"
	"github.com/dotcommander/sitescore/internal/config"
	"github.com/dotcommander/sitescore/internal/corpus"
	"github.com/dotcommander/sitescore/internal/discovery"
	"github.com/dotcommander/sitescore/internal/document"
	"github.com/dotcommander/sitescore/internal/lexicon"
	"github.com/dotcommander/sitescore/internal/output"
	"github.com/dotcommander/sitescore/internal/schema"
	"github.com/dotcommander/sitescore/internal/scoring"
)

var saveReport bool

var analyzeCmd = &cobra.Command{
	Use:   "analyze [collection-or-path]",
	Short: "Score a document collection",
	Long: `The analyze command scores every document in a collection and prints
an aggregate report.

The argument is tried as a corpus collection name first; if no such
collection exists, it is treated as a filesystem path and markdown/text
files are discovered under it. With no argument the --root directory is
analyzed.

Mode auto inspects collection metadata: more than one site_domain
selects competitive analysis, hierarchical section metadata selects
website analysis, and everything else falls back to individual scoring.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAnalyze(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func init() {
	analyzeCmd.Flags().BoolVar(&saveReport, "save", false, "Archive the JSON report next to the working directory")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(args []string) error {
	cfg, err := config.LoadConfig(rootPath)
	if err != nil {
		return fmt.Errorf("error loading configuration: %w", err)
	}
	if concurrency > 0 {
		cfg.Concurrency = concurrency
	}

	mode, err := analysis.ParseMode(cfg.Mode)
	if err != nil {
		return err
	}

	lex, err := loadLexicon(cfg)
	if err != nil {
		return err
	}

	collection, err := resolveCollection(cfg, args)
	if err != nil {
		return err
	}

	if cfg.Verbose && !cfg.Quiet {
		printMetadataWarnings(collection)
	}

	scorer := scoring.NewScorer(lex, cfg.Weights, cfg.Scoring)
	engine := analysis.NewEngine(scorer, lex, analysis.Options{
		Concurrency:     cfg.Concurrency,
		TrustSaturation: cfg.TrustSaturation,
		ExpandSections:  cfg.ExpandSections,
	})

	report, err := engine.Analyze(collection, mode)
	if err != nil {
		return err
	}

	if saveReport {
		archive := output.ReportFileName(report.Collection, report.ModeUsed, time.Now())
		if err := output.NewJSONFormatter(true, archive).Format(report); err != nil {
			return fmt.Errorf("error archiving report: %w", err)
		}
		if !cfg.Quiet {
			fmt.Fprintf(os.Stderr, "report saved to %s\n", archive)
		}
	}

	formatter, err := output.NewFormatter(cfg.Format, cfg.Quiet, cfg.Verbose, cfg.Output)
	if err != nil {
		return err
	}
	if err := formatter.Format(report); err != nil {
		return fmt.Errorf("error formatting output: %w", err)
	}
	return nil
}

// loadLexicon returns the built-in lexicon, optionally merged with the
// configured YAML override file.
func loadLexicon(cfg *config.Config) (*lexicon.Lexicon, error) {
	if cfg.LexiconPath == "" {
		return lexicon.Default(), nil
	}
	lex, err := lexicon.LoadOverrides(cfg.LexiconPath)
	if err != nil {
		return nil, fmt.Errorf("error loading lexicon overrides: %w", err)
	}
	return lex, nil
}

// resolveCollection maps the command argument to a document collection:
// a known corpus collection name wins, anything else is a filesystem
// path to discover documents under.
func resolveCollection(cfg *config.Config, args []string) (document.Collection, error) {
	if len(args) == 1 {
		store, err := corpus.Open(cfg.CorpusPath)
		if err == nil {
			defer store.Close()
			c, err := store.LoadCollection(args[0])
			if err == nil && c.Len() > 0 {
				return c, nil
			}
		}
		if _, statErr := os.Stat(args[0]); statErr != nil {
			return document.Collection{}, fmt.Errorf("no corpus collection or path named %q", args[0])
		}
		return discoverCollection(args[0])
	}
	return discoverCollection(cfg.Root)
}

func discoverCollection(root string) (document.Collection, error) {
	fd := discovery.NewFileDiscovery(root, discovery.DefaultPatterns)
	c, err := fd.Discover()
	if err != nil {
		return document.Collection{}, fmt.Errorf("error discovering documents under %s: %w", root, err)
	}
	return c, nil
}

// printMetadataWarnings runs the advisory schema validation over every
// document's metadata and reports findings to stderr.
func printMetadataWarnings(c document.Collection) {
	validator := schema.NewValidator()
	for _, d := range c.Docs {
		for _, w := range validator.Validate(d.ID, d.Meta) {
			fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}
}
