package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	rootPath     string
	quiet        bool
	verbose      bool
	outputFormat string
	outputFile   string
	modeFlag     string
	concurrency  int
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

var rootCmd = &cobra.Command{
	Use:   "sitescore",
	Short: "Sitescore - content quality scoring for document collections",
	Long: `Sitescore scores documents on five quality dimensions (word precision,
modal certainty, structure efficiency, punctuation impact, semantic
consistency) and aggregates the results per collection.

By default, sitescore analyzes the current directory in auto mode, which
picks a strategy from the collection's metadata: several site domains
trigger competitive analysis, hierarchical metadata triggers website
analysis, anything else is scored individually.

Documents can also be ingested into a local corpus database and analyzed
by collection name.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runAnalyze(nil); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitFunc(1)
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Directory or file to analyze (defaults to current directory)")
	rootCmd.PersistentFlags().StringVarP(&modeFlag, "mode", "m", "auto", "Analysis mode (auto|individual|website|competitive)")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "console", "Output format for reports (console|json|markdown)")
	rootCmd.PersistentFlags().StringVarP(&outputFile, "output", "o", "", "Output file for reports (requires --format)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().IntVarP(&concurrency, "concurrency", "c", 0, "Scoring worker count (0 = number of CPUs)")

	viper.BindPFlag("root", rootCmd.PersistentFlags().Lookup("root"))
	viper.BindPFlag("mode", rootCmd.PersistentFlags().Lookup("mode"))
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))
	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}
