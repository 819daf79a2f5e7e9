// Package output renders analysis reports for the console and for
// machine-readable formats.
package output

import (
	"fmt"

	"github.com/dotcommander/sitescore/internal/analysis"
)

// Formatter renders one analysis report.
type Formatter interface {
	Format(report *analysis.Report) error
}

// NewFormatter returns the formatter for a format name.
func NewFormatter(format string, quiet, verbose bool, outputFile string) (Formatter, error) {
	switch format {
	case "console":
		return NewConsoleFormatter(quiet, verbose), nil
	case "json":
		return NewJSONFormatter(true, outputFile), nil
	case "markdown":
		return NewMarkdownFormatter(verbose, outputFile), nil
	}
	return nil, fmt.Errorf("unknown output format: %s", format)
}
