package output

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dotcommander/sitescore/internal/analysis"
)

// Version is the tool version stamped into report headers.
const Version = "1.0.0"

// JSONFormatter formats output as JSON
type JSONFormatter struct {
	indent     bool
	outputFile string
}

// NewJSONFormatter creates a new JSONFormatter
func NewJSONFormatter(indent bool, outputFile string) *JSONFormatter {
	return &JSONFormatter{
		indent:     indent,
		outputFile: outputFile,
	}
}

// JSONReport wraps the analysis report in a tool header so archived
// reports stay self-describing.
type JSONReport struct {
	Header JSONHeader       `json:"header"`
	Report *analysis.Report `json:"report"`
}

// JSONHeader contains report metadata
type JSONHeader struct {
	Tool      string `json:"tool"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
}

// Format formats the analysis report as JSON
func (f *JSONFormatter) Format(report *analysis.Report) error {
	wrapped := JSONReport{
		Header: JSONHeader{
			Tool:      "sitescore",
			Version:   Version,
			Timestamp: time.Now().Format(time.RFC3339),
		},
		Report: report,
	}

	var jsonBytes []byte
	var err error

	if f.indent {
		jsonBytes, err = json.MarshalIndent(wrapped, "", "  ")
	} else {
		jsonBytes, err = json.Marshal(wrapped)
	}

	if err != nil {
		return fmt.Errorf("error marshaling JSON: %w", err)
	}

	if f.outputFile != "" {
		err = os.WriteFile(f.outputFile, jsonBytes, 0644)
		if err != nil {
			return fmt.Errorf("error writing to file %s: %w", f.outputFile, err)
		}
	} else {
		fmt.Println(string(jsonBytes))
	}

	return nil
}

// ReportFileName builds the default archive name for a saved report.
func ReportFileName(collection string, mode analysis.Mode, at time.Time) string {
	return fmt.Sprintf("%s_%s_%s.json", collection, mode, at.Format("20060102T150405"))
}
