// Package analysis orchestrates the scoring engine: it scores every
// document in a collection, detects or validates the analysis mode, and
// builds the final report with aggregate statistics and the
// mode-specific payload.
package analysis

import (
	"fmt"
	"strings"

	"github.com/dotcommander/sitescore/internal/document"
)

// Mode selects the analysis strategy applied to a collection.
type Mode string

const (
	ModeAuto        Mode = "auto"
	ModeIndividual  Mode = "individual"
	ModeWebsite     Mode = "website"
	ModeCompetitive Mode = "competitive"
)

// ParseMode parses a mode selector case-insensitively. The empty string
// means auto.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ModeAuto, nil
	case "individual":
		return ModeIndividual, nil
	case "website":
		return ModeWebsite, nil
	case "competitive":
		return ModeCompetitive, nil
	}
	return "", fmt.Errorf("unknown analysis mode %q (want auto, individual, website, or competitive)", s)
}

// DetectMode chooses a strategy from collection metadata. The decision
// table is ordered; the first matching rule wins:
//
//  1. More than one distinct site_domain means the user is comparing
//     competitors, even if hierarchy metadata is also present.
//  2. Any hierarchical metadata on a single domain means single-site
//     structural analysis.
//  3. Otherwise, individual document scoring.
func DetectMode(c document.Collection) Mode {
	if len(c.DistinctDomains()) > 1 {
		return ModeCompetitive
	}
	if c.HasHierarchy() {
		return ModeWebsite
	}
	return ModeIndividual
}
