package analysis

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/dotcommander/sitescore/internal/document"
	"github.com/dotcommander/sitescore/internal/lexicon"
	"github.com/dotcommander/sitescore/internal/scoring"
)

// ErrEmptyCollection is returned when a mode that requires documents
// (website, competitive) is requested for an empty collection.
var ErrEmptyCollection = errors.New("collection has no documents")

// Options configures an Engine.
type Options struct {
	// Concurrency bounds the scoring worker pool. Zero means GOMAXPROCS.
	Concurrency int
	// TrustSaturation is the k in the 1-e^(-k*sum) trust curve.
	TrustSaturation float64
	// ExpandSections splits whole markdown documents into sections
	// before website analysis.
	ExpandSections bool
}

// Engine runs the full analysis pipeline over a collection. It holds
// only read-only state and is safe for concurrent use.
type Engine struct {
	scorer          *scoring.Scorer
	lex             *lexicon.Lexicon
	concurrency     int
	trustSaturation float64
	expandSections  bool
}

// NewEngine creates an Engine around a scorer and its lexicon.
func NewEngine(scorer *scoring.Scorer, lex *lexicon.Lexicon, opts Options) *Engine {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = runtime.GOMAXPROCS(0)
	}
	trust := opts.TrustSaturation
	if trust <= 0 {
		trust = 0.25
	}
	return &Engine{
		scorer:          scorer,
		lex:             lex,
		concurrency:     concurrency,
		trustSaturation: trust,
		expandSections:  opts.ExpandSections,
	}
}

// Analyze scores every document and assembles the report for the
// requested mode. Mode auto is resolved by DetectMode; a requested
// website or competitive mode that the collection's metadata cannot
// support degrades to individual with a note in the report rather than
// failing.
func (e *Engine) Analyze(c document.Collection, mode Mode) (*Report, error) {
	if mode == ModeWebsite || mode == ModeCompetitive {
		if len(c.Docs) == 0 {
			return nil, fmt.Errorf("%s analysis: %w", mode, ErrEmptyCollection)
		}
	}

	report := &Report{
		Collection:  c.Name,
		GeneratedAt: time.Now().UTC(),
	}

	// Mode is resolved against the caller's metadata before any section
	// expansion, so synthesized hierarchy fields never flip a plain
	// collection into website mode.
	switch mode {
	case ModeAuto, "":
		mode = DetectMode(c)
	case ModeCompetitive:
		if len(c.DistinctDomains()) < 2 {
			report.FallbackNote = "competitive mode requested but fewer than two site domains present; fell back to individual"
			mode = ModeIndividual
		}
	}

	if mode == ModeWebsite {
		if e.expandSections {
			c = document.ExpandToSections(c)
		}
		if !c.HasHierarchy() {
			report.FallbackNote = "website mode requested but no document carries hierarchical metadata; fell back to individual"
			mode = ModeIndividual
		}
	}
	report.ModeUsed = mode

	results := e.scoreAll(c)
	report.Documents = results
	report.PerDocument = make(map[string]scoring.ScoreVector, len(results))
	for _, r := range results {
		report.PerDocument[r.ID] = r.Scores
	}

	report.Aggregates, report.BestDocumentID, report.WorstDocumentID = Aggregate(results)
	report.ContentTypes = aggregateContentTypes(results)

	switch mode {
	case ModeWebsite:
		report.Website = e.analyzeWebsite(c, results)
	case ModeCompetitive:
		report.Competitive = analyzeCompetitive(results)
	}
	return report, nil
}

// scoreAll scores every document across a bounded worker pool. Results
// land in an index-keyed buffer so the output order always matches
// collection insertion order regardless of completion order.
func (e *Engine) scoreAll(c document.Collection) []DocumentResult {
	results := make([]DocumentResult, len(c.Docs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, e.concurrency)
	for i := range c.Docs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()
			results[i] = e.scoreDocument(c.Docs[i])
		}(i)
	}
	wg.Wait()
	return results
}

// scoreDocument computes the score vector and the text-derived signals
// for one document. Well-typed metadata wins over text detection; a
// mistyped field falls back to detection rather than aborting.
func (e *Engine) scoreDocument(d document.Document) DocumentResult {
	lower := strings.ToLower(d.Text)

	containsCTA := e.lex.ContainsCTA(d.Text)
	if d.Meta.Has(document.KeyContainsCTA) {
		containsCTA = d.Meta.Bool(document.KeyContainsCTA, containsCTA)
	}
	trust := e.lex.CountTrustSignals(d.Text)
	if d.Meta.Has(document.KeyTrustSignals) {
		trust = d.Meta.Int(document.KeyTrustSignals, trust)
	}
	contentType := d.Meta.String(document.KeyContentType, "")
	if contentType == "" {
		contentType = e.lex.DetectContentType(lower)
	}

	return DocumentResult{
		ID:           d.ID,
		Scores:       e.scorer.Score(d.Text),
		ContentType:  contentType,
		WordCount:    d.WordCount(),
		ContainsCTA:  containsCTA,
		TrustSignals: trust,
		Domain:       d.Domain(),
	}
}
