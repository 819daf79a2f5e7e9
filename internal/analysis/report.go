package analysis

import (
	"time"

	"github.com/dotcommander/sitescore/internal/scoring"
)

// DocumentResult pairs one document with its scores and the text-derived
// signals used by the strategy analyzers.
type DocumentResult struct {
	ID           string              `json:"id"`
	Scores       scoring.ScoreVector `json:"scores"`
	ContentType  string              `json:"content_type"`
	WordCount    int                 `json:"word_count"`
	ContainsCTA  bool                `json:"contains_cta"`
	TrustSignals int                 `json:"trust_signals"`
	Domain       string              `json:"site_domain,omitempty"`
}

// DimensionStats holds mean, min, and max for one dimension across a
// collection.
type DimensionStats struct {
	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
}

// Aggregates holds collection-wide statistics per dimension plus overall.
type Aggregates struct {
	WordPrecision       DimensionStats `json:"word_precision"`
	ModalCertainty      DimensionStats `json:"modal_certainty"`
	StructureEfficiency DimensionStats `json:"structure_efficiency"`
	PunctuationImpact   DimensionStats `json:"punctuation_impact"`
	SemanticConsistency DimensionStats `json:"semantic_consistency"`
	Overall             DimensionStats `json:"overall"`
}

// Dimension returns the stats for a named dimension, or the overall
// stats for any unknown name.
func (a Aggregates) Dimension(name string) DimensionStats {
	switch name {
	case scoring.DimWordPrecision:
		return a.WordPrecision
	case scoring.DimModalCertainty:
		return a.ModalCertainty
	case scoring.DimStructureEfficiency:
		return a.StructureEfficiency
	case scoring.DimPunctuationImpact:
		return a.PunctuationImpact
	case scoring.DimSemanticConsistency:
		return a.SemanticConsistency
	}
	return a.Overall
}

// TypeStats summarizes documents sharing a detected content type.
type TypeStats struct {
	Documents   int     `json:"documents"`
	MeanOverall float64 `json:"mean_overall"`
}

// WebsiteMetrics is the website-mode payload: four derived [0,1] metrics
// and their weighted site score.
type WebsiteMetrics struct {
	ContentCoherence float64 `json:"content_coherence"`
	CTAEffectiveness float64 `json:"cta_effectiveness"`
	TrustBuilding    float64 `json:"trust_building"`
	ContentStructure float64 `json:"content_structure"`
	SiteScore        float64 `json:"site_score"`
}

// GroupStat summarizes one site_domain group in competitive mode.
type GroupStat struct {
	Domain       string  `json:"domain"`
	Documents    int     `json:"documents"`
	MeanOverall  float64 `json:"mean_overall"`
	TotalWords   int     `json:"total_words"`
	CTADensity   float64 `json:"cta_density"`
	TrustSignals int     `json:"trust_signals"`
}

// DocumentRank is one entry in the collection-wide ranking.
type DocumentRank struct {
	Rank    int     `json:"rank"`
	ID      string  `json:"id"`
	Domain  string  `json:"domain,omitempty"`
	Overall float64 `json:"overall"`
}

// CompetitiveReport is the competitive-mode payload.
type CompetitiveReport struct {
	Groups          []GroupStat    `json:"groups"`
	Rankings        []DocumentRank `json:"rankings"`
	Opportunities   []string       `json:"opportunities"`
	MarketMean      float64        `json:"market_mean"`
	MarketStdDev    float64        `json:"market_std_dev"`
	Recommendations []string       `json:"recommendations,omitempty"`
}

// Report is the full analysis output returned to the caller.
type Report struct {
	Collection string `json:"collection,omitempty"`
	ModeUsed   Mode   `json:"mode_used"`
	// FallbackNote is set when a requested mode was degraded to
	// individual because the collection lacks the required metadata.
	FallbackNote string `json:"fallback_note,omitempty"`

	// Documents preserves collection insertion order; PerDocument offers
	// id-keyed access to the same vectors.
	Documents   []DocumentResult               `json:"documents"`
	PerDocument map[string]scoring.ScoreVector `json:"per_document"`

	Aggregates      Aggregates           `json:"aggregates"`
	BestDocumentID  string               `json:"best_document_id,omitempty"`
	WorstDocumentID string               `json:"worst_document_id,omitempty"`
	ContentTypes    map[string]TypeStats `json:"content_types,omitempty"`

	Website     *WebsiteMetrics    `json:"website_metrics,omitempty"`
	Competitive *CompetitiveReport `json:"competitive_report,omitempty"`

	GeneratedAt time.Time `json:"generated_at"`
}
