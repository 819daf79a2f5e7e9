// Package scoring computes the five content quality dimension scores
// and the weighted overall score for a single document. Scoring is a
// pure function of the document text plus the shared lexicon tables:
// deterministic, total over any input including the empty string, and
// safe to run concurrently across documents.
package scoring

// ScoreVector holds the five dimension scores and the derived overall
// score for one document. Every field lies in [0,1].
type ScoreVector struct {
	WordPrecision       float64 `json:"word_precision"`
	ModalCertainty      float64 `json:"modal_certainty"`
	StructureEfficiency float64 `json:"structure_efficiency"`
	PunctuationImpact   float64 `json:"punctuation_impact"`
	SemanticConsistency float64 `json:"semantic_consistency"`
	Overall             float64 `json:"overall"`
}

// Dimension names as they appear in reports.
const (
	DimWordPrecision       = "word_precision"
	DimModalCertainty      = "modal_certainty"
	DimStructureEfficiency = "structure_efficiency"
	DimPunctuationImpact   = "punctuation_impact"
	DimSemanticConsistency = "semantic_consistency"
	DimOverall             = "overall"
)

// Dimensions lists the five dimension names in report order.
var Dimensions = []string{
	DimWordPrecision,
	DimModalCertainty,
	DimStructureEfficiency,
	DimPunctuationImpact,
	DimSemanticConsistency,
}

// Dimension returns the named dimension score, or the overall score for
// DimOverall. Unknown names return 0.
func (v ScoreVector) Dimension(name string) float64 {
	switch name {
	case DimWordPrecision:
		return v.WordPrecision
	case DimModalCertainty:
		return v.ModalCertainty
	case DimStructureEfficiency:
		return v.StructureEfficiency
	case DimPunctuationImpact:
		return v.PunctuationImpact
	case DimSemanticConsistency:
		return v.SemanticConsistency
	case DimOverall:
		return v.Overall
	}
	return 0
}

// Weights controls how the five dimension scores combine into the
// overall score. Weights are normalized before use, so callers may
// supply any non-negative values.
type Weights struct {
	WordPrecision       float64 `json:"word_precision" mapstructure:"word_precision"`
	ModalCertainty      float64 `json:"modal_certainty" mapstructure:"modal_certainty"`
	StructureEfficiency float64 `json:"structure_efficiency" mapstructure:"structure_efficiency"`
	PunctuationImpact   float64 `json:"punctuation_impact" mapstructure:"punctuation_impact"`
	SemanticConsistency float64 `json:"semantic_consistency" mapstructure:"semantic_consistency"`
}

// DefaultWeights returns the equal weighting of 0.2 per dimension.
func DefaultWeights() Weights {
	return Weights{
		WordPrecision:       0.2,
		ModalCertainty:      0.2,
		StructureEfficiency: 0.2,
		PunctuationImpact:   0.2,
		SemanticConsistency: 0.2,
	}
}

// normalized returns the weights scaled to sum to 1. All-zero weights
// fall back to the default equal weighting.
func (w Weights) normalized() Weights {
	sum := w.WordPrecision + w.ModalCertainty + w.StructureEfficiency +
		w.PunctuationImpact + w.SemanticConsistency
	if sum <= 0 {
		return DefaultWeights()
	}
	return Weights{
		WordPrecision:       w.WordPrecision / sum,
		ModalCertainty:      w.ModalCertainty / sum,
		StructureEfficiency: w.StructureEfficiency / sum,
		PunctuationImpact:   w.PunctuationImpact / sum,
		SemanticConsistency: w.SemanticConsistency / sum,
	}
}

// Params holds the tunable constants of the dimension algorithms.
// They are configuration, not hardwired values; see config defaults.
type Params struct {
	// VaguePenalty weights vague-word hits against precise-word hits in
	// the word precision score.
	VaguePenalty float64 `mapstructure:"vague_penalty"`
	// PrecisionGain scales the precise-minus-vague token ratio before
	// clamping, since lexicon hits are sparse relative to token counts.
	PrecisionGain float64 `mapstructure:"precision_gain"`
	// ModalEpsilon prevents division by zero in the certainty ratio.
	ModalEpsilon float64 `mapstructure:"modal_epsilon"`
	// VarianceTargetLow and VarianceTargetHigh bound the sentence-length
	// variance band that scores 1.0; outside the band the score decays.
	VarianceTargetLow  float64 `mapstructure:"variance_target_low"`
	VarianceTargetHigh float64 `mapstructure:"variance_target_high"`
	// VarianceDecay controls how fast the variance sub-score falls off
	// outside the target band.
	VarianceDecay float64 `mapstructure:"variance_decay"`
	// IdealParagraphs is the paragraph count that earns a full paragraph
	// sub-score.
	IdealParagraphs int `mapstructure:"ideal_paragraphs"`
	// Structure sub-weights for the variance, paragraph, and transition
	// sub-metrics; normalized before use.
	StructureVariance   float64 `mapstructure:"structure_variance"`
	StructureParagraph  float64 `mapstructure:"structure_paragraph"`
	StructureTransition float64 `mapstructure:"structure_transition"`
	// PunctuationMarks is the reference count of distinct marks for a
	// full diversity sub-score.
	PunctuationMarks int `mapstructure:"punctuation_marks"`
	// DensityGain scales raw punctuation density before clamping.
	DensityGain float64 `mapstructure:"density_gain"`
	// ExclamationThreshold is the exclamations-per-sentence rate above
	// which the penalty curve engages; ExclamationSteepness controls how
	// quickly the penalty grows past it.
	ExclamationThreshold float64 `mapstructure:"exclamation_threshold"`
	ExclamationSteepness float64 `mapstructure:"exclamation_steepness"`
	// MinSegmentWords is the minimum sentence length counted as a
	// segment for semantic consistency.
	MinSegmentWords int `mapstructure:"min_segment_words"`
}

// DefaultParams returns the calibrated default constants.
func DefaultParams() Params {
	return Params{
		VaguePenalty:         1.0,
		PrecisionGain:        4.0,
		ModalEpsilon:         1e-6,
		VarianceTargetLow:    8,
		VarianceTargetHigh:   30,
		VarianceDecay:        25,
		IdealParagraphs:      6,
		StructureVariance:    0.4,
		StructureParagraph:   0.3,
		StructureTransition:  0.3,
		PunctuationMarks:     8,
		DensityGain:          8,
		ExclamationThreshold: 0.5,
		ExclamationSteepness: 1.0,
		MinSegmentWords:      3,
	}
}
