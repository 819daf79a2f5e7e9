package scoring

import (
	"strings"

	"github.com/dotcommander/sitescore/internal/lexicon"
)

// Scorer computes ScoreVectors for document text. A single Scorer is
// safe for concurrent use: the lexicon tables are read-only and scoring
// keeps no per-call state.
type Scorer struct {
	lex     *lexicon.Lexicon
	weights Weights
	params  Params
}

// NewScorer creates a Scorer with the given lexicon and weights.
// Zero-value weights fall back to the default equal weighting.
func NewScorer(lex *lexicon.Lexicon, weights Weights, params Params) *Scorer {
	return &Scorer{
		lex:     lex,
		weights: weights.normalized(),
		params:  params,
	}
}

// Weights returns the normalized weights in effect.
func (s *Scorer) Weights() Weights { return s.weights }

// Score computes the full ScoreVector for a text. Empty or whitespace
// text yields the all-zero vector.
func (s *Scorer) Score(text string) ScoreVector {
	if strings.TrimSpace(text) == "" {
		return ScoreVector{}
	}

	lower := strings.ToLower(text)
	sentences := SplitSentences(text)

	v := ScoreVector{
		WordPrecision:       s.wordPrecision(lower),
		ModalCertainty:      s.modalCertainty(lower),
		StructureEfficiency: s.structureEfficiency(text, lower, sentences),
		PunctuationImpact:   s.punctuationImpact(text, sentences),
		SemanticConsistency: s.semanticConsistency(sentences),
	}
	v.Overall = s.weights.WordPrecision*v.WordPrecision +
		s.weights.ModalCertainty*v.ModalCertainty +
		s.weights.StructureEfficiency*v.StructureEfficiency +
		s.weights.PunctuationImpact*v.PunctuationImpact +
		s.weights.SemanticConsistency*v.SemanticConsistency
	v.Overall = clamp01(v.Overall)
	return v
}

// wordPrecision scores vocabulary precision: precise-lexicon hits minus
// penalized vague hits, normalized by token count and scaled by the
// precision gain before clamping.
func (s *Scorer) wordPrecision(lower string) float64 {
	tokens := strings.Fields(lower)
	if len(tokens) == 0 {
		return 0
	}

	precise := 0
	vague := 0
	for _, tok := range tokens {
		w := strings.Trim(tok, `.,!?;:()[]{}"'`)
		if contains(s.lex.Precise, w) {
			precise++
		}
		if contains(s.lex.Vague, w) {
			vague++
		}
	}
	// Multi-word constructs are matched against the full text.
	for _, phrase := range s.lex.WeakModifiers {
		vague += strings.Count(lower, phrase)
	}
	for _, phrase := range s.lex.Fillers {
		if strings.Contains(phrase, " ") {
			vague += strings.Count(lower, phrase)
		}
	}

	raw := (float64(precise) - float64(vague)*s.params.VaguePenalty) / float64(len(tokens))
	return clamp01(raw * s.params.PrecisionGain)
}

// modalCertainty scores confidence: certainty markers against hedges.
// Absence of any modal language is undetermined certainty, which maps
// to the neutral midpoint 0.5 rather than 0.
func (s *Scorer) modalCertainty(lower string) float64 {
	certainty := countMarkers(lower, s.lex.Certain) + countMarkers(lower, s.lex.Strong)
	hedge := countMarkers(lower, s.lex.Uncertain) + countMarkers(lower, s.lex.Hedging)

	if certainty+hedge == 0 {
		return 0.5
	}
	return clamp01(float64(certainty) / (float64(certainty+hedge) + s.params.ModalEpsilon))
}

// countMarkers counts substring occurrences of each marker. Substring
// matching intentionally catches inflected forms ("is" inside "this is",
// "demonstrates" inside "demonstrated"), trading a little noise for
// recall on short marker words.
func countMarkers(lower string, markers []string) int {
	n := 0
	for _, m := range markers {
		n += strings.Count(lower, m)
	}
	return n
}

// structureEfficiency combines sentence-length variance, paragraph
// presence, and transition-word density into a weighted sum.
func (s *Scorer) structureEfficiency(text, lower string, sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}

	varScore := s.varianceScore(sentences)

	paragraphs := SplitParagraphs(text)
	paraScore := clamp01(float64(len(paragraphs)) / float64(max(1, s.params.IdealParagraphs)))

	transitions := 0
	for _, t := range s.lex.Transitions {
		transitions += strings.Count(lower, t)
	}
	transScore := clamp01(float64(transitions) / float64(max(1, len(paragraphs))))

	wSum := s.params.StructureVariance + s.params.StructureParagraph + s.params.StructureTransition
	if wSum <= 0 {
		wSum = 1
	}
	return clamp01((s.params.StructureVariance*varScore +
		s.params.StructureParagraph*paraScore +
		s.params.StructureTransition*transScore) / wSum)
}

// varianceScore maps sentence-length variance to [0,1]: full score
// inside the target band, decaying smoothly outside it. A single
// sentence has undefined variance and scores a neutral 0.5.
func (s *Scorer) varianceScore(sentences []string) float64 {
	if len(sentences) < 2 {
		return 0.5
	}
	lengths := make([]float64, len(sentences))
	mean := 0.0
	for i, sent := range sentences {
		lengths[i] = float64(len(strings.Fields(sent)))
		mean += lengths[i]
	}
	mean /= float64(len(lengths))

	variance := 0.0
	for _, l := range lengths {
		variance += (l - mean) * (l - mean)
	}
	variance /= float64(len(lengths) - 1)

	low, high := s.params.VarianceTargetLow, s.params.VarianceTargetHigh
	if variance >= low && variance <= high {
		return 1
	}
	dist := low - variance
	if variance > high {
		dist = variance - high
	}
	decay := s.params.VarianceDecay
	if decay <= 0 {
		decay = 1
	}
	return 1 / (1 + dist/decay)
}

// punctuationMarks is the reference set for diversity measurement.
var punctuationMarks = []rune{'.', ',', '!', '?', ';', ':', '(', ')', '-', '"'}

// punctuationImpact scores punctuation diversity and density, with a
// diminishing penalty once exclamation density passes the threshold.
// Text with no punctuation at all scores 0.
func (s *Scorer) punctuationImpact(text string, sentences []string) float64 {
	distinct := 0
	total := 0
	exclamations := 0
	for _, mark := range punctuationMarks {
		n := strings.Count(text, string(mark))
		if n > 0 {
			distinct++
		}
		total += n
		if mark == '!' {
			exclamations = n
		}
	}
	if total == 0 {
		return 0
	}

	ref := max(1, s.params.PunctuationMarks)
	diversity := clamp01(float64(distinct) / float64(ref))
	density := clamp01(float64(total) / float64(len(text)) * s.params.DensityGain)

	score := 0.6*diversity + 0.4*density

	// Smooth penalty: 1 at or below the threshold, asymptotically toward
	// zero as exclamation density grows, never a cliff.
	exclRate := float64(exclamations) / float64(max(1, len(sentences)))
	if excess := exclRate - s.params.ExclamationThreshold; excess > 0 {
		score /= 1 + excess*s.params.ExclamationSteepness
	}
	return clamp01(score)
}

// semanticConsistency is the mean pairwise lexical overlap between
// sentence segments. Fewer than two segments means the document has no
// internal partition and is trivially self-consistent.
func (s *Scorer) semanticConsistency(sentences []string) float64 {
	var segments []map[string]bool
	for _, sent := range sentences {
		if len(strings.Fields(sent)) < s.params.MinSegmentWords {
			continue
		}
		segments = append(segments, contentWords(sent))
	}
	if len(segments) < 2 {
		return 1
	}

	sum := 0.0
	pairs := 0
	for i := 0; i < len(segments); i++ {
		for j := i + 1; j < len(segments); j++ {
			sum += jaccard(segments[i], segments[j])
			pairs++
		}
	}
	return clamp01(sum / float64(pairs))
}

func contains(list []string, w string) bool {
	for _, item := range list {
		if item == w {
			return true
		}
	}
	return false
}
