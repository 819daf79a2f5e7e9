package scoring

import (
	"testing"

	"github.com/dotcommander/sitescore/internal/lexicon"
)

func newTestScorer() *Scorer {
	return NewScorer(lexicon.Default(), DefaultWeights(), DefaultParams())
}

func checkBounds(t *testing.T, v ScoreVector) {
	t.Helper()
	for _, dim := range append([]string{DimOverall}, Dimensions...) {
		got := v.Dimension(dim)
		if got < 0 || got > 1 {
			t.Errorf("%s = %v, outside [0,1]", dim, got)
		}
	}
}

func TestScoreBounds(t *testing.T) {
	s := newTestScorer()

	texts := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"whitespace", "   \n\t  "},
		{"single word", "hello"},
		{"marketing burst", "Call now!!! Best deals ever!!! Act today!!!"},
		{"vague ramble", "This thing is really very pretty much kind of stuff, you know."},
		{"precise technical", "The method specifically validates exactly three measurable parameters. Each parameter is explicitly certified."},
		{"long structured", "First, we review the data. However, the results vary. Therefore, we conclude carefully.\n\nSecond, we measure precision. Furthermore, the certified process is validated.\n\nFinally, in conclusion, everything holds."},
		{"punctuation free", "plain words with no punctuation at all"},
		{"unicode", "Résumé naïve façade — coöperate"},
	}

	for _, tt := range texts {
		t.Run(tt.name, func(t *testing.T) {
			checkBounds(t, s.Score(tt.text))
		})
	}
}

func TestScoreEmptyText(t *testing.T) {
	s := newTestScorer()
	for _, text := range []string{"", "   ", "\n\n\t"} {
		if got := s.Score(text); got != (ScoreVector{}) {
			t.Errorf("Score(%q) = %+v, want all-zero vector", text, got)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	s := newTestScorer()
	text := "The certified team specifically validates every measurable result. However, some sections might need review.\n\nContact us today to learn more."
	first := s.Score(text)
	for i := 0; i < 10; i++ {
		if got := s.Score(text); got != first {
			t.Fatalf("Score() not deterministic: %+v then %+v", first, got)
		}
	}
}

func TestWordPrecisionOrdering(t *testing.T) {
	s := newTestScorer()
	vague := s.Score("This thing is really very pretty much just stuff and something.")
	precise := s.Score("The audit specifically measured exactly four validated certified results.")
	if precise.WordPrecision <= vague.WordPrecision {
		t.Errorf("precise text word_precision %v should exceed vague text %v",
			precise.WordPrecision, vague.WordPrecision)
	}
}

func TestModalCertainty(t *testing.T) {
	s := newTestScorer()

	tests := []struct {
		name string
		text string
		// want ranges rather than exact values; epsilon shifts ratios
		// slightly below round numbers
		min, max float64
	}{
		{
			name: "no modal language at all",
			text: "Red fog. Calm water.",
			min:  0.5, max: 0.5,
		},
		{
			name: "pure certainty",
			text: "We will always deliver. Results are guaranteed.",
			min:  0.9, max: 1,
		},
		{
			name: "pure hedging",
			text: "Perhaps we might help. Maybe you could wait.",
			min:  0, max: 0.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := s.Score(tt.text).ModalCertainty
			if got < tt.min || got > tt.max {
				t.Errorf("ModalCertainty = %v, want within [%v, %v]", got, tt.min, tt.max)
			}
		})
	}
}

func TestModalCertaintyMatchesInflectedForms(t *testing.T) {
	s := newTestScorer()
	// "This" contains "is"; marker matching is substring-based so short
	// markers hit inside larger words.
	got := s.Score("This approach demonstrates measurable results.").ModalCertainty
	if got <= 0.5 {
		t.Errorf("ModalCertainty = %v, want above neutral for certainty-laden text", got)
	}
}

func TestSemanticConsistencySingleSegment(t *testing.T) {
	s := newTestScorer()
	got := s.Score("One lonely sentence about gardens.").SemanticConsistency
	if got != 1 {
		t.Errorf("SemanticConsistency = %v, want 1 for a single segment", got)
	}
}

func TestSemanticConsistencyOrdering(t *testing.T) {
	s := newTestScorer()
	consistent := s.Score("The garden roses bloom yearly. Garden roses need yearly pruning. Yearly pruning keeps roses blooming.")
	scattered := s.Score("The garden roses bloom yearly. Quantum processors encode superposition states. Medieval cathedrals dominate skylines.")
	if consistent.SemanticConsistency <= scattered.SemanticConsistency {
		t.Errorf("consistent text %v should exceed scattered text %v",
			consistent.SemanticConsistency, scattered.SemanticConsistency)
	}
}

func TestPunctuationImpact(t *testing.T) {
	s := newTestScorer()

	if got := s.Score("no punctuation here").PunctuationImpact; got != 0 {
		t.Errorf("PunctuationImpact = %v, want 0 for punctuation-free text", got)
	}

	varied := s.Score("Wait: is this real? Yes, truly (verified). Results follow.")
	shouty := s.Score("Buy now! Huge sale! Act fast! Call today! Do not wait!")
	if varied.PunctuationImpact <= shouty.PunctuationImpact {
		t.Errorf("varied punctuation %v should beat exclamation-heavy %v",
			varied.PunctuationImpact, shouty.PunctuationImpact)
	}
}

func TestOverallIsWeightedCombination(t *testing.T) {
	// All weight on one dimension makes overall track it exactly.
	w := Weights{ModalCertainty: 1}
	s := NewScorer(lexicon.Default(), w, DefaultParams())
	v := s.Score("We will always deliver guaranteed results.")
	if v.Overall != v.ModalCertainty {
		t.Errorf("Overall = %v, want ModalCertainty %v under single-dimension weighting",
			v.Overall, v.ModalCertainty)
	}
}

func TestWeightsNormalized(t *testing.T) {
	tests := []struct {
		name string
		in   Weights
	}{
		{"zero value falls back to defaults", Weights{}},
		{"unnormalized sums rescale", Weights{WordPrecision: 2, ModalCertainty: 2, StructureEfficiency: 2, PunctuationImpact: 2, SemanticConsistency: 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.in.normalized()
			sum := w.WordPrecision + w.ModalCertainty + w.StructureEfficiency +
				w.PunctuationImpact + w.SemanticConsistency
			if sum < 0.999 || sum > 1.001 {
				t.Errorf("normalized weights sum to %v, want 1", sum)
			}
		})
	}
}

func TestScoreScenarioOrdering(t *testing.T) {
	s := newTestScorer()

	promo := s.Score("Contact us today! Call now!!!")
	caseStudy := s.Score("Our methodology achieved a 47% improvement in client outcomes. " +
		"This demonstrates measurable, validated results through specific documented processes.")

	if caseStudy.WordPrecision <= promo.WordPrecision {
		t.Errorf("case study word_precision %v should exceed promo %v",
			caseStudy.WordPrecision, promo.WordPrecision)
	}
	if caseStudy.ModalCertainty <= promo.ModalCertainty {
		t.Errorf("case study modal_certainty %v should exceed promo %v",
			caseStudy.ModalCertainty, promo.ModalCertainty)
	}
	if caseStudy.Overall <= promo.Overall {
		t.Errorf("case study overall %v should exceed promo %v",
			caseStudy.Overall, promo.Overall)
	}
}
