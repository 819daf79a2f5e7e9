package scoring

import (
	"regexp"
	"strings"
)

var sentenceRe = regexp.MustCompile(`[.!?]+`)

// SplitSentences splits text on sentence-ending punctuation runs,
// dropping empty fragments.
func SplitSentences(text string) []string {
	var out []string
	for _, s := range sentenceRe.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// SplitParagraphs splits text on blank lines, dropping empty fragments.
func SplitParagraphs(text string) []string {
	var out []string
	for _, p := range strings.Split(text, "\n\n") {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

// stopWords are excluded from content-word sets when measuring lexical
// overlap between segments.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "and": true, "or": true, "but": true,
	"in": true, "on": true, "at": true, "to": true, "for": true, "of": true,
	"with": true, "by": true, "this": true, "that": true, "these": true,
	"those": true, "is": true, "are": true, "was": true, "were": true,
	"be": true, "been": true, "have": true, "has": true, "had": true,
	"do": true, "does": true, "did": true, "will": true, "would": true,
	"could": true, "should": true, "can": true, "may": true, "might": true,
	"from": true, "they": true, "their": true, "there": true, "into": true,
}

// contentWords extracts the set of meaningful words from a sentence:
// alphabetic, longer than three letters, not a stop word.
func contentWords(sentence string) map[string]bool {
	words := make(map[string]bool)
	for _, raw := range strings.Fields(strings.ToLower(sentence)) {
		w := strings.Trim(raw, `.,!?;:()[]{}"'`)
		if len(w) <= 3 || stopWords[w] || !isAlpha(w) {
			continue
		}
		words[w] = true
	}
	return words
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return s != ""
}

// jaccard returns the Jaccard similarity of two word sets. Two empty
// sets are trivially identical.
func jaccard(a, b map[string]bool) float64 {
	if len(a) == 0 && len(b) == 0 {
		return 1
	}
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	inter := 0
	for w := range a {
		if b[w] {
			inter++
		}
	}
	union := len(a) + len(b) - inter
	return float64(inter) / float64(union)
}

// TextSimilarity is the lexical-overlap similarity of two texts, used
// for adjacent-section coherence in website analysis.
func TextSimilarity(a, b string) float64 {
	return jaccard(contentWords(a), contentWords(b))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
