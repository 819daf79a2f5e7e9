// Package lexicon provides the static reference tables used by content
// quality scoring: vocabulary precision lists, modal certainty markers,
// transition words, trust-signal patterns, and CTA patterns.
//
// The default tables are loaded once and shared read-only across all
// scoring goroutines. Deployments can override individual lists via a
// YAML file (see LoadOverrides).
package lexicon

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Lexicon holds every word list and pattern table used by scoring and
// analysis. All fields are treated as immutable after construction.
type Lexicon struct {
	// Vocabulary precision lists.
	Vague         []string `yaml:"vague"`
	Precise       []string `yaml:"precise"`
	WeakModifiers []string `yaml:"weak_modifiers"`
	Fillers       []string `yaml:"fillers"`

	// Modal certainty markers.
	Certain   []string `yaml:"certain"`
	Uncertain []string `yaml:"uncertain"`
	Hedging   []string `yaml:"hedging"`
	Strong    []string `yaml:"strong"`

	// Structural transition words.
	Transitions []string `yaml:"transitions"`

	// Trust-signal and call-to-action regular expressions.
	TrustSignals []string `yaml:"trust_signals"`
	CTAPatterns  []string `yaml:"cta_patterns"`

	// Content-type keyword tables for type detection.
	ContentTypes map[string][]string `yaml:"content_types"`

	// IdealTypeCount is the reference size of a well-varied content-type
	// mix, used to normalize the content structure metric.
	IdealTypeCount int `yaml:"ideal_type_count"`

	trustRe []*regexp.Regexp
	ctaRe   []*regexp.Regexp
}

// Default returns the built-in lexicon with all pattern tables compiled.
func Default() *Lexicon {
	lex := &Lexicon{
		Vague:         []string{"thing", "stuff", "something", "anything", "everything", "nothing", "very", "really", "quite", "pretty"},
		Precise:       []string{"specifically", "precisely", "exactly", "particularly", "namely", "explicitly", "definitively", "specific", "measurable", "validated", "proven", "certified", "licensed", "guaranteed"},
		WeakModifiers: []string{"kind of", "sort of", "pretty much", "more or less", "basically", "generally"},
		Fillers:       []string{"um", "uh", "you know", "i mean"},

		Certain:   []string{"will", "is", "are", "must", "definitely", "certainly", "clearly", "obviously", "demonstrates", "guarantee", "ensure"},
		Uncertain: []string{"might", "maybe", "perhaps", "possibly", "could be", "seems to", "appears to"},
		Hedging:   []string{"i think", "i believe", "in my opinion", "it seems", "probably", "likely"},
		Strong:    []string{"always", "never", "completely", "totally", "absolutely"},

		Transitions: []string{
			"however", "therefore", "furthermore", "moreover", "consequently",
			"additionally", "meanwhile", "nevertheless", "first", "second",
			"finally", "in conclusion", "for example", "in contrast",
		},

		TrustSignals: []string{
			`licensed`, `insured`, `certified`, `years?.{0,12}experience`, `professional`,
			`trusted`, `rated`, `reviews`, `testimonial`, `guarantee`, `warranty`,
			`award`, `accredited`, `expert`, `specialist`,
		},
		CTAPatterns: []string{
			`schedule.{0,20}consultation`, `call.{0,10}now`, `contact.{0,10}us`, `get.{0,10}quote`,
			`learn.{0,10}more`, `click.{0,10}here`, `book.{0,20}appointment`, `free.{0,10}estimate`,
			`request.{0,20}evaluation`, `start.{0,10}today`, `sign.{0,10}up`,
		},

		ContentTypes: map[string][]string{
			"tutorial":   {"step", "guide", "how to", "tutorial", "walkthrough", "instructions"},
			"technical":  {"api", "function", "method", "parameter", "configuration", "implementation"},
			"review":     {"pros", "cons", "rating", "review", "comparison", "versus"},
			"listicle":   {"top", "best", "worst", "list", "tips", "ways", "reasons"},
			"news":       {"announced", "released", "update", "latest", "breaking"},
			"legal":      {"attorney", "lawyer", "legal", "court", "injury", "accident"},
			"business":   {"service", "company", "business", "professional", "contact", "experience"},
			"healthcare": {"doctor", "medical", "health", "clinic", "treatment", "patient"},
		},
		IdealTypeCount: 5,
	}
	lex.compile()
	return lex
}

// LoadOverrides reads a YAML file and replaces any list it names,
// keeping the defaults for lists the file omits. The ContentTypes map
// is merged per key rather than replaced wholesale.
func LoadOverrides(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading lexicon overrides: %w", err)
	}

	var override Lexicon
	if err := yaml.Unmarshal(data, &override); err != nil {
		return nil, fmt.Errorf("parsing lexicon overrides %s: %w", path, err)
	}

	lex := Default()
	replaceIfSet(&lex.Vague, override.Vague)
	replaceIfSet(&lex.Precise, override.Precise)
	replaceIfSet(&lex.WeakModifiers, override.WeakModifiers)
	replaceIfSet(&lex.Fillers, override.Fillers)
	replaceIfSet(&lex.Certain, override.Certain)
	replaceIfSet(&lex.Uncertain, override.Uncertain)
	replaceIfSet(&lex.Hedging, override.Hedging)
	replaceIfSet(&lex.Strong, override.Strong)
	replaceIfSet(&lex.Transitions, override.Transitions)
	replaceIfSet(&lex.TrustSignals, override.TrustSignals)
	replaceIfSet(&lex.CTAPatterns, override.CTAPatterns)
	for name, keywords := range override.ContentTypes {
		lex.ContentTypes[name] = keywords
	}
	if override.IdealTypeCount > 0 {
		lex.IdealTypeCount = override.IdealTypeCount
	}

	if err := lex.recompile(); err != nil {
		return nil, err
	}
	return lex, nil
}

func replaceIfSet(dst *[]string, src []string) {
	if len(src) > 0 {
		*dst = src
	}
}

// compile builds the regexp tables, panicking on the built-in patterns
// (they are constants and a failure is a programming error).
func (l *Lexicon) compile() {
	if err := l.recompile(); err != nil {
		panic(err)
	}
}

func (l *Lexicon) recompile() error {
	l.trustRe = l.trustRe[:0]
	for _, p := range l.TrustSignals {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return fmt.Errorf("invalid trust signal pattern %q: %w", p, err)
		}
		l.trustRe = append(l.trustRe, re)
	}
	l.ctaRe = l.ctaRe[:0]
	for _, p := range l.CTAPatterns {
		re, err := regexp.Compile(`(?i)` + p)
		if err != nil {
			return fmt.Errorf("invalid CTA pattern %q: %w", p, err)
		}
		l.ctaRe = append(l.ctaRe, re)
	}
	return nil
}

// CountTrustSignals returns how many trust-signal patterns match the text.
func (l *Lexicon) CountTrustSignals(text string) int {
	count := 0
	for _, re := range l.trustRe {
		if re.MatchString(text) {
			count++
		}
	}
	return count
}

// ContainsCTA reports whether any call-to-action pattern matches the text.
func (l *Lexicon) ContainsCTA(text string) bool {
	for _, re := range l.ctaRe {
		if re.MatchString(text) {
			return true
		}
	}
	return false
}

// DetectContentType classifies text by keyword hits against the
// content-type tables, returning "general" when nothing matches.
// Ties go to the lexicographically smallest type name so detection is
// deterministic regardless of map iteration order.
func (l *Lexicon) DetectContentType(lowercased string) string {
	best := "general"
	bestScore := 0
	for name, keywords := range l.ContentTypes {
		score := 0
		for _, kw := range keywords {
			if containsWordish(lowercased, kw) {
				score++
			}
		}
		if score > bestScore || (score == bestScore && score > 0 && name < best) {
			best = name
			bestScore = score
		}
	}
	return best
}

// containsWordish reports whether needle occurs in haystack. Multi-word
// keywords are matched as plain substrings; single words are matched as
// whole tokens to avoid e.g. "api" matching "rapid".
func containsWordish(haystack, needle string) bool {
	if needle == "" {
		return false
	}
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] != needle {
			continue
		}
		if isWordByte(needle[0]) && i > 0 && isWordByte(haystack[i-1]) {
			continue
		}
		end := i + len(needle)
		if isWordByte(needle[len(needle)-1]) && end < len(haystack) && isWordByte(haystack[end]) {
			continue
		}
		return true
	}
	return false
}

func isWordByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '_'
}
