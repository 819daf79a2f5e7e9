// Package document defines the document model consumed by the analysis
// engine: documents with open-schema metadata, ordered collections, and
// helpers for extracting sections from whole markdown documents.
package document

import "strings"

// Metadata is an open mapping of string keys to scalar or nested values.
// There is no fixed schema; accessors return a default when a key is
// absent or carries an unexpected type, so malformed metadata degrades a
// single field rather than aborting an analysis.
type Metadata map[string]any

// Recognized metadata keys.
const (
	KeySiteDomain   = "site_domain"
	KeyHeading      = "heading"
	KeyHierarchy    = "hierarchy"
	KeyContentType  = "content_type"
	KeyContainsCTA  = "contains_cta"
	KeyTrustSignals = "trust_signals_count"
	KeyImportance   = "importance_weight"
	KeySectionOrder = "section_order"
	KeySectionName  = "section_name"
	KeySectionLevel = "section_level"
)

// String returns the string value for key, or def when absent or mistyped.
func (m Metadata) String(key, def string) string {
	if m == nil {
		return def
	}
	if s, ok := m[key].(string); ok {
		return s
	}
	return def
}

// Bool returns the boolean value for key, or def when absent or mistyped.
func (m Metadata) Bool(key string, def bool) bool {
	if m == nil {
		return def
	}
	if b, ok := m[key].(bool); ok {
		return b
	}
	return def
}

// Float returns the numeric value for key, or def when absent or mistyped.
// Accepts any numeric type produced by YAML or JSON decoding.
func (m Metadata) Float(key string, def float64) float64 {
	if m == nil {
		return def
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	}
	return def
}

// Int returns the integer value for key, or def when absent or mistyped.
func (m Metadata) Int(key string, def int) int {
	if m == nil {
		return def
	}
	switch v := m[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		// JSON decodes all numbers as float64; accept whole values.
		if v == float64(int(v)) {
			return int(v)
		}
	}
	return def
}

// Has reports whether key is present, regardless of its type.
func (m Metadata) Has(key string) bool {
	if m == nil {
		return false
	}
	_, ok := m[key]
	return ok
}

// Clone returns a shallow copy so callers can extend metadata without
// mutating the source document.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return Metadata{}
	}
	out := make(Metadata, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Document is one unit of text under analysis. Documents are immutable
// for the duration of an analysis run.
type Document struct {
	ID   string   `json:"id"`
	Text string   `json:"text"`
	Meta Metadata `json:"metadata,omitempty"`
}

// Domain returns the site_domain metadata value, or "" when unattributed.
func (d Document) Domain() string {
	return d.Meta.String(KeySiteDomain, "")
}

// Importance returns the importance_weight metadata value, defaulting to 1
// so unweighted sections still participate in weighted metrics.
func (d Document) Importance() float64 {
	w := d.Meta.Float(KeyImportance, 1)
	if w < 0 {
		return 1
	}
	return w
}

// WordCount returns the number of whitespace-separated tokens in the text.
func (d Document) WordCount() int {
	return len(strings.Fields(d.Text))
}

// Collection is an ordered sequence of documents analyzed together.
// Insertion order is preserved for deterministic reporting.
type Collection struct {
	Name string     `json:"name"`
	Docs []Document `json:"documents"`
}

// DistinctDomains returns the set of distinct non-empty site_domain
// values, in first-seen order.
func (c Collection) DistinctDomains() []string {
	seen := make(map[string]bool)
	var domains []string
	for _, d := range c.Docs {
		domain := d.Domain()
		if domain == "" || seen[domain] {
			continue
		}
		seen[domain] = true
		domains = append(domains, domain)
	}
	return domains
}

// HasHierarchy reports whether any document carries hierarchical
// metadata (hierarchy, section_order, or content_type).
func (c Collection) HasHierarchy() bool {
	for _, d := range c.Docs {
		if d.Meta.Has(KeyHierarchy) || d.Meta.Has(KeySectionOrder) || d.Meta.Has(KeyContentType) {
			return true
		}
	}
	return false
}

// Len returns the number of documents in the collection.
func (c Collection) Len() int { return len(c.Docs) }
