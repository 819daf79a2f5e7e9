package analysis

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/dotcommander/sitescore/internal/document"
	"github.com/dotcommander/sitescore/internal/scoring"
)

// Site score component weights, matching the weighting the report
// formatters document.
const (
	siteCoherenceWeight = 0.30
	siteCTAWeight       = 0.25
	siteTrustWeight     = 0.25
	siteStructureWeight = 0.20
)

// analyzeWebsite computes the four website strategy metrics for a
// single-site collection. Sections missing metadata participate with
// neutral defaults rather than being dropped.
func (e *Engine) analyzeWebsite(c document.Collection, results []DocumentResult) *WebsiteMetrics {
	m := &WebsiteMetrics{
		ContentCoherence: e.contentCoherence(c),
		CTAEffectiveness: ctaEffectiveness(c, results),
		TrustBuilding:    e.trustBuilding(results),
		ContentStructure: e.contentStructure(results),
	}
	m.SiteScore = siteCoherenceWeight*m.ContentCoherence +
		siteCTAWeight*m.CTAEffectiveness +
		siteTrustWeight*m.TrustBuilding +
		siteStructureWeight*m.ContentStructure
	return m
}

// contentCoherence measures how well adjacent sections hang together:
// the importance-weighted mean of lexical similarity between each pair
// of neighboring sections in hierarchy order. A site with fewer than
// two sections is trivially coherent.
func (e *Engine) contentCoherence(c document.Collection) float64 {
	docs := make([]document.Document, len(c.Docs))
	copy(docs, c.Docs)
	sort.SliceStable(docs, func(i, j int) bool {
		return sectionLess(docs[i], docs[j])
	})

	if len(docs) < 2 {
		return 1
	}

	weightedSum := 0.0
	weightTotal := 0.0
	for i := 0; i+1 < len(docs); i++ {
		sim := scoring.TextSimilarity(docs[i].Text, docs[i+1].Text)
		w := (docs[i].Importance() + docs[i+1].Importance()) / 2
		weightedSum += sim * w
		weightTotal += w
	}
	if weightTotal == 0 {
		return 0
	}
	return clampUnit(weightedSum / weightTotal)
}

// sectionLess orders sections by hierarchy id, then section_order, then
// leaves insertion order alone.
func sectionLess(a, b document.Document) bool {
	ha := a.Meta.String(document.KeyHierarchy, "")
	hb := b.Meta.String(document.KeyHierarchy, "")
	if ha != "" && hb != "" && ha != hb {
		return hierarchyLess(ha, hb)
	}
	oa := a.Meta.Int(document.KeySectionOrder, -1)
	ob := b.Meta.Int(document.KeySectionOrder, -1)
	if oa >= 0 && ob >= 0 {
		return oa < ob
	}
	return false
}

// hierarchyLess compares dotted numeric ids ("2.1" < "2.10" < "3.0").
// Non-numeric components fall back to string comparison.
func hierarchyLess(a, b string) bool {
	as := strings.Split(a, ".")
	bs := strings.Split(b, ".")
	for i := 0; i < len(as) && i < len(bs); i++ {
		ai, aerr := strconv.Atoi(as[i])
		bi, berr := strconv.Atoi(bs[i])
		if aerr != nil || berr != nil {
			if as[i] != bs[i] {
				return as[i] < bs[i]
			}
			continue
		}
		if ai != bi {
			return ai < bi
		}
	}
	return len(as) < len(bs)
}

// ctaEffectiveness is the importance-weighted fraction of sections that
// carry a call to action, normalized against total importance. A single
// high-importance CTA section dominates many low-importance ones.
func ctaEffectiveness(c document.Collection, results []DocumentResult) float64 {
	withCTA := 0.0
	total := 0.0
	for i, r := range results {
		w := c.Docs[i].Importance()
		total += w
		if r.ContainsCTA {
			withCTA += w
		}
	}
	if total == 0 {
		return 0
	}
	return clampUnit(withCTA / total)
}

// trustBuilding saturates the summed trust-signal counts so unbounded
// counts cannot produce unbounded scores: 1 - e^(-k*sum).
func (e *Engine) trustBuilding(results []DocumentResult) float64 {
	sum := 0
	for _, r := range results {
		sum += r.TrustSignals
	}
	return clampUnit(1 - math.Exp(-e.trustSaturation*float64(sum)))
}

// contentStructure is the ratio of distinct content types observed to
// the ideal type-set size, capped at 1.
func (e *Engine) contentStructure(results []DocumentResult) float64 {
	distinct := make(map[string]bool)
	for _, r := range results {
		if r.ContentType != "" && r.ContentType != "general" {
			distinct[r.ContentType] = true
		}
	}
	ideal := e.lex.IdealTypeCount
	if ideal <= 0 {
		ideal = 5
	}
	return clampUnit(float64(len(distinct)) / float64(ideal))
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
