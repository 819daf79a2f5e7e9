package analysis

import (
	"github.com/dotcommander/sitescore/internal/scoring"
)

// Aggregate computes per-dimension and overall mean/min/max across the
// given ordered results, plus best and worst document ids (ties broken
// by earliest insertion). An empty input returns zeroed aggregates and
// empty ids rather than an error, so report assembly needs no special
// empty branch.
func Aggregate(results []DocumentResult) (Aggregates, string, string) {
	var agg Aggregates
	if len(results) == 0 {
		return agg, "", ""
	}

	agg.WordPrecision = dimensionStats(results, scoring.DimWordPrecision)
	agg.ModalCertainty = dimensionStats(results, scoring.DimModalCertainty)
	agg.StructureEfficiency = dimensionStats(results, scoring.DimStructureEfficiency)
	agg.PunctuationImpact = dimensionStats(results, scoring.DimPunctuationImpact)
	agg.SemanticConsistency = dimensionStats(results, scoring.DimSemanticConsistency)
	agg.Overall = dimensionStats(results, scoring.DimOverall)

	best, worst := 0, 0
	for i, r := range results {
		// Strict comparisons keep the earliest index on ties.
		if r.Scores.Overall > results[best].Scores.Overall {
			best = i
		}
		if r.Scores.Overall < results[worst].Scores.Overall {
			worst = i
		}
	}
	return agg, results[best].ID, results[worst].ID
}

func dimensionStats(results []DocumentResult, dim string) DimensionStats {
	first := results[0].Scores.Dimension(dim)
	stats := DimensionStats{Mean: 0, Min: first, Max: first}
	sum := 0.0
	for _, r := range results {
		v := r.Scores.Dimension(dim)
		sum += v
		if v < stats.Min {
			stats.Min = v
		}
		if v > stats.Max {
			stats.Max = v
		}
	}
	stats.Mean = sum / float64(len(results))
	return stats
}

// aggregateContentTypes builds per-type document counts and mean overall
// scores.
func aggregateContentTypes(results []DocumentResult) map[string]TypeStats {
	if len(results) == 0 {
		return nil
	}
	sums := make(map[string]float64)
	counts := make(map[string]int)
	for _, r := range results {
		counts[r.ContentType]++
		sums[r.ContentType] += r.Scores.Overall
	}
	out := make(map[string]TypeStats, len(counts))
	for t, n := range counts {
		out[t] = TypeStats{Documents: n, MeanOverall: sums[t] / float64(n)}
	}
	return out
}
