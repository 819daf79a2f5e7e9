package analysis

import (
	"fmt"
	"math"
	"sort"
)

// UnattributedDomain groups documents that carry no site_domain.
const UnattributedDomain = "unattributed"

// analyzeCompetitive groups documents by site_domain, ranks groups by
// mean overall score and documents by their own overall score, and
// flags opportunity content scoring more than one standard deviation
// below the collection mean. All sorts are stable so ties keep
// insertion order.
func analyzeCompetitive(results []DocumentResult) *CompetitiveReport {
	report := &CompetitiveReport{}

	groupOrder := []string{}
	grouped := make(map[string][]DocumentResult)
	for _, r := range results {
		domain := r.Domain
		if domain == "" {
			domain = UnattributedDomain
		}
		if _, seen := grouped[domain]; !seen {
			groupOrder = append(groupOrder, domain)
		}
		grouped[domain] = append(grouped[domain], r)
	}

	for _, domain := range groupOrder {
		docs := grouped[domain]
		sum := 0.0
		words := 0
		ctas := 0
		trust := 0
		for _, d := range docs {
			sum += d.Scores.Overall
			words += d.WordCount
			trust += d.TrustSignals
			if d.ContainsCTA {
				ctas++
			}
		}
		report.Groups = append(report.Groups, GroupStat{
			Domain:       domain,
			Documents:    len(docs),
			MeanOverall:  sum / float64(len(docs)),
			TotalWords:   words,
			CTADensity:   float64(ctas) / float64(len(docs)),
			TrustSignals: trust,
		})
	}
	sort.SliceStable(report.Groups, func(i, j int) bool {
		return report.Groups[i].MeanOverall > report.Groups[j].MeanOverall
	})

	ranked := make([]DocumentResult, len(results))
	copy(ranked, results)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Scores.Overall > ranked[j].Scores.Overall
	})
	for i, r := range ranked {
		report.Rankings = append(report.Rankings, DocumentRank{
			Rank:    i + 1,
			ID:      r.ID,
			Domain:  r.Domain,
			Overall: r.Scores.Overall,
		})
	}

	report.MarketMean, report.MarketStdDev = meanStdDev(results)
	cutoff := report.MarketMean - report.MarketStdDev
	for _, r := range results {
		if r.Scores.Overall < cutoff {
			report.Opportunities = append(report.Opportunities, r.ID)
		}
	}

	report.Recommendations = competitiveRecommendations(report)
	return report
}

func meanStdDev(results []DocumentResult) (float64, float64) {
	if len(results) == 0 {
		return 0, 0
	}
	mean := 0.0
	for _, r := range results {
		mean += r.Scores.Overall
	}
	mean /= float64(len(results))

	if len(results) < 2 {
		return mean, 0
	}
	variance := 0.0
	for _, r := range results {
		d := r.Scores.Overall - mean
		variance += d * d
	}
	variance /= float64(len(results) - 1)
	return mean, math.Sqrt(variance)
}

// competitiveRecommendations derives short textual observations from
// the computed landscape: the leader, wide quality spreads, and weak
// market-wide CTA usage.
func competitiveRecommendations(report *CompetitiveReport) []string {
	if len(report.Groups) < 2 {
		return nil
	}
	var recs []string

	top := report.Groups[0]
	recs = append(recs, fmt.Sprintf("Top performer: %s (mean quality %.3f across %d documents)",
		top.Domain, top.MeanOverall, top.Documents))

	spread := top.MeanOverall - report.Groups[len(report.Groups)-1].MeanOverall
	if spread > 0.2 {
		recs = append(recs, fmt.Sprintf("Quality spread of %.3f between leader and trailer suggests room to outrank weaker competitors", spread))
	}

	ctaSum := 0.0
	for _, g := range report.Groups {
		ctaSum += g.CTADensity
	}
	if ctaSum/float64(len(report.Groups)) < 0.3 {
		recs = append(recs, "Low CTA density across the market; stronger calls to action are an open opportunity")
	}

	if n := len(report.Opportunities); n > 0 {
		recs = append(recs, fmt.Sprintf("%d document(s) score more than one standard deviation below the market mean", n))
	}
	return recs
}
