package ranking

import (
	"sort"
	"strings"
)

// Weights of the combined overall score.
const (
	weightAiScore = 0.5
	weightRating  = 0.3
	weightPrice   = 0.2

	// Budget category blends monthly price against rating.
	budgetWeightPrice  = 0.8
	budgetWeightRating = 0.2

	// Providers at or above this average AI score qualify for the taste
	// category outright.
	tasteThreshold = 7.0

	// Midpoint used when a price is unknown or the population's prices
	// are all equal; avoids division by zero without rewarding anyone.
	neutralPriceScore = 5.0
)

// Winner is one category's pick with the score that won it.
type Winner struct {
	Summary ProviderSummary `json:"summary"`
	Score   float64         `json:"score"`
}

// Winners holds the five category picks. A nil entry means no eligible
// provider exists for that category; that is an expected outcome, not an
// error.
type Winners struct {
	Overall       *Winner `json:"overall"`
	Budget        *Winner `json:"budget"`
	Taste         *Winner `json:"taste"`
	Vegetarian    *Winner `json:"vegetarian"`
	NonVegetarian *Winner `json:"nonVegetarian"`
}

// Rank computes every category winner from one immutable snapshot of
// provider summaries. Ties break toward the earlier summary, so callers
// get stable results for a stable input order.
func Rank(summaries []ProviderSummary) Winners {
	overall := overallScores(summaries)

	return Winners{
		Overall:       maxBy(summaries, overall),
		Budget:        budgetWinner(summaries),
		Taste:         tasteWinner(summaries),
		Vegetarian:    maxBy(filter(summaries, isVegetarian), overall),
		NonVegetarian: maxBy(filter(summaries, isNonVegetarian), overall),
	}
}

// TopOverall returns up to n summaries ordered by descending overall
// score, earlier summaries winning ties.
func TopOverall(summaries []ProviderSummary, n int) []Winner {
	overall := overallScores(summaries)

	ranked := make([]Winner, 0, len(summaries))
	for _, s := range summaries {
		ranked = append(ranked, Winner{Summary: s, Score: overall[s.TiffinID]})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// OverallScore exposes one provider's combined score given the whole
// population (the population sets the price normalization range).
func OverallScore(s ProviderSummary, population []ProviderSummary) float64 {
	return overallScores(population)[s.TiffinID]
}

// overallScores computes the combined 0.5/0.3/0.2 blend for every
// provider. Price normalization runs over the population's review-derived
// prices.
func overallScores(summaries []ProviderSummary) map[uint]float64 {
	minPrice, maxPrice, havePrices := priceRange(summaries, func(s ProviderSummary) (float64, bool) {
		if s.AvgPrice == nil {
			return 0, false
		}
		return *s.AvgPrice, true
	})

	scores := make(map[uint]float64, len(summaries))
	for _, s := range summaries {
		priceScore := neutralPriceScore
		if s.AvgPrice != nil && havePrices && minPrice != maxPrice {
			priceScore = ((maxPrice - *s.AvgPrice) / (maxPrice - minPrice)) * 10
		}
		scores[s.TiffinID] = weightAiScore*s.AvgAiScore +
			weightRating*scaleRating(s.AvgRating) +
			weightPrice*priceScore
	}
	return scores
}

// budgetWinner scores strictly over monthly prices. A zero-review or
// unpriced provider still competes at the neutral midpoint.
func budgetWinner(summaries []ProviderSummary) *Winner {
	minPrice, maxPrice, havePrices := priceRange(summaries, func(s ProviderSummary) (float64, bool) {
		return s.MonthlyPrice, s.MonthlyPrice > 0
	})

	var winner *Winner
	for i, s := range summaries {
		priceScore := neutralPriceScore
		if s.MonthlyPrice > 0 && havePrices && minPrice != maxPrice {
			priceScore = ((maxPrice - s.MonthlyPrice) / (maxPrice - minPrice)) * 10
		}
		score := budgetWeightPrice*priceScore + budgetWeightRating*scaleRating(s.AvgRating)
		if winner == nil || score > winner.Score {
			winner = &Winner{Summary: summaries[i], Score: score}
		}
	}
	return winner
}

// tasteWinner prefers providers with a qualifying average AI score, and
// degrades to the global maximum so a taste pick exists whenever any
// provider does.
func tasteWinner(summaries []ProviderSummary) *Winner {
	qualified := filter(summaries, func(s ProviderSummary) bool {
		return s.AvgAiScore >= tasteThreshold
	})
	if len(qualified) == 0 {
		qualified = summaries
	}

	var winner *Winner
	for i, s := range qualified {
		if winner == nil || s.AvgAiScore > winner.Score {
			winner = &Winner{Summary: qualified[i], Score: s.AvgAiScore}
		}
	}
	return winner
}

// scaleRating maps the 1–5 rating scale onto 0–10, flooring at zero so a
// zero-review provider is not ranked below genuinely poor 1-star ones.
func scaleRating(avgRating float64) float64 {
	scaled := ((avgRating - 1) / 4) * 10
	if scaled < 0 {
		return 0
	}
	return scaled
}

// isVegetarian matches tags like "Veg" and "Both" but not "Non-Veg".
func isVegetarian(s ProviderSummary) bool {
	tag := strings.ToLower(s.FoodType)
	return strings.Contains(tag, "veg") && !strings.Contains(tag, "non") ||
		tag == "both"
}

// isNonVegetarian matches tags like "Non-Veg" and anything containing "non".
func isNonVegetarian(s ProviderSummary) bool {
	return strings.Contains(strings.ToLower(s.FoodType), "non")
}

// priceRange finds the min and max over whichever price field get
// extracts. have is false when no provider has a usable price.
func priceRange(summaries []ProviderSummary, get func(ProviderSummary) (float64, bool)) (minPrice, maxPrice float64, have bool) {
	for _, s := range summaries {
		p, ok := get(s)
		if !ok {
			continue
		}
		if !have || p < minPrice {
			minPrice = p
		}
		if !have || p > maxPrice {
			maxPrice = p
		}
		have = true
	}
	return minPrice, maxPrice, have
}

func filter(summaries []ProviderSummary, keep func(ProviderSummary) bool) []ProviderSummary {
	out := make([]ProviderSummary, 0, len(summaries))
	for _, s := range summaries {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}

// maxBy picks the candidate with the highest score from the given score
// table, earlier candidates winning ties. Nil when candidates is empty.
func maxBy(candidates []ProviderSummary, scores map[uint]float64) *Winner {
	var winner *Winner
	for i, s := range candidates {
		score := scores[s.TiffinID]
		if winner == nil || score > winner.Score {
			winner = &Winner{Summary: candidates[i], Score: score}
		}
	}
	return winner
}
