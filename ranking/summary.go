package ranking

import "tiffin/models"

// ProviderSummary collapses all reviews of one tiffin into the numbers
// the ranking formulas consume. It is recomputed from the full review set
// on every request; nothing here is cached or persisted.
type ProviderSummary struct {
	TiffinID     uint     `json:"tiffinId"`
	Name         string   `json:"name"`
	FoodType     string   `json:"foodType"`
	AvgAiScore   float64  `json:"avgAiScore"`   // 0 when no reviews exist
	AvgRating    float64  `json:"avgRating"`    // 0 when no reviews exist
	AvgPrice     *float64 `json:"avgPrice"`     // mean review price, else monthly price, else nil
	MonthlyPrice float64  `json:"monthlyPrice"` // 0 means not configured
	ReviewCount  int      `json:"reviewCount"`
}

// Summarize aggregates the reviews of a single tiffin. Zero reviews yield
// defined zero averages, not errors; the ranking math depends on that.
func Summarize(tiffin models.Tiffin, reviews []models.Review) ProviderSummary {
	s := ProviderSummary{
		TiffinID:     tiffin.ID,
		Name:         tiffin.Name,
		FoodType:     tiffin.FoodType,
		MonthlyPrice: tiffin.PriceMonthly,
		ReviewCount:  len(reviews),
	}

	var aiSum, ratingSum, priceSum float64
	var priced int
	for _, r := range reviews {
		aiSum += float64(r.AiScore)
		ratingSum += float64(r.Rating)
		if r.Price != nil {
			priceSum += *r.Price
			priced++
		}
	}

	if len(reviews) > 0 {
		s.AvgAiScore = aiSum / float64(len(reviews))
		s.AvgRating = ratingSum / float64(len(reviews))
	}

	switch {
	case priced > 0:
		avg := priceSum / float64(priced)
		s.AvgPrice = &avg
	case tiffin.PriceMonthly > 0:
		monthly := tiffin.PriceMonthly
		s.AvgPrice = &monthly
	}

	return s
}

// SummarizeAll aggregates every tiffin, preserving the order of the
// tiffin slice so downstream tie-breaking stays deterministic.
func SummarizeAll(tiffins []models.Tiffin, reviews []models.Review) []ProviderSummary {
	byTiffin := make(map[uint][]models.Review, len(tiffins))
	for _, r := range reviews {
		byTiffin[r.TiffinID] = append(byTiffin[r.TiffinID], r)
	}

	summaries := make([]ProviderSummary, 0, len(tiffins))
	for _, t := range tiffins {
		summaries = append(summaries, Summarize(t, byTiffin[t.ID]))
	}
	return summaries
}
