package ranking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summary(id uint, foodType string, avgAi, avgRating float64, avgPrice *float64, monthly float64) ProviderSummary {
	return ProviderSummary{
		TiffinID:     id,
		Name:         "provider",
		FoodType:     foodType,
		AvgAiScore:   avgAi,
		AvgRating:    avgRating,
		AvgPrice:     avgPrice,
		MonthlyPrice: monthly,
	}
}

func TestScaleRatingFloorsAtZero(t *testing.T) {
	// avg_rating 0 would scale to -2.5; the floor keeps a zero-review
	// provider from ranking below genuinely poor 1-star providers.
	assert.Equal(t, 0.0, scaleRating(0))
	assert.Equal(t, 0.0, scaleRating(1))
	assert.InDelta(t, 10.0, scaleRating(5), 0.0001)
	assert.InDelta(t, 8.75, scaleRating(4.5), 0.0001)
}

func TestOverallScoreZeroReviewProvider(t *testing.T) {
	s := summary(1, "Veg", 0, 0, nil, 0)

	// 0.5*0 + 0.3*0 (floored, not -2.5) + 0.2*5 (neutral price)
	score := OverallScore(s, []ProviderSummary{s})
	assert.InDelta(t, 1.0, score, 0.0001)
}

func TestPriceScoreNeutralWhenPricesEqual(t *testing.T) {
	a := summary(1, "Veg", 8, 4, floatPtr(2000), 0)
	b := summary(2, "Veg", 8, 4, floatPtr(2000), 0)

	population := []ProviderSummary{a, b}

	// Identical prices collapse the range; both get the 5.0 midpoint and
	// therefore identical scores, with no division by zero.
	expected := 0.5*8 + 0.3*scaleRating(4) + 0.2*5.0
	assert.InDelta(t, expected, OverallScore(a, population), 0.0001)
	assert.InDelta(t, expected, OverallScore(b, population), 0.0001)
}

func TestPriceScoreSpreadsOverRange(t *testing.T) {
	cheap := summary(1, "Veg", 5, 3, floatPtr(1000), 0)
	costly := summary(2, "Veg", 5, 3, floatPtr(3000), 0)
	mid := summary(3, "Veg", 5, 3, floatPtr(2000), 0)

	population := []ProviderSummary{cheap, costly, mid}

	// Cheapest gets the full 10, costliest 0, midpoint 5.
	assert.InDelta(t, 0.2*10, OverallScore(cheap, population)-OverallScore(costly, population), 0.0001)
	assert.InDelta(t, 0.2*5, OverallScore(mid, population)-OverallScore(costly, population), 0.0001)
}

func TestRankEmptyPopulation(t *testing.T) {
	winners := Rank(nil)

	assert.Nil(t, winners.Overall)
	assert.Nil(t, winners.Budget)
	assert.Nil(t, winners.Taste)
	assert.Nil(t, winners.Vegetarian)
	assert.Nil(t, winners.NonVegetarian)
}

func TestTasteWinnerPrefersQualified(t *testing.T) {
	summaries := []ProviderSummary{
		summary(1, "Veg", 8, 4, nil, 0),
		summary(2, "Veg", 6, 4, nil, 0),
		summary(3, "Veg", 9, 4, nil, 0),
	}

	winners := Rank(summaries)

	require.NotNil(t, winners.Taste)
	assert.Equal(t, uint(3), winners.Taste.Summary.TiffinID)
	assert.InDelta(t, 9.0, winners.Taste.Score, 0.0001)
}

func TestTasteWinnerDegradesToGlobalMax(t *testing.T) {
	summaries := []ProviderSummary{
		summary(1, "Veg", 4, 3, nil, 0),
		summary(2, "Veg", 6.5, 3, nil, 0),
	}

	winners := Rank(summaries)

	// Nobody reaches the threshold, but a taste pick still exists.
	require.NotNil(t, winners.Taste)
	assert.Equal(t, uint(2), winners.Taste.Summary.TiffinID)
}

func TestFoodTypeClassification(t *testing.T) {
	veg := summary(1, "Veg", 5, 3, nil, 0)
	nonVeg := summary(2, "Non-Veg", 9, 5, nil, 0)
	both := summary(3, "Both", 7, 4, nil, 0)

	winners := Rank([]ProviderSummary{veg, nonVeg, both})

	require.NotNil(t, winners.Vegetarian)
	require.NotNil(t, winners.NonVegetarian)

	// "Non-Veg" must never win the vegetarian category, however strong
	// its scores; "Both" is vegetarian-eligible and beats plain "Veg" here.
	assert.NotEqual(t, uint(2), winners.Vegetarian.Summary.TiffinID)
	assert.Equal(t, uint(3), winners.Vegetarian.Summary.TiffinID)
	assert.Equal(t, uint(2), winners.NonVegetarian.Summary.TiffinID)
}

func TestEmptyCategoryIsNilNotError(t *testing.T) {
	summaries := []ProviderSummary{
		summary(1, "Veg", 5, 3, nil, 0),
		summary(2, "Both", 6, 4, nil, 0),
	}

	winners := Rank(summaries)

	assert.Nil(t, winners.NonVegetarian)
	require.NotNil(t, winners.Vegetarian)
}

func TestBudgetAndOverallEndToEnd(t *testing.T) {
	p1 := summary(1, "Veg", 8, 4.5, floatPtr(2000), 2000)
	p2 := summary(2, "Veg", 6, 4.0, floatPtr(4000), 4000)

	winners := Rank([]ProviderSummary{p1, p2})

	// Budget: monthly price dominates the 0.8-weighted term.
	require.NotNil(t, winners.Budget)
	assert.Equal(t, uint(1), winners.Budget.Summary.TiffinID)
	assert.InDelta(t, 0.8*10+0.2*scaleRating(4.5), winners.Budget.Score, 0.0001)

	// Overall via the exact formula: P1 = 4 + 2.625 + 2 = 8.625,
	// P2 = 3 + 2.25 + 0 = 5.25.
	require.NotNil(t, winners.Overall)
	assert.Equal(t, uint(1), winners.Overall.Summary.TiffinID)
	assert.InDelta(t, 8.625, winners.Overall.Score, 0.0001)
}

func TestBudgetNeutralWithoutMonthlyPrices(t *testing.T) {
	summaries := []ProviderSummary{
		summary(1, "Veg", 5, 4, nil, 0),
		summary(2, "Veg", 5, 5, nil, 0),
	}

	winners := Rank(summaries)

	// With no monthly prices anywhere, only the rating term separates them.
	require.NotNil(t, winners.Budget)
	assert.Equal(t, uint(2), winners.Budget.Summary.TiffinID)
	assert.InDelta(t, 0.8*5+0.2*scaleRating(5), winners.Budget.Score, 0.0001)
}

func TestTieBreaksToFirstSeen(t *testing.T) {
	first := summary(10, "Veg", 7, 4, nil, 0)
	second := summary(20, "Veg", 7, 4, nil, 0)

	winners := Rank([]ProviderSummary{first, second})

	require.NotNil(t, winners.Overall)
	assert.Equal(t, uint(10), winners.Overall.Summary.TiffinID)

	// The same input reversed flips the winner: first-seen order decides.
	winners = Rank([]ProviderSummary{second, first})
	assert.Equal(t, uint(20), winners.Overall.Summary.TiffinID)
}

func TestTopOverallOrdersAndLimits(t *testing.T) {
	summaries := []ProviderSummary{
		summary(1, "Veg", 4, 3, nil, 0),
		summary(2, "Veg", 9, 5, nil, 0),
		summary(3, "Veg", 7, 4, nil, 0),
		summary(4, "Veg", 2, 2, nil, 0),
	}

	top := TopOverall(summaries, 3)

	require.Len(t, top, 3)
	assert.Equal(t, uint(2), top[0].Summary.TiffinID)
	assert.Equal(t, uint(3), top[1].Summary.TiffinID)
	assert.Equal(t, uint(1), top[2].Summary.TiffinID)
	assert.GreaterOrEqual(t, top[0].Score, top[1].Score)
}
