package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProsConsNoReviews(t *testing.T) {
	a := ruleOnly()

	for _, texts := range [][]string{nil, {}, {"", "   "}} {
		pros, cons, suggestion := a.ProsCons(texts, 5, 5)
		assert.Equal(t, []string{"No reviews available yet."}, pros)
		assert.Equal(t, []string{"No reviews available yet."}, cons)
		assert.Contains(t, suggestion, "Collect more student reviews")
	}
}

func TestProsConsFallbackKeywords(t *testing.T) {
	a := ruleOnly()

	pros, cons, suggestion := a.ProsCons([]string{
		"very tasty and fresh food",
		"but sometimes late in the evening",
	}, 5, 5)

	assert.Contains(t, pros, "Food is tasty and flavorful")
	assert.Contains(t, pros, "Fresh ingredients used")
	require.NotEmpty(t, cons)
	assert.Equal(t, "Sometimes late delivery", cons[0])
	assert.Contains(t, suggestion, "sometimes late delivery")
}

func TestProsConsFallbackNegation(t *testing.T) {
	a := ruleOnly()

	pros, cons, _ := a.ProsCons([]string{"the food was not fresh at all"}, 5, 5)

	// "fresh" is negated, so it must not show up as a pro; "not fresh"
	// itself is a complaint.
	assert.NotContains(t, pros, "Fresh ingredients used")
	assert.Contains(t, cons, "Freshness concerns")
}

func TestProsConsFallbackPlaceholders(t *testing.T) {
	a := ruleOnly()

	pros, cons, suggestion := a.ProsCons([]string{"nothing remarkable to report"}, 5, 5)

	assert.Equal(t, []string{"Food quality is generally acceptable"}, pros)
	assert.Equal(t, []string{"No specific complaints identified"}, cons)
	assert.Contains(t, suggestion, "Continue maintaining current standards")
}

func TestProsConsFallbackRespectsLimits(t *testing.T) {
	a := ruleOnly()

	pros, cons, _ := a.ProsCons([]string{
		"tasty delicious fresh homemade clean healthy affordable food, " +
			"but oily, bland, cold, stale, expensive and inconsistent",
	}, 2, 3)

	assert.Len(t, pros, 2)
	assert.Len(t, cons, 3)
}

func TestProsConsParsesCompletion(t *testing.T) {
	out := `PROS:
- Soft and warm rotis
- Generous portions
2. Arrives on schedule

CONS:
* Weekend menu repeats

SUGGESTION:
Rotate the weekend menu more often.`

	a := NewAnalyzer(stubCompleter{out: out}, testOptions())

	pros, cons, suggestion := a.ProsCons([]string{"plenty of reviews"}, 5, 5)

	assert.Equal(t, []string{"Soft and warm rotis", "Generous portions", "Arrives on schedule"}, pros)
	assert.Equal(t, []string{"Weekend menu repeats"}, cons)
	assert.Equal(t, "Rotate the weekend menu more often.", suggestion)
}

func TestProsConsCompletionCaps(t *testing.T) {
	out := `PROS:
- one
- two
- three
CONS:
- gripe one
- gripe two`

	a := NewAnalyzer(stubCompleter{out: out}, testOptions())

	pros, cons, _ := a.ProsCons([]string{"reviews"}, 2, 1)
	assert.Len(t, pros, 2)
	assert.Len(t, cons, 1)
}

func TestProsConsPartialCompletionDiscarded(t *testing.T) {
	// Pros but no cons: the whole AI output must be thrown away, never
	// merged with fallback cons.
	out := `PROS:
- AI-only positive point`

	a := NewAnalyzer(stubCompleter{out: out}, testOptions())

	pros, cons, _ := a.ProsCons([]string{"the food was tasty but often late"}, 5, 5)

	assert.NotContains(t, pros, "AI-only positive point")
	assert.Contains(t, pros, "Food is tasty and flavorful")
	assert.Contains(t, cons, "Sometimes late delivery")
}

func TestProsConsSuggestionBounded(t *testing.T) {
	long := "SUGGESTION:\n"
	for i := 0; i < 40; i++ {
		long += "improve everything in every possible way "
	}
	out := "PROS:\n- x\nCONS:\n- y\n" + long

	a := NewAnalyzer(stubCompleter{out: out}, testOptions())

	_, _, suggestion := a.ProsCons([]string{"reviews"}, 5, 5)
	assert.LessOrEqual(t, len(suggestion), suggestionMaxLen)
}
