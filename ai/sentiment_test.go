package ai

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubCompleter stands in for the external completion service.
type stubCompleter struct {
	out string
	err error
}

func (s stubCompleter) Complete(_ context.Context, _ string) (string, error) {
	return s.out, s.err
}

func testOptions() Options {
	return Options{PriceHigh: 3500, PriceMid: 2500, PriceLow: 2000}
}

func ruleOnly() *Analyzer {
	return NewAnalyzer(nil, testOptions())
}

func floatPtr(v float64) *float64 { return &v }

func TestAnalyzeReviewEmptyText(t *testing.T) {
	a := ruleOnly()

	for _, text := range []string{"", "   ", "\n\t "} {
		score, summary := a.AnalyzeReview(text, nil)
		assert.Equal(t, 0, score)
		assert.Equal(t, "No review provided", summary)
	}
}

func TestFallbackScorePositiveKeywords(t *testing.T) {
	a := ruleOnly()

	score, summary := a.AnalyzeReview("The food was excellent and delicious", nil)
	assert.Greater(t, score, 5)
	assert.Equal(t, FallbackSummary, summary)
}

func TestFallbackScoreNegativeKeywords(t *testing.T) {
	a := ruleOnly()

	score, _ := a.AnalyzeReview("worst food, completely spoiled", nil)
	assert.Less(t, score, 5)
}

func TestFallbackScoreAccumulates(t *testing.T) {
	a := ruleOnly()

	// Two strong positives and one mild positive: 5 + 2 + 2 + 1 = 10
	score, _ := a.AnalyzeReview("excellent, delicious and clean", nil)
	assert.Equal(t, 10, score)
}

func TestFallbackScoreClamped(t *testing.T) {
	a := ruleOnly()

	score, _ := a.AnalyzeReview("worst, pathetic, disgusting, spoiled, smelly and stale", floatPtr(4000))
	assert.Equal(t, 0, score)

	score, _ = a.AnalyzeReview("excellent, amazing, delicious, superb, perfect and fresh", floatPtr(1500))
	assert.Equal(t, 10, score)
}

func TestFallbackScorePriceTiers(t *testing.T) {
	a := ruleOnly()

	// "fine" alone is one mild positive: baseline 5 + 1 = 6
	base, _ := a.AnalyzeReview("fine", nil)
	assert.Equal(t, 6, base)

	cheap, _ := a.AnalyzeReview("fine", floatPtr(1800))
	assert.Equal(t, base+1, cheap)

	mid, _ := a.AnalyzeReview("fine", floatPtr(2800))
	assert.Equal(t, base-1, mid)

	high, _ := a.AnalyzeReview("fine", floatPtr(3600))
	assert.Equal(t, base-2, high)
}

func TestAnalyzeReviewParsesCompletion(t *testing.T) {
	a := NewAnalyzer(stubCompleter{out: "Score: 8\nSummary: Great homely food"}, testOptions())

	score, summary := a.AnalyzeReview("anything", nil)
	assert.Equal(t, 8, score)
	assert.Equal(t, "Great homely food", summary)
}

func TestAnalyzeReviewClampsCompletionScore(t *testing.T) {
	a := NewAnalyzer(stubCompleter{out: "Score: 15\nSummary: Over the top"}, testOptions())

	score, _ := a.AnalyzeReview("anything", nil)
	assert.Equal(t, 10, score)
}

func TestAnalyzeReviewCaseInsensitiveLabels(t *testing.T) {
	a := NewAnalyzer(stubCompleter{out: "SCORE: 7.2 out of 10\nSUMMARY: Decent value"}, testOptions())

	score, summary := a.AnalyzeReview("anything", nil)
	assert.Equal(t, 7, score)
	assert.Equal(t, "Decent value", summary)
}

func TestAnalyzeReviewNoScoreFallsBackEntirely(t *testing.T) {
	// The completion has a summary but no numeric score; nothing of it
	// may leak into the result.
	a := NewAnalyzer(stubCompleter{out: "Summary: Partial answer only"}, testOptions())

	score, summary := a.AnalyzeReview("excellent food", nil)
	assert.Equal(t, 7, score) // 5 + 2 from the fallback, not the AI path
	assert.Equal(t, FallbackSummary, summary)
	assert.NotContains(t, summary, "Partial answer")
}

func TestAnalyzeReviewServiceErrorFallsBack(t *testing.T) {
	a := NewAnalyzer(stubCompleter{err: fmt.Errorf("boom")}, testOptions())

	score, summary := a.AnalyzeReview("excellent food", nil)
	assert.Equal(t, 7, score)
	assert.Equal(t, FallbackSummary, summary)
}

func TestFirstNumber(t *testing.T) {
	v, ok := firstNumber("Score: 8.5/10")
	assert.True(t, ok)
	assert.InDelta(t, 8.510, v, 0.0001) // digits are collected greedily

	_, ok = firstNumber("Score: none")
	assert.False(t, ok)
}
