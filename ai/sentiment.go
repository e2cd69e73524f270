package ai

import (
	"fmt"
	"math"
	"strings"
)

// FallbackSummary is returned whenever the score comes from the
// rule-based path, so callers can tell the two paths apart.
const FallbackSummary = "Rule-based review sentiment analysis (fallback)"

// Keyword sets for the rule-based scorer. Matches are additive: a review
// hitting several keywords accumulates every adjustment.
var (
	strongPositive = []string{
		"very tasty", "excellent", "awesome", "amazing", "delicious",
		"homemade", "fresh", "healthy", "perfect", "best", "love it",
		"superb", "mouth watering",
	}

	mildPositive = []string{
		"good", "nice", "okay", "decent", "fine", "satisfactory",
		"soft roti", "good taste", "less oil", "balanced spice",
		"clean", "hygienic", "good quantity", "value for money",
	}

	strongNegative = []string{
		"worst", "very bad", "pathetic", "disgusting", "spoiled",
		"smelly", "stale", "raw", "uncooked", "food poisoning",
	}

	mildNegative = []string{
		"bad", "average", "oily", "too spicy", "bland", "cold food",
		"late", "delayed", "small quantity", "overpriced",
		"not fresh", "sometimes late", "inconsistent",
	}
)

// AnalyzeReview turns one review into a (score 0–10, one-line summary)
// pair. An empty review is a defined edge case, not an error. The AI and
// fallback paths never mix: if the service yields no usable score, both
// the score and the summary come from the fallback.
func (a *Analyzer) AnalyzeReview(reviewText string, price *float64) (int, string) {
	if strings.TrimSpace(reviewText) == "" {
		return 0, "No review provided"
	}

	priceStr := "N/A"
	if price != nil {
		priceStr = fmt.Sprintf("%g", *price)
	}

	prompt := fmt.Sprintf(`Analyze this food review and the price of the meal.

Return exactly two lines:
Score: <number out of 10>
Summary: <one line summary>

Review:
%s

Price: %s
`, reviewText, priceStr)

	if out, ok := a.complete(prompt); ok {
		if score, summary, parsed := parseScoreResponse(out); parsed {
			return score, summary
		}
	}

	return a.fallbackScore(reviewText, price), FallbackSummary
}

// parseScoreResponse scans a completion line by line for "Score:" and
// "Summary:" lines. parsed is false when no numeric score was found.
func parseScoreResponse(out string) (int, string, bool) {
	var score float64
	var found bool
	summary := "AI analysis completed"

	for _, line := range strings.Split(out, "\n") {
		low := strings.ToLower(line)
		if strings.HasPrefix(low, "score") {
			if v, ok := firstNumber(line); ok {
				score = v
				found = true
			}
		}
		if strings.HasPrefix(low, "summary") {
			if _, rest, ok := strings.Cut(line, ":"); ok {
				if s := strings.TrimSpace(rest); s != "" {
					summary = s
				}
			}
		}
	}

	if !found {
		return 0, "", false
	}

	score = math.Max(0, math.Min(score, 10))
	return int(math.Round(score)), summary, true
}

// firstNumber collects the digit and '.' characters of a line and parses
// them as one number, mirroring how loosely the completion is trusted.
func firstNumber(line string) (float64, bool) {
	var b strings.Builder
	for _, r := range line {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return 0, false
	}
	var v float64
	if _, err := fmt.Sscanf(b.String(), "%f", &v); err != nil {
		return 0, false
	}
	return v, true
}

// fallbackScore is the deterministic keyword scorer: neutral baseline 5,
// +2/+1/−2/−1 per strong/mild positive/negative keyword hit, then a price
// tier adjustment, clamped to [0,10].
func (a *Analyzer) fallbackScore(reviewText string, price *float64) int {
	text := strings.ToLower(reviewText)
	score := 5

	for _, w := range strongPositive {
		if strings.Contains(text, w) {
			score += 2
		}
	}
	for _, w := range mildPositive {
		if strings.Contains(text, w) {
			score++
		}
	}
	for _, w := range strongNegative {
		if strings.Contains(text, w) {
			score -= 2
		}
	}
	for _, w := range mildNegative {
		if strings.Contains(text, w) {
			score--
		}
	}

	if price != nil {
		switch p := *price; {
		case p >= a.opts.PriceHigh:
			score -= 2
		case p >= a.opts.PriceMid:
			score--
		case p <= a.opts.PriceLow:
			score++
		}
	}

	if score < 0 {
		score = 0
	}
	if score > 10 {
		score = 10
	}
	return score
}
