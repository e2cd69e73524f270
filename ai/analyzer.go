package ai

import (
	"context"
	"tiffin/config"
)

// Options carries the tuning knobs of the rule-based fallback.
type Options struct {
	// Monthly price tiers. Prices above High subtract 2 from the fallback
	// score, above Mid subtract 1, at or below Low add 1.
	PriceHigh float64
	PriceMid  float64
	PriceLow  float64
}

// Analyzer derives review scores and textual insights, preferring the
// external completion service and degrading to deterministic keyword
// rules when it is unavailable or returns unusable output. No Analyzer
// method ever returns an error: every failure path has a local substitute.
type Analyzer struct {
	completer Completer
	opts      Options
}

// NewAnalyzer builds an Analyzer. completer may be nil, in which case
// only the rule-based path runs.
func NewAnalyzer(completer Completer, opts Options) *Analyzer {
	return &Analyzer{completer: completer, opts: opts}
}

// complete runs one prompt through the external service. ok is false when
// the service is absent, errors out, panics, or returns an empty
// completion; the caller then takes the rule-based path.
func (a *Analyzer) complete(prompt string) (out string, ok bool) {
	defer func() {
		if recover() != nil {
			out, ok = "", false
		}
	}()

	if a.completer == nil {
		return "", false
	}
	if g, isGemini := a.completer.(*GeminiClient); isGemini && !g.Available() {
		return "", false
	}
	res, err := a.completer.Complete(context.Background(), prompt)
	if err != nil || res == "" {
		return "", false
	}
	return res, true
}

// std is the process-wide analyzer wired up in Setup.
var (
	std    *Analyzer
	gemini *GeminiClient
)

// Setup builds the default analyzer from the application config and runs
// an initial availability probe.
func Setup() {
	gemini = NewGeminiClient()
	gemini.Probe()
	std = NewAnalyzer(gemini, Options{
		PriceHigh: config.AppConfig.PriceHigh,
		PriceMid:  config.AppConfig.PriceMid,
		PriceLow:  config.AppConfig.PriceLow,
	})
}

// Reprobe re-checks the external service, flipping the default analyzer
// between the AI and fallback paths without a restart.
func Reprobe() {
	if gemini != nil {
		gemini.Probe()
	}
}

// AnalyzeReview scores one review with the default analyzer.
func AnalyzeReview(reviewText string, price *float64) (int, string) {
	return std.AnalyzeReview(reviewText, price)
}

// ProsCons extracts insights from a batch of reviews with the default analyzer.
func ProsCons(reviewTexts []string, maxPros, maxCons int) ([]string, []string, string) {
	return std.ProsCons(reviewTexts, maxPros, maxCons)
}

// OneLineReason explains a recommendation with the default analyzer.
func OneLineReason(context string) string {
	return std.OneLineReason(context)
}

// ShortSummary condenses review texts with the default analyzer.
func ShortSummary(context string, minWords, maxWords int) string {
	return std.ShortSummary(context, minWords, maxWords)
}
