package ai

import (
	"fmt"
	"strings"
)

const (
	suggestionMaxLen = 300
	promptContextMax = 1500
	negationLookback = 20
)

var negationTokens = []string{"not ", "no ", "don't", "doesn't", "wasn't", "isn't"}

// Descriptions substituted for keyword hits in the fallback extractor.
var (
	positiveKeywords = []struct{ keyword, description string }{
		{"tasty", "Food is tasty and flavorful"},
		{"delicious", "Delicious meals appreciated by students"},
		{"fresh", "Fresh ingredients used"},
		{"homemade", "Homemade taste that students love"},
		{"good quality", "Good quality food"},
		{"clean", "Clean and hygienic preparation"},
		{"on time", "Timely delivery"},
		{"generous portion", "Generous portion sizes"},
		{"value for money", "Good value for money"},
		{"soft roti", "Soft and fresh rotis"},
		{"variety", "Good variety in menu"},
		{"healthy", "Healthy food options"},
		{"affordable", "Affordable pricing"},
		{"hot food", "Food served hot"},
		{"good taste", "Good taste overall"},
	}

	negativeKeywords = []struct{ keyword, description string }{
		{"late", "Sometimes late delivery"},
		{"cold", "Food sometimes arrives cold"},
		{"oily", "Food can be oily"},
		{"spicy", "Sometimes too spicy"},
		{"bland", "Food can be bland at times"},
		{"small portion", "Portion sizes could be bigger"},
		{"expensive", "Pricing could be better"},
		{"inconsistent", "Inconsistent quality"},
		{"stale", "Freshness could improve"},
		{"delay", "Delivery delays reported"},
		{"less quantity", "Quantity could be more"},
		{"not fresh", "Freshness concerns"},
		{"overpriced", "Feels overpriced to some"},
		{"packaging", "Packaging needs improvement"},
		{"average", "Average quality"},
	}
)

// ProsCons turns a batch of review texts into pros/cons lists and one
// improvement suggestion. A malformed AI response (empty pros OR empty
// cons) is discarded entirely and the fallback runs instead; AI and
// fallback output are never merged.
func (a *Analyzer) ProsCons(reviewTexts []string, maxPros, maxCons int) ([]string, []string, string) {
	context := strings.TrimSpace(strings.Join(reviewTexts, "\n"))
	if context == "" {
		return []string{"No reviews available yet."},
			[]string{"No reviews available yet."},
			"Collect more student reviews to get actionable insights."
	}

	trimmed := context
	if len(trimmed) > promptContextMax {
		trimmed = trimmed[:promptContextMax]
	}

	prompt := fmt.Sprintf(`Analyze these student reviews about a tiffin service and extract:

1. PROS: List %d positive points students mentioned (things they liked)
2. CONS: List %d negative points or complaints students mentioned
3. SUGGESTION: One short actionable suggestion for improvement (1-2 sentences)

Format your response EXACTLY like this:
PROS:
- [positive point 1]
- [positive point 2]
...

CONS:
- [negative point 1]
- [negative point 2]
...

SUGGESTION:
[Your improvement suggestion here]

Reviews:
%s
`, maxPros, maxCons, trimmed)

	pros := []string{}
	cons := []string{}
	suggestion := "Focus on maintaining food quality and timely delivery based on student feedback."

	if out, ok := a.complete(prompt); ok {
		pros, cons, suggestion = parseInsightResponse(out, maxPros, maxCons, suggestion)
	}

	// A partial response is as useless as none: rerun from the rules.
	if len(pros) == 0 || len(cons) == 0 {
		pros, cons, suggestion = fallbackProsCons(context, maxPros, maxCons)
	}

	if len(pros) == 0 {
		pros = []string{"Students generally find the food acceptable."}
	}
	if len(cons) == 0 {
		cons = []string{"No major complaints reported yet."}
	}

	return pros, cons, suggestion
}

// parseInsightResponse walks the completion with a section cursor that
// flips on PROS/CONS/SUGGESTION headers.
func parseInsightResponse(out string, maxPros, maxCons int, defaultSuggestion string) ([]string, []string, string) {
	var pros, cons, suggestionLines []string
	section := ""

	for _, raw := range strings.Split(out, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		low := strings.ToLower(line)
		switch {
		case strings.HasPrefix(low, "pros"):
			section = "pros"
			continue
		case strings.HasPrefix(low, "cons"):
			section = "cons"
			continue
		case strings.HasPrefix(low, "suggestion"):
			section = "suggestion"
			if _, rest, ok := strings.Cut(line, ":"); ok {
				if rest = strings.TrimSpace(rest); rest != "" {
					suggestionLines = append(suggestionLines, rest)
				}
			}
			continue
		}

		item := strings.TrimSpace(strings.TrimLeft(line, "-•*123456789.) "))
		if item == "" {
			continue
		}

		switch section {
		case "pros":
			if len(pros) < maxPros {
				pros = append(pros, item)
			}
		case "cons":
			if len(cons) < maxCons {
				cons = append(cons, item)
			}
		case "suggestion":
			suggestionLines = append(suggestionLines, item)
		}
	}

	suggestion := defaultSuggestion
	if len(suggestionLines) > 0 {
		suggestion = strings.Join(suggestionLines, " ")
		if len(suggestion) > suggestionMaxLen {
			suggestion = suggestion[:suggestionMaxLen]
		}
	}

	return pros, cons, suggestion
}

// fallbackProsCons is the keyword extractor. Positive keywords are
// skipped when a negation token appears just before them; negative
// keywords are taken at face value, complaints are rarely double-negated.
func fallbackProsCons(context string, maxPros, maxCons int) ([]string, []string, string) {
	text := strings.ToLower(context)

	var pros, cons []string

	for _, kw := range positiveKeywords {
		if len(pros) >= maxPros {
			break
		}
		idx := strings.Index(text, kw.keyword)
		if idx < 0 {
			continue
		}
		if !negatedBefore(text, idx) {
			pros = append(pros, kw.description)
		}
	}

	for _, kw := range negativeKeywords {
		if len(cons) >= maxCons {
			break
		}
		if strings.Contains(text, kw.keyword) {
			cons = append(cons, kw.description)
		}
	}

	if len(pros) == 0 {
		pros = []string{"Food quality is generally acceptable"}
	}
	if len(cons) == 0 {
		cons = []string{"No specific complaints identified"}
	}

	var suggestion string
	if cons[0] != "No specific complaints identified" {
		suggestion = fmt.Sprintf("Consider addressing: %s. Regular feedback collection can help improve service.",
			strings.ToLower(cons[0]))
	} else {
		suggestion = "Continue maintaining current standards and collect more student feedback for improvements."
	}

	return pros, cons, suggestion
}

// negatedBefore reports whether a negation token occurs in the lookback
// window right before position idx.
func negatedBefore(text string, idx int) bool {
	start := idx - negationLookback
	if start < 0 {
		start = 0
	}
	snippet := text[start:idx]
	for _, neg := range negationTokens {
		if strings.Contains(snippet, neg) {
			return true
		}
	}
	return false
}
