package ai

import (
	"fmt"
	"strings"
)

const reasonMaxLen = 220

// OneLineReason produces a short sentence explaining why a tiffin is
// recommended, from a context snippet (summaries, review excerpts). The
// fallback is a truncated echo of the context itself.
func (a *Analyzer) OneLineReason(context string) string {
	if strings.TrimSpace(context) == "" {
		return "Recommended based on reviews and ratings."
	}

	prompt := fmt.Sprintf(`Given the following short context about a tiffin option, provide a single short sentence (one line) explaining why this is a good recommendation. Keep it under 25 words.

Context:
%s
`, context)

	if out, ok := a.complete(prompt); ok {
		for _, line := range strings.Split(out, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			if len(line) > reasonMaxLen {
				return line[:reasonMaxLen-3] + "..."
			}
			return line
		}
	}

	txt := strings.ReplaceAll(strings.TrimSpace(context), "\n", " ")
	if len(txt) > reasonMaxLen {
		return txt[:reasonMaxLen-3] + "..."
	}
	return txt
}

// ShortSummary condenses review texts into a phrase of minWords to
// maxWords words capturing the main taste/quality points.
func (a *Analyzer) ShortSummary(context string, minWords, maxWords int) string {
	if strings.TrimSpace(context) == "" {
		return "No reviews yet."
	}

	prompt := fmt.Sprintf(`Given the following user reviews, produce a concise summary phrase of %d to %d words capturing the main taste/quality points. Output only the phrase (no extra explanation).

Reviews:
%s
`, minWords, maxWords, context)

	if out, ok := a.complete(prompt); ok {
		for _, line := range strings.Split(out, "\n") {
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}
			words := strings.Fields(line)
			if len(words) > maxWords {
				return strings.Join(words[:maxWords], " ")
			}
			return line
		}
	}

	rawWords := strings.Fields(strings.ReplaceAll(context, "\n", " "))
	if len(rawWords) == 0 {
		return "No reviews yet."
	}
	if len(rawWords) > maxWords {
		rawWords = rawWords[:maxWords]
	}
	return strings.Join(rawWords, " ")
}
