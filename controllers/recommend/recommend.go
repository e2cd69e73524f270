package recommendController

import (
	"fmt"
	"strings"
	"tiffin/ai"
	"tiffin/database"
	"tiffin/middleware"
	"tiffin/models"
	"tiffin/ranking"

	"github.com/gofiber/fiber/v2"
)

// loadSummaries reads the immutable snapshot the ranking runs on: all
// live tiffins plus all their reviews, aggregated fresh on every request.
func loadSummaries() ([]ranking.ProviderSummary, error) {
	db := database.Database.Db

	var tiffins []models.Tiffin
	if err := db.Where("is_deleted = false").Order("id").Find(&tiffins).Error; err != nil {
		return nil, err
	}

	var reviews []models.Review
	if err := db.Where("is_deleted = false").Find(&reviews).Error; err != nil {
		return nil, err
	}

	return ranking.SummarizeAll(tiffins, reviews), nil
}

// reasonFor derives a one-line justification for a pick: the first AI
// summary among its reviews, else a review excerpt, else a stock line.
func reasonFor(tiffinID uint) string {
	reason := "Top choice based on combined AI score, user ratings and price."

	var reviews []models.Review
	if err := database.Database.Db.
		Where("tiffin_id = ? AND is_deleted = false", tiffinID).
		Find(&reviews).Error; err != nil {
		return reason
	}

	for _, r := range reviews {
		if r.AiSummary != "" && r.AiSummary != ai.FallbackSummary {
			return r.AiSummary
		}
	}
	for _, r := range reviews {
		if txt := strings.TrimSpace(r.Comment); txt != "" {
			if len(txt) > 120 {
				return txt[:120] + "..."
			}
			return txt
		}
	}
	return reason
}

// TopRated returns the top three tiffins by combined overall score, each
// with a one-line reason for the pick.
func TopRated(c *fiber.Ctx) error {
	summaries, err := loadSummaries()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute rankings!", nil)
	}

	if len(summaries) == 0 {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "No ratings yet. Be the first to review!", []any{})
	}

	top := ranking.TopOverall(summaries, 3)

	type rankedTiffin struct {
		Rank    int                     `json:"rank"`
		Score   float64                 `json:"score"`
		Summary ranking.ProviderSummary `json:"summary"`
		Reason  string                  `json:"reason"`
	}

	response := make([]rankedTiffin, 0, len(top))
	for i, w := range top {
		context := reasonFor(w.Summary.TiffinID)
		context = fmt.Sprintf("%s. AI avg %.1f/10, rating avg %.1f/5.", context, w.Summary.AvgAiScore, w.Summary.AvgRating)
		response = append(response, rankedTiffin{
			Rank:    i + 1,
			Score:   w.Score,
			Summary: w.Summary,
			Reason:  ai.OneLineReason(context),
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Top tiffins fetched!", response)
}

// CategoryWinners returns the five category picks. A null category means
// no eligible provider exists, which is an expected outcome.
func CategoryWinners(c *fiber.Ctx) error {
	summaries, err := loadSummaries()
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to compute rankings!", nil)
	}

	winners := ranking.Rank(summaries)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category winners fetched!", winners)
}
