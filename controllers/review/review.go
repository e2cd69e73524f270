package reviewController

import (
	"log"
	"tiffin/ai"
	"tiffin/database"
	"tiffin/middleware"
	"tiffin/models"
	"tiffin/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmitReview records a student's review of a tiffin. The review text is
// scored by the AI analyzer (or its fallback) at write time, using the
// listing's per-tiffin price as the price signal. One review per
// (tiffin, author): resubmitting overwrites the earlier one in place.
func SubmitReview(c *fiber.Ctx) error {
	userId := c.Locals("userId").(uint)
	tiffinId := c.Params("id")

	reqData := new(struct {
		Rating int    `json:"rating"`
		Review string `json:"review"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Rating < 1 || reqData.Rating > 5 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Rating must be between 1 and 5!", nil)
	}

	db := database.Database.Db

	// Check if tiffin exists
	var tiffin models.Tiffin
	if err := db.Where("id = ? AND is_deleted = false", tiffinId).First(&tiffin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tiffin not found!", nil)
	}

	var price *float64
	if tiffin.PricePerTiffin > 0 {
		p := tiffin.PricePerTiffin
		price = &p
	}

	aiScore, aiSummary := ai.AnalyzeReview(reqData.Review, price)

	// Overwrite-or-insert keyed on (tiffin, author). The unique index on
	// the pair backs this against concurrent resubmissions.
	var review models.Review
	err := db.Where("tiffin_id = ? AND user_id = ?", tiffin.ID, userId).First(&review).Error
	switch {
	case err == nil:
		review.Rating = reqData.Rating
		review.Comment = reqData.Review
		review.AiScore = aiScore
		review.AiSummary = aiSummary
		review.Price = price
		review.IsDeleted = false
		if err := db.Save(&review).Error; err != nil {
			log.Printf("Error updating review: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
		}
	case err == gorm.ErrRecordNotFound:
		review = models.Review{
			TiffinID:  tiffin.ID,
			UserID:    userId,
			Rating:    reqData.Rating,
			Comment:   reqData.Review,
			AiScore:   aiScore,
			AiSummary: aiSummary,
			Price:     price,
		}
		if err := db.Create(&review).Error; err != nil {
			log.Printf("Error saving review: %v", err)
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
		}
	default:
		log.Printf("Error looking up review: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	// Notify the listing owner (best-effort, off the request path)
	go func(tiffin models.Tiffin, rating int) {
		var owner models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = false", tiffin.ProviderID).First(&owner).Error; err != nil {
			return
		}
		if err := utils.SendReviewNotification(owner.Email, owner.Name, tiffin.Name, rating); err != nil {
			log.Printf("Error sending review notification: %v", err)
		}
	}(tiffin, reqData.Rating)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Review submitted successfully!", fiber.Map{
		"review":    review,
		"aiScore":   aiScore,
		"aiSummary": aiSummary,
	})
}

// ListReviews returns every review of a tiffin with the author's name.
func ListReviews(c *fiber.Ctx) error {
	tiffinId := c.Params("id")

	db := database.Database.Db

	var reviews []models.Review
	if err := db.Where("tiffin_id = ? AND is_deleted = false", tiffinId).
		Preload("User", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, name")
		}).
		Order("created_at DESC").
		Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type reviewResponse struct {
		models.Review
		UserName string `json:"userName"`
	}

	response := make([]reviewResponse, 0, len(reviews))
	for _, r := range reviews {
		response = append(response, reviewResponse{
			Review:   r,
			UserName: r.User.Name,
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched!", response)
}

// Insights runs the pros/cons extractor over all of a tiffin's review texts.
func Insights(c *fiber.Ctx) error {
	tiffinId := c.Params("id")
	maxPros := c.QueryInt("maxPros", 5)
	maxCons := c.QueryInt("maxCons", 5)

	if maxPros < 1 {
		maxPros = 5
	}
	if maxCons < 1 {
		maxCons = 5
	}

	db := database.Database.Db

	var tiffin models.Tiffin
	if err := db.Where("id = ? AND is_deleted = false", tiffinId).First(&tiffin).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tiffin not found!", nil)
	}

	var reviews []models.Review
	if err := db.Where("tiffin_id = ? AND is_deleted = false", tiffin.ID).Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	texts := make([]string, 0, len(reviews))
	for _, r := range reviews {
		if r.Comment != "" {
			texts = append(texts, r.Comment)
		}
	}

	pros, cons, suggestion := ai.ProsCons(texts, maxPros, maxCons)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Insights generated!", fiber.Map{
		"tiffinId":   tiffin.ID,
		"pros":       pros,
		"cons":       cons,
		"suggestion": suggestion,
	})
}
