package reviewController_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"tiffin/ai"
	"tiffin/config"
	"tiffin/database"
	"tiffin/middleware"
	"tiffin/models"
	tiffinRoutes "tiffin/routers/tiffinRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp(t *testing.T) *fiber.App {
	t.Setenv("DB_HOST", "")
	t.Setenv("DB_NAME", ":memory:")
	t.Setenv("GEMINI_API_KEY", "") // force the rule-based path, no network

	config.LoadConfig()
	database.ConnectDb()
	ai.Setup()

	app := fiber.New()
	tiffinRoutes.SetupTiffinRoutes(app)
	return app
}

func submitReview(t *testing.T, app *fiber.App, token string, tiffinID uint, rating int, text string) *http.Response {
	body, err := json.Marshal(fiber.Map{"rating": rating, "review": text})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("/tiffin/%d/review", tiffinID), bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestSubmitReviewReplacesNotDuplicates(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	student := models.User{Name: "Asha", Email: "asha@example.com", Role: models.RoleStudent, Password: "x"}
	require.NoError(t, db.Create(&student).Error)

	provider := models.User{Name: "Maa Kitchen", Email: "owner@example.com", Role: models.RoleProvider, Password: "x"}
	require.NoError(t, db.Create(&provider).Error)

	tiffin := models.Tiffin{ProviderID: provider.ID, Name: "Maa Kitchen Lunch", FoodType: models.FoodVeg, PricePerTiffin: 80}
	require.NoError(t, db.Create(&tiffin).Error)

	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Role, student.Email)
	require.NoError(t, err)

	resp := submitReview(t, app, token, tiffin.ID, 3, "okay food, sometimes late")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = submitReview(t, app, token, tiffin.ID, 5, "excellent and fresh, love it")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Exactly one record for the (tiffin, author) pair, holding the
	// second submission's values.
	var reviews []models.Review
	require.NoError(t, db.Where("tiffin_id = ? AND user_id = ?", tiffin.ID, student.ID).Find(&reviews).Error)
	require.Len(t, reviews, 1)
	assert.Equal(t, 5, reviews[0].Rating)
	assert.Equal(t, "excellent and fresh, love it", reviews[0].Comment)
	assert.Equal(t, ai.FallbackSummary, reviews[0].AiSummary)
	assert.GreaterOrEqual(t, reviews[0].AiScore, 0)
	assert.LessOrEqual(t, reviews[0].AiScore, 10)

	// The scorer saw the per-tiffin price
	require.NotNil(t, reviews[0].Price)
	assert.InDelta(t, 80.0, *reviews[0].Price, 0.0001)
}

func TestSubmitReviewRejectsBadRating(t *testing.T) {
	app := setupApp(t)
	db := database.Database.Db

	student := models.User{Name: "Ravi", Email: "ravi@example.com", Role: models.RoleStudent, Password: "x"}
	require.NoError(t, db.Create(&student).Error)

	tiffin := models.Tiffin{ProviderID: 999, Name: "Anywhere", FoodType: models.FoodVeg}
	require.NoError(t, db.Create(&tiffin).Error)

	token, err := middleware.GenerateJWT(student.ID, student.Name, student.Role, student.Email)
	require.NoError(t, err)

	resp := submitReview(t, app, token, tiffin.ID, 0, "no rating given")
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
}
