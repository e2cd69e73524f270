package recommendRoutes

import (
	recommendControllers "tiffin/controllers/recommend"
	"tiffin/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupRecommendRoutes(app *fiber.App) {
	recommendGroup := app.Group("/recommend")

	recommendGroup.Get("/top", middleware.JWTMiddleware, recommendControllers.TopRated)
	recommendGroup.Get("/categories", middleware.JWTMiddleware, recommendControllers.CategoryWinners)
}
