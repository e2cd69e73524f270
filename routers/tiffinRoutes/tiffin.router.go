package tiffinRoutes

import (
	reviewControllers "tiffin/controllers/review"
	tiffinControllers "tiffin/controllers/tiffin"
	"tiffin/middleware"
	"tiffin/models"
	reviewValidators "tiffin/validators/review"
	tiffinValidators "tiffin/validators/tiffin"

	"github.com/gofiber/fiber/v2"
)

func SetupTiffinRoutes(app *fiber.App) {
	tiffinGroup := app.Group("/tiffin")

	// Browsing and reviews are open to any logged-in user
	tiffinGroup.Get("/", middleware.JWTMiddleware, tiffinControllers.BrowseTiffins)
	tiffinGroup.Get("/:id/reviews", middleware.JWTMiddleware, reviewControllers.ListReviews)
	tiffinGroup.Get("/:id/insights", middleware.JWTMiddleware, reviewControllers.Insights)
	tiffinGroup.Post("/:id/review", reviewValidators.Submit(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleStudent), reviewControllers.SubmitReview)

	// Listing management is provider-only
	tiffinGroup.Post("/", tiffinValidators.Save(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleProvider), tiffinControllers.AddTiffin)
	tiffinGroup.Put("/:id", tiffinValidators.Save(), middleware.JWTMiddleware, middleware.RequireRole(models.RoleProvider), tiffinControllers.UpdateTiffin)
	tiffinGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProvider), tiffinControllers.DeleteTiffin)
	tiffinGroup.Get("/my", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProvider), tiffinControllers.MyTiffins)
	tiffinGroup.Get("/dashboard", middleware.JWTMiddleware, middleware.RequireRole(models.RoleProvider), tiffinControllers.Dashboard)
}
