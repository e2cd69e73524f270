package userRoutes

import (
	authControllers "tiffin/controllers/auth"
	"tiffin/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Patch("/profile", middleware.JWTMiddleware, authControllers.UpdateProfile)
	userGroup.Get("/login/history", middleware.JWTMiddleware, authControllers.LoginHistoryList)
}
