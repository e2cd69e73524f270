package main

import (
	"log"
	"tiffin/ai"
	"tiffin/config"
	"tiffin/database"
	authRoutes "tiffin/routers/authRoutes"
	recommendRoutes "tiffin/routers/recommendRoutes"
	tiffinRoutes "tiffin/routers/tiffinRoutes"
	userRoutes "tiffin/routers/userRoutes"
	"tiffin/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	// Wire up the review analyzer and keep probing the AI service
	ai.Setup()
	utils.StartAIProbeScheduler()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",  // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	tiffinRoutes.SetupTiffinRoutes(app)
	recommendRoutes.SetupRecommendRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
