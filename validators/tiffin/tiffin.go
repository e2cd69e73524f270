package tiffinValidator

import (
	"tiffin/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type tiffinPayload struct {
	Name              string   `json:"name" validate:"required,min=2"`
	Location          string   `json:"location" validate:"required"`
	FoodType          string   `json:"foodType" validate:"required,oneof=Veg Non-Veg Both"`
	DeliveryLocations []string `json:"deliveryLocations"`
	PriceMonthly      float64  `json:"priceMonthly" validate:"gte=0"`
	PriceDaily        float64  `json:"priceDaily" validate:"gte=0"`
	PricePerTiffin    float64  `json:"pricePerTiffin" validate:"gte=0"`
	ImageUrls         []string `json:"imageUrls" validate:"max=3,dive,omitempty,url"`
}

// Save validates the create/update payload for a tiffin listing.
func Save() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(tiffinPayload)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Name":
					errors["name"] = "Tiffin name is required!"
				case "Location":
					errors["location"] = "Location is required!"
				case "FoodType":
					errors["foodType"] = "Food type must be Veg, Non-Veg or Both!"
				case "PriceMonthly", "PriceDaily", "PricePerTiffin":
					errors["price"] = "Prices cannot be negative!"
				case "ImageUrls":
					errors["imageUrls"] = "Provide at most 3 valid image URLs!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
