package reviewValidator

import (
	"tiffin/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// Submit validates the review payload. The review text may be empty; an
// empty text is a defined scoring edge case, not a validation error.
func Submit() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Rating int    `json:"rating" validate:"required,min=1,max=5"`
			Review string `json:"review" validate:"max=2000"`
		})
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			errors := make(map[string]string)
			for _, fieldErr := range err.(validator.ValidationErrors) {
				switch fieldErr.Field() {
				case "Rating":
					errors["rating"] = "Rating must be between 1 and 5!"
				case "Review":
					errors["review"] = "Review must be at most 2000 characters!"
				}
			}
			return middleware.ValidationErrorResponse(c, errors)
		}

		return c.Next()
	}
}
