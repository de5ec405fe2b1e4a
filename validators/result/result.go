package resultValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cms-backend/middleware"
)

var validate = validator.New()

type ResultRequest struct {
	EnrollmentID uint     `json:"enrollmentId" validate:"required"`
	Grade        string   `json:"grade" validate:"max=5"`
	Marks        *float64 `json:"marks" validate:"omitempty,gte=0,lte=100"`
}

func UpdateResult() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(ResultRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.CollectValidationErrors(err))
		}

		c.Locals("validatedResult", reqData)
		return c.Next()
	}
}
