package enrollmentValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cms-backend/middleware"
)

var validate = validator.New()

type EnrollRequest struct {
	StudentID uint `json:"studentId" validate:"required"`
	CourseID  uint `json:"courseId" validate:"required"`
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.CollectValidationErrors(err))
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}
