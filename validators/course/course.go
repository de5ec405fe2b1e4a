package courseValidator

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cms-backend/middleware"
)

var validate = validator.New()

// CourseRequest carries the full mutable representation of a course, used for
// both create and update.
type CourseRequest struct {
	Code        string `json:"code" validate:"required,max=20"`
	Title       string `json:"title" validate:"required,max=255"`
	Description string `json:"description"`
	Credits     int    `json:"credits" validate:"gte=0"`
	Capacity    int    `json:"capacity" validate:"gte=0"`
	Active      bool   `json:"active"`
}

type SearchRequest struct {
	Q     string `query:"q"`
	Page  int    `query:"page" validate:"gte=0"`
	Limit int    `query:"limit" validate:"gte=0,lte=100"`
}

func Course() fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Defaults apply only to fields the body omits; explicit zero values
		// (capacity 0, active false) are kept exactly as sent.
		reqData := &CourseRequest{Credits: 3, Capacity: 100, Active: true}
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.CollectValidationErrors(err))
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func Search() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SearchRequest)
		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, middleware.CollectValidationErrors(err))
		}

		c.Locals("validatedSearch", reqData)
		return c.Next()
	}
}
