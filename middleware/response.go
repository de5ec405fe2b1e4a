package middleware

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

func JsonResponse(c *fiber.Ctx, statusCode int, status bool, message string, data interface{}) error {
	return c.Status(statusCode).JSON(fiber.Map{
		"status":  status,
		"message": message,
		"data":    data,
	})
}

func ValidationErrorResponse(c *fiber.Ctx, errors map[string]string) error {
	return JsonResponse(c, fiber.StatusUnprocessableEntity, false, "Validation failed!", errors)
}

// CollectValidationErrors flattens validator.v10 failures into a field -> rule map
func CollectValidationErrors(err error) map[string]string {
	fieldErrors := make(map[string]string)
	if err == nil {
		return fieldErrors
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["body"] = "Invalid request data!"
		return fieldErrors
	}

	for _, fe := range validationErrors {
		switch fe.Tag() {
		case "required":
			fieldErrors[fe.Field()] = "This field is required!"
		case "email":
			fieldErrors[fe.Field()] = "Must be a valid email address!"
		case "min":
			fieldErrors[fe.Field()] = "Must be at least " + fe.Param() + " characters long!"
		case "max":
			fieldErrors[fe.Field()] = "Must be at most " + fe.Param() + " characters long!"
		case "gte":
			fieldErrors[fe.Field()] = "Must be greater than or equal to " + fe.Param() + "!"
		case "lte":
			fieldErrors[fe.Field()] = "Must be less than or equal to " + fe.Param() + "!"
		default:
			fieldErrors[fe.Field()] = "Invalid value!"
		}
	}
	return fieldErrors
}
