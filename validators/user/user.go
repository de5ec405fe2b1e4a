package userValidator

import (
	"github.com/gofiber/fiber/v2"

	"cms-backend/middleware"
)

// UpdateAdminRequest has no validate tags on purpose: required on a bool
// would reject an explicit false.
type UpdateAdminRequest struct {
	IsAdmin bool `json:"isAdmin"`
}

func UpdateAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateAdminRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedAdmin", reqData)
		return c.Next()
	}
}
