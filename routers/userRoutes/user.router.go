package userRoutes

import (
	"github.com/gofiber/fiber/v2"

	userController "cms-backend/controllers/user"
	userValidator "cms-backend/validators/user"
)

// SetupUserRoutes sets up user listing and admin promotion
func SetupUserRoutes(app *fiber.App, ctrl *userController.Controller) {
	group := app.Group("/users")

	group.Get("/", ctrl.List)
	group.Put("/:id/admin", userValidator.UpdateAdmin(), ctrl.UpdateAdmin)
}
