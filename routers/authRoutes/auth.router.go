package authRoutes

import (
	"github.com/gofiber/fiber/v2"

	authController "cms-backend/controllers/auth"
	authValidator "cms-backend/validators/auth"
)

// SetupAuthRoutes sets up registration and login
func SetupAuthRoutes(app *fiber.App, ctrl *authController.Controller) {
	group := app.Group("/auth")

	group.Post("/register", authValidator.Register(), ctrl.Register)
	group.Post("/login", authValidator.Login(), ctrl.Login)
}
