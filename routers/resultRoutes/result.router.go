package resultRoutes

import (
	"github.com/gofiber/fiber/v2"

	resultController "cms-backend/controllers/result"
	resultValidator "cms-backend/validators/result"
)

// SetupResultRoutes sets up result upsert and lookup
func SetupResultRoutes(app *fiber.App, ctrl *resultController.Controller) {
	group := app.Group("/results")

	group.Post("/update", resultValidator.UpdateResult(), ctrl.Update)
	group.Get("/:enrollmentId", ctrl.Get)
}
