package courseRoutes

import (
	"github.com/gofiber/fiber/v2"

	courseController "cms-backend/controllers/course"
	courseValidator "cms-backend/validators/course"
)

// SetupCourseRoutes sets up course CRUD and search
func SetupCourseRoutes(app *fiber.App, ctrl *courseController.Controller) {
	group := app.Group("/courses")

	group.Get("/", ctrl.List)
	group.Get("/search", courseValidator.Search(), ctrl.Search)
	group.Post("/", courseValidator.Course(), ctrl.Create)
	group.Put("/:id", courseValidator.Course(), ctrl.Update)
	group.Delete("/:id", ctrl.Delete)
}
