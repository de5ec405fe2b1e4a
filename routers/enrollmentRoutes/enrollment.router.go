package enrollmentRoutes

import (
	"github.com/gofiber/fiber/v2"

	enrollmentController "cms-backend/controllers/enrollment"
	enrollmentValidator "cms-backend/validators/enrollment"
)

// SetupEnrollmentRoutes sets up enrollment creation, dropping and listing
func SetupEnrollmentRoutes(app *fiber.App, ctrl *enrollmentController.Controller) {
	group := app.Group("/enrollments")

	group.Post("/enroll", enrollmentValidator.Enroll(), ctrl.Enroll)
	group.Delete("/:id", ctrl.Drop)
	group.Get("/student/:id", ctrl.ByStudent)
	group.Get("/course/:id", ctrl.ByCourse)
}
