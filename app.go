package main

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"gorm.io/gorm"

	authController "cms-backend/controllers/auth"
	courseController "cms-backend/controllers/course"
	enrollmentController "cms-backend/controllers/enrollment"
	resultController "cms-backend/controllers/result"
	userController "cms-backend/controllers/user"

	"cms-backend/config"
	"cms-backend/routers/authRoutes"
	"cms-backend/routers/courseRoutes"
	"cms-backend/routers/enrollmentRoutes"
	"cms-backend/routers/resultRoutes"
	"cms-backend/routers/userRoutes"
	"cms-backend/services"
)

// buildApp wires services, controllers and routes onto a fiber app.
// Split out from main so tests can run the same app against a test database.
func buildApp(db *gorm.DB) *fiber.App {
	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency} ${locals:requestid}\n",
	}))

	userService := services.NewUserService(db, config.AppConfig.BcryptCost)
	courseService := services.NewCourseService(db)
	enrollmentService := services.NewEnrollmentService(db)
	resultService := services.NewResultService(db)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":  "ok",
			"service": "cms-backend",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	authRoutes.SetupAuthRoutes(app, authController.New(userService))
	courseRoutes.SetupCourseRoutes(app, courseController.New(courseService))
	enrollmentRoutes.SetupEnrollmentRoutes(app, enrollmentController.New(enrollmentService))
	resultRoutes.SetupResultRoutes(app, resultController.New(resultService))
	userRoutes.SetupUserRoutes(app, userController.New(userService))

	return app
}
