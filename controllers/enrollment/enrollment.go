package enrollmentController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cms-backend/middleware"
	"cms-backend/services"
	enrollmentValidator "cms-backend/validators/enrollment"
)

type Controller struct {
	enrollments *services.EnrollmentService
}

func New(enrollments *services.EnrollmentService) *Controller {
	return &Controller{enrollments: enrollments}
}

func (ct *Controller) Enroll(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEnroll").(*enrollmentValidator.EnrollRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	view, err := ct.enrollments.Enroll(reqData.StudentID, reqData.CourseID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAlreadyEnrolled), errors.Is(err, services.ErrCourseFull):
			return middleware.JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
		case errors.Is(err, services.ErrCourseNotFound), errors.Is(err, services.ErrStudentNotFound):
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
		}
		log.Printf("Error enrolling student %d in course %d: %v", reqData.StudentID, reqData.CourseID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to enroll in course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrolled in course successfully.", view)
}

func (ct *Controller) Drop(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	if err := ct.enrollments.Drop(uint(id)); err != nil {
		log.Printf("Error dropping enrollment %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to drop enrollment!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

func (ct *Controller) ByStudent(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid student id!", nil)
	}

	views, err := ct.enrollments.ByStudent(uint(id))
	if err != nil {
		log.Printf("Error fetching enrollments for student %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", views)
}

func (ct *Controller) ByCourse(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	views, err := ct.enrollments.ByCourse(uint(id))
	if err != nil {
		log.Printf("Error fetching enrollments for course %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully.", views)
}
