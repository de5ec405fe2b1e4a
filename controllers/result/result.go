package resultController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cms-backend/middleware"
	"cms-backend/services"
	resultValidator "cms-backend/validators/result"
)

type Controller struct {
	results *services.ResultService
}

func New(results *services.ResultService) *Controller {
	return &Controller{results: results}
}

// Update is the idempotent upsert keyed by enrollment: first call creates the
// result, later calls overwrite grade and marks in place.
func (ct *Controller) Update(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedResult").(*resultValidator.ResultRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	result, err := ct.results.Upsert(reqData.EnrollmentID, reqData.Grade, reqData.Marks)
	if err != nil {
		if errors.Is(err, services.ErrEnrollmentNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
		}
		log.Printf("Error upserting result for enrollment %d: %v", reqData.EnrollmentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Result updated successfully.", result)
}

func (ct *Controller) Get(c *fiber.Ctx) error {
	enrollmentID, err := c.ParamsInt("enrollmentId")
	if err != nil || enrollmentID < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	result, err := ct.results.ByEnrollment(uint(enrollmentID))
	if err != nil {
		if errors.Is(err, services.ErrResultNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
		}
		log.Printf("Error fetching result for enrollment %d: %v", enrollmentID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch result!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Result fetched successfully.", result)
}
