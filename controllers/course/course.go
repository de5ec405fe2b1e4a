package courseController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cms-backend/middleware"
	"cms-backend/models"
	"cms-backend/services"
	courseValidator "cms-backend/validators/course"
)

type Controller struct {
	courses *services.CourseService
}

func New(courses *services.CourseService) *Controller {
	return &Controller{courses: courses}
}

func (ct *Controller) List(c *fiber.Ctx) error {
	courses, err := ct.courses.List()
	if err != nil {
		log.Printf("Error listing courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", courses)
}

func (ct *Controller) Search(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSearch").(*courseValidator.SearchRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	page := reqData.Page
	if page < 1 {
		page = 1
	}
	limit := reqData.Limit
	if limit < 1 {
		limit = 10
	}

	courses, total, err := ct.courses.Search(reqData.Q, page, limit)
	if err != nil {
		log.Printf("Error searching courses: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to search courses!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully.", fiber.Map{
		"courses": courses,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

func (ct *Controller) Create(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ct.courses.Create(&models.Course{
		Code:        reqData.Code,
		Title:       reqData.Title,
		Description: reqData.Description,
		Credits:     reqData.Credits,
		Capacity:    reqData.Capacity,
		Active:      reqData.Active,
	})
	if err != nil {
		if errors.Is(err, services.ErrCourseCodeTaken) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
		}
		log.Printf("Error creating course: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully.", course)
}

func (ct *Controller) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	reqData, ok := c.Locals("validatedCourse").(*courseValidator.CourseRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	course, err := ct.courses.Update(uint(id), &models.Course{
		Code:        reqData.Code,
		Title:       reqData.Title,
		Description: reqData.Description,
		Credits:     reqData.Credits,
		Capacity:    reqData.Capacity,
		Active:      reqData.Active,
	})
	if err != nil {
		if errors.Is(err, services.ErrCourseNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
		}
		if errors.Is(err, services.ErrCourseCodeTaken) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
		}
		log.Printf("Error updating course %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully.", course)
}

func (ct *Controller) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	if err := ct.courses.Delete(uint(id)); err != nil {
		log.Printf("Error deleting course %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
