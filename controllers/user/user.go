package userController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cms-backend/middleware"
	"cms-backend/models"
	"cms-backend/services"
	userValidator "cms-backend/validators/user"
)

type Controller struct {
	users *services.UserService
}

func New(users *services.UserService) *Controller {
	return &Controller{users: users}
}

func (ct *Controller) List(c *fiber.Ctx) error {
	users, err := ct.users.FindAll()
	if err != nil {
		log.Printf("Error listing users: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	views := make([]models.UserView, 0, len(users))
	for i := range users {
		views = append(views, users[i].View())
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully.", views)
}

func (ct *Controller) UpdateAdmin(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	reqData, ok := c.Locals("validatedAdmin").(*userValidator.UpdateAdminRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ct.users.UpdateAdminStatus(uint(id), reqData.IsAdmin)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
		}
		log.Printf("Error updating admin status for user %d: %v", id, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update admin status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Admin status updated successfully.", user.View())
}
