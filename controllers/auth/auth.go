package authController

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"cms-backend/middleware"
	"cms-backend/services"
	authValidator "cms-backend/validators/auth"
)

type Controller struct {
	users *services.UserService
}

func New(users *services.UserService) *Controller {
	return &Controller{users: users}
}

// Register creates a new account. The admin flag is always false here;
// promotion goes through PUT /users/:id/admin.
func (ct *Controller) Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ct.users.Register(reqData.Email, reqData.Username, reqData.Password, false)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) || errors.Is(err, services.ErrUsernameTaken) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, err.Error(), nil)
		}
		log.Printf("Error registering user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to register user!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "User registered successfully.", user.View())
}

// Login checks credentials and returns the user plus a token. Unknown email
// and wrong password produce the same response.
func (ct *Controller) Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	user, err := ct.users.Login(reqData.Email, reqData.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Invalid credentials!", nil)
		}
		log.Printf("Error logging in user: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log in!", nil)
	}

	token, err := middleware.GenerateJWT(user.ID, user.Username, user.Email, user.IsAdmin)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to log in!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Logged in successfully.", fiber.Map{
		"user":  user.View(),
		"token": token,
	})
}
