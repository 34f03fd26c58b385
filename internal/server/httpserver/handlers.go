package httpserver

import (
	"strconv"
	"strings"

	"github.com/dmitrijs2005/staffview/internal/common"
	"github.com/gofiber/fiber/v2"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type authHandler struct {
	auth AuthService
}

func (h *authHandler) login(c *fiber.Ctx) error {
	var in loginRequest
	if err := c.BodyParser(&in); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if strings.TrimSpace(in.Email) == "" || in.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "email and password are required")
	}

	token, user, err := h.auth.Login(c.UserContext(), in.Email, in.Password)
	if err != nil {
		return err
	}
	return c.JSON(loginResponse{Email: user.Email, Token: token})
}

func (h *authHandler) logout(c *fiber.Ctx) error {
	token, _ := c.Locals(LocalToken).(string)
	if err := h.auth.Logout(c.UserContext(), token); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

type employeeHandler struct {
	employees EmployeeService
}

func (h *employeeHandler) list(c *fiber.Ctx) error {
	page, err := queryInt(c, "page", 1)
	if err != nil || page < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "page must be a positive integer")
	}
	size, err := queryInt(c, "size", 0)
	if err != nil || size < 0 {
		return fiber.NewError(fiber.StatusBadRequest, "size must be a non-negative integer")
	}

	out, err := h.employees.List(c.UserContext(), page, size)
	if err != nil {
		return err
	}

	c.Set(common.TotalCountHeaderName, strconv.Itoa(out.Total))
	if out.Items == nil {
		return c.JSON([]any{})
	}
	return c.JSON(out.Items)
}

func queryInt(c *fiber.Ctx, key string, def int) (int, error) {
	v := c.Query(key)
	if v == "" {
		return def, nil
	}
	return strconv.Atoi(v)
}
