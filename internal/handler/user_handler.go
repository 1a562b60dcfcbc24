package handler

import (
	"go-pos-ledger/internal/model"
	"go-pos-ledger/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type UserHandler struct {
	userService service.UserService
	log         *logrus.Logger
}

func NewUserHandler(userService service.UserService, log *logrus.Logger) *UserHandler {
	return &UserHandler{userService: userService, log: log}
}

// GetUsers returns all users without their passwords
// GET /api/users
func (h *UserHandler) GetUsers(c *fiber.Ctx) error {
	return c.JSON(h.userService.GetAllUsers())
}

// GET /api/users/:id
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrUserNotFound)
	if err != nil {
		return fail(c, h.log, "GetUser", err)
	}
	user, err := h.userService.GetUserByID(id)
	if err != nil {
		return fail(c, h.log, "GetUser", err)
	}
	return c.JSON(user)
}

// POST /api/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req service.CreateUserRequest
	if err := parseBody(c, &req); err != nil {
		return fail(c, h.log, "CreateUser", err)
	}
	user, err := h.userService.CreateUser(&req)
	if err != nil {
		return fail(c, h.log, "CreateUser", err)
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// PUT /api/users/:id
func (h *UserHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrUserNotFound)
	if err != nil {
		return fail(c, h.log, "UpdateUser", err)
	}
	var patch model.UserPatch
	if err := parseBody(c, &patch); err != nil {
		return fail(c, h.log, "UpdateUser", err)
	}
	user, err := h.userService.UpdateUser(id, &patch)
	if err != nil {
		return fail(c, h.log, "UpdateUser", err)
	}
	return c.JSON(user)
}

// DELETE /api/users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrUserNotFound)
	if err != nil {
		return fail(c, h.log, "DeleteUser", err)
	}
	if err := h.userService.DeleteUser(id); err != nil {
		return fail(c, h.log, "DeleteUser", err)
	}
	return message(c, "User successfully deleted")
}

// UpdateUserStatus activates or deactivates an account
// PATCH /api/users/:id/status
func (h *UserHandler) UpdateUserStatus(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrUserNotFound)
	if err != nil {
		return fail(c, h.log, "UpdateUserStatus", err)
	}
	var req struct {
		Status model.UserStatus `json:"status"`
	}
	if err := parseBody(c, &req); err != nil {
		return fail(c, h.log, "UpdateUserStatus", err)
	}
	user, err := h.userService.UpdateUserStatus(id, req.Status)
	if err != nil {
		return fail(c, h.log, "UpdateUserStatus", err)
	}
	return c.JSON(user)
}

// POST /api/users/:id/reset-password
func (h *UserHandler) ResetPassword(c *fiber.Ctx) error {
	id, err := parseID(c, service.ErrUserNotFound)
	if err != nil {
		return fail(c, h.log, "ResetPassword", err)
	}
	var req struct {
		NewPassword string `json:"newPassword"`
	}
	if err := parseBody(c, &req); err != nil {
		return fail(c, h.log, "ResetPassword", err)
	}
	if err := h.userService.ResetPassword(id, req.NewPassword); err != nil {
		return fail(c, h.log, "ResetPassword", err)
	}
	return message(c, "Password reset successfully")
}
