package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/payslip-api/internal/application/dto"
	"github.com/jhoicas/payslip-api/internal/application/usecase"
	"github.com/jhoicas/payslip-api/internal/domain"
	"github.com/jhoicas/payslip-api/pkg/logger"
)

// UserHandler administración de cuentas (solo admin).
type UserHandler struct {
	uc  *usecase.UserUseCase
	log *logger.Logger
}

// NewUserHandler construye el handler inyectando el caso de uso.
func NewUserHandler(uc *usecase.UserUseCase, log *logger.Logger) *UserHandler {
	return &UserHandler{uc: uc, log: log}
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   dto.UserResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return serverError(c, h.log, err, "listar usuarios")
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  dto.CreateUserRequest  true  "name, email, password, role"
// @Success      201   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "Invalid request body")
	}
	if _, err := h.uc.Create(c.UserContext(), in); err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailAlreadyExists):
			return badRequest(c, "EMAIL_EXISTS", "Email already exists")
		case isInvalidInput(err):
			return badRequest(c, "VALIDATION", "All fields are required and role must be admin or user")
		}
		return serverError(c, h.log, err, "crear usuario")
	}
	h.audit(c, "create", in.Email)
	return c.Status(fiber.StatusCreated).JSON(dto.MessageResponse{Message: "User created successfully"})
}

// UpdatePassword godoc
// @Summary      Cambiar contraseña de un usuario
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path  string                     true  "ID del usuario"
// @Param        body  body  dto.UpdatePasswordRequest  true  "password o newPassword"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id}/password [put]
func (h *UserHandler) UpdatePassword(c *fiber.Ctx) error {
	var in dto.UpdatePasswordRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "INVALID_BODY", "Invalid request body")
	}
	if err := h.uc.UpdatePassword(c.UserContext(), c.Params("id"), in.Value()); err != nil {
		switch {
		case isInvalidInput(err):
			return badRequest(c, "VALIDATION", "Password must be at least 4 characters")
		case errors.Is(err, domain.ErrUserNotFound):
			return notFound(c, "USER_NOT_FOUND", "User not found")
		}
		return serverError(c, h.log, err, "cambiar contraseña")
	}
	h.audit(c, "update_password", c.Params("id"))
	return c.JSON(dto.MessageResponse{Message: "Password updated successfully"})
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.MessageResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return notFound(c, "USER_NOT_FOUND", "User not found")
		}
		return serverError(c, h.log, err, "eliminar usuario")
	}
	h.audit(c, "delete", c.Params("id"))
	return c.JSON(dto.MessageResponse{Message: "User deleted successfully"})
}

// audit deja constancia de quién modificó cuentas.
func (h *UserHandler) audit(c *fiber.Ctx, action, target string) {
	h.log.Info().
		Str("action", action).
		Str("target", target).
		Str("actor_id", GetUserID(c)).
		Str("actor", GetEmail(c)).
		Interface("request_id", c.Locals("requestid")).
		Msg("administración de usuarios")
}
