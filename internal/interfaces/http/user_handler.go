package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/karibu-groceries/kgl-api/internal/application/auth"
	"github.com/karibu-groceries/kgl-api/internal/application/dto"
	"github.com/karibu-groceries/kgl-api/internal/application/usecase"
)

// UserHandler serves /api/users, including registration and login.
type UserHandler struct {
	auth  *auth.AuthUseCase
	users *usecase.UserUseCase
}

// NewUserHandler builds the handler.
func NewUserHandler(authUC *auth.AuthUseCase, users *usecase.UserUseCase) *UserHandler {
	return &UserHandler{auth: authUC, users: users}
}

// Register godoc
// @Summary      Register a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.RegisterRequest  true  "username, email, password, role, status"
// @Success      201   {object}  dto.UserEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/users/register [post]
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "Error registering user", err)
	}
	user, err := h.auth.RegisterUser(c.UserContext(), in)
	if err != nil {
		return respondError(c, "Error registering user", err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.UserEnvelope{Message: "User registered successfully", User: *user})
}

// Login godoc
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body  dto.LoginRequest  true  "email, password"
// @Success      200   {object}  dto.LoginResponse
// @Failure      401   {object}  dto.ErrorResponse
// @Failure      403   {object}  dto.ErrorResponse
// @Failure      429   {object}  dto.ErrorResponse
// @Router       /api/users/login [post]
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "Error logging in", err)
	}
	out, err := h.auth.Login(c.UserContext(), in)
	if err != nil {
		return respondError(c, "Error logging in", err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      List users
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.UserListEnvelope
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	out, err := h.users.List(c.UserContext())
	if err != nil {
		return respondError(c, "Error fetching users", err)
	}
	return c.JSON(dto.UserListEnvelope{Message: "users successfully loaded", Users: out})
}

// GetByID godoc
// @Summary      Get a user
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "User ID"
// @Success      200  {object}  dto.UserEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.users.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, "Error fetching user", err)
	}
	return c.JSON(dto.UserEnvelope{Message: "User found", User: *out})
}

// Update godoc
// @Summary      Update a user
// @Description  A new password is hashed before it is stored.
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "User ID"
// @Param        body  body  dto.UpdateUserRequest  true  "Fields to change"
// @Success      200   {object}  dto.UserUpdatedEnvelope
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := parseBody(c, &in); err != nil {
		return respondError(c, "Error updating user", err)
	}
	out, err := h.users.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return respondError(c, "Error updating user", err)
	}
	return c.JSON(dto.UserUpdatedEnvelope{Message: "User updated successfully", UpdatedUser: *out})
}

// Delete godoc
// @Summary      Delete a user
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "User ID"
// @Success      200  {object}  dto.UserDeletedEnvelope
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	out, err := h.users.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, "Error deleting user", err)
	}
	return c.JSON(dto.UserDeletedEnvelope{Message: "User deleted successfully", DeletedUser: *out})
}
