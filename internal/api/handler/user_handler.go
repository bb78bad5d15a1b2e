package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sesamelabs/identity-service/internal/core/domain"
	"github.com/sesamelabs/identity-service/internal/core/ports"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type updateUserRequest struct {
	Username string `json:"username,omitempty" validate:"omitempty,min=3,max=32"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8,max=32"`
	Role     string `json:"role,omitempty"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type usersResponse struct {
	Users []*domain.User `json:"users"`
}

// Me returns the authenticated caller's own profile.
//
// @Summary      Current user profile
// @Tags         users
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /me [get]
func (h *UserHandler) Me(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	user, err := h.userService.Profile(c.Request().Context(), claims.Subject)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Update mutates an identity. Owners may change their own username and
// password; only admins may additionally change roles. An unauthorized or
// unrecognised role value is dropped silently while the rest applies.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "Fields to update"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	claims, err := ctxClaims(c)
	if err != nil {
		return err
	}

	targetID := c.Param("id")
	if targetID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.Update(c.Request().Context(), claims, targetID, ports.UpdateUserInput{
		Username: req.Username,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}

// List returns all identities ordered by creation time. Admin-only; the
// RBAC middleware gates the route.
//
// @Summary      List all users
// @Tags         users
// @Produce      json
// @Success      200  {object}  usersResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, usersResponse{Users: users})
}
