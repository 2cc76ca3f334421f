package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/skillforge/catalog-api/internal/core/ports"
)

// UserHandler handles directory user provisioning.
type UserHandler struct {
	service ports.DirectoryService
}

func NewUserHandler(service ports.DirectoryService) *UserHandler {
	return &UserHandler{service: service}
}

type createUserRequest struct {
	Email       string `json:"email"        validate:"required,email"`
	DisplayName string `json:"display_name" validate:"required"`
	IsAdmin     bool   `json:"is_admin"`
	Subject     string `json:"subject"`
}

type userResponse struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	IsAdmin     bool   `json:"is_admin"`
}

// Create handles POST /api/users (admin only). Users must exist before any
// badge can reference them as created_by.
//
// @Summary      Create a directory user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string             true  "Caller user ID (must be admin)"
// @Param        body       body      createUserRequest  true  "User details"
// @Success      201        {object}  userResponse
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      409        {object}  errorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actorID, _ := ctxIdentity(c)

	user, err := h.service.CreateUser(c.Request().Context(), ports.CreateUserInput{
		Email:       req.Email,
		DisplayName: req.DisplayName,
		IsAdmin:     req.IsAdmin,
		Subject:     req.Subject,
		ActorID:     actorID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, userResponse{
		ID:          user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		IsAdmin:     user.IsAdmin,
	})
}
