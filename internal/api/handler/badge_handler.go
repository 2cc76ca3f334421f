package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/skillforge/catalog-api/internal/core/domain"
	"github.com/skillforge/catalog-api/internal/core/ports"
)

// BadgeHandler handles HTTP requests for the badge catalog.
type BadgeHandler struct {
	service ports.CatalogService
}

func NewBadgeHandler(service ports.CatalogService) *BadgeHandler {
	return &BadgeHandler{service: service}
}

// List handles GET /api/catalog-badges.
//
// @Summary      List catalog badges
// @Description  Filtered, sorted, paginated badge listing. The status filter requires admin rights; non-admins only see active badges.
// @Tags         badges
// @Produce      json
// @Param        category  query     string  false  "Badge category (technical, organizational, soft-skilled; softskilled accepted)"
// @Param        level     query     string  false  "Badge level (gold, silver, bronze)"
// @Param        status    query     string  false  "Badge status (admin only: active, draft, archived)"
// @Param        q         query     string  false  "Case-insensitive search on title and description"
// @Param        sort      query     string  false  "Sort field (title, created_at)"  default(created_at)
// @Param        order     query     string  false  "Sort order (asc, desc)"
// @Param        limit     query     int     false  "Page size, 1-100"  default(20)
// @Param        offset    query     int     false  "Rows to skip"      default(0)
// @Success      200       {object}  listBadgesResponse
// @Failure      400       {object}  errorResponse
// @Failure      403       {object}  errorResponse
// @Failure      500       {object}  errorResponse
// @Router       /api/catalog-badges [get]
func (h *BadgeHandler) List(c echo.Context) error {
	_, isAdmin := ctxIdentity(c)

	input := ports.ListBadgesInput{
		Category: c.QueryParam("category"),
		Level:    c.QueryParam("level"),
		Search:   c.QueryParam("q"),
		Sort:     c.QueryParam("sort"),
		Order:    c.QueryParam("order"),
		IsAdmin:  isAdmin,
	}

	if status := c.QueryParam("status"); status != "" {
		input.Status = status
		input.HasStatus = true
	}

	// Numeric parameters are parsed strictly: malformed values are named
	// validation errors, never silently defaulted.
	if raw := c.QueryParam("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return &domain.FieldError{Field: "limit", Value: raw}
		}
		input.Limit = limit
		input.HasLimit = true
	}
	if raw := c.QueryParam("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil {
			return &domain.FieldError{Field: "offset", Value: raw}
		}
		input.Offset = offset
		input.HasOffset = true
	}

	result, err := h.service.ListBadges(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toListResponse(result))
}

// Create handles POST /api/catalog-badges (admin only).
//
// @Summary      Create a catalog badge
// @Tags         badges
// @Accept       json
// @Produce      json
// @Param        X-User-ID  header    string              true  "Caller user ID (must be admin)"
// @Param        body       body      createBadgeRequest  true  "Badge details"
// @Success      201        {object}  badgeResponse
// @Failure      400        {object}  errorResponse
// @Failure      403        {object}  errorResponse
// @Failure      422        {object}  errorResponse
// @Router       /api/catalog-badges [post]
func (h *BadgeHandler) Create(c echo.Context) error {
	var req createBadgeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	actorID, _ := ctxIdentity(c)

	view, err := h.service.CreateBadge(c.Request().Context(), ports.CreateBadgeInput{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Level:       req.Level,
		Status:      req.Status,
		CreatedBy:   req.CreatedBy,
		ActorID:     actorID,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, toBadgeResponse(*view))
}
