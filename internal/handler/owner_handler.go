package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Seem1019/RealEstateApi/internal/model"
	"github.com/Seem1019/RealEstateApi/internal/service"
	"github.com/Seem1019/RealEstateApi/pkg/logger"
)

// OwnerHandler exposes the owner operations over HTTP.
type OwnerHandler struct {
	svc service.OwnerService
}

// NewOwnerHandler creates the owner handler.
func NewOwnerHandler(svc service.OwnerService) *OwnerHandler {
	return &OwnerHandler{svc: svc}
}

// CreateOwnerRequest defines the structure for owner creation requests
type CreateOwnerRequest struct {
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	Birthday time.Time `json:"birthday"`
	Photo    *string   `json:"photo"`
}

// UpdateOwnerRequest is a partial update; omitted fields are left
// unchanged.
type UpdateOwnerRequest struct {
	Name     *string    `json:"name"`
	Address  *string    `json:"address"`
	Birthday *time.Time `json:"birthday"`
	Photo    *string    `json:"photo"`
}

// Create handles POST /api/owners
func (h *OwnerHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req CreateOwnerRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	owner, err := h.svc.Create(c.Request().Context(), service.CreateOwnerInput{
		Name:     req.Name,
		Address:  req.Address,
		Birthday: req.Birthday,
		Photo:    req.Photo,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	log.Info("Owner created", zap.Uint("owner_id", owner.ID))
	return c.JSON(http.StatusCreated, owner)
}

// Get handles GET /api/owners/:id
func (h *OwnerHandler) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	owner, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, owner)
}

// Update handles PUT /api/owners/:id
func (h *OwnerHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	var req UpdateOwnerRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	owner, err := h.svc.Update(c.Request().Context(), id, model.OwnerPatch{
		Name:     req.Name,
		Address:  req.Address,
		Birthday: req.Birthday,
		Photo:    req.Photo,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, owner)
}

// List handles GET /api/owners
func (h *OwnerHandler) List(c echo.Context) error {
	owners, err := h.svc.List(c.Request().Context())
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, owners)
}
