package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Seem1019/RealEstateApi/internal/apperror"
	"github.com/Seem1019/RealEstateApi/internal/model"
	"github.com/Seem1019/RealEstateApi/internal/service"
	"github.com/Seem1019/RealEstateApi/pkg/logger"
)

// PropertyHandler exposes the property operations over HTTP.
type PropertyHandler struct {
	svc             service.PropertyService
	defaultPageSize int
}

// NewPropertyHandler creates the property handler.
func NewPropertyHandler(svc service.PropertyService, defaultPageSize int) *PropertyHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = model.DefaultPageSize
	}
	return &PropertyHandler{svc: svc, defaultPageSize: defaultPageSize}
}

// CreatePropertyRequest defines the structure for property creation requests
type CreatePropertyRequest struct {
	Name         string  `json:"name"`
	Address      string  `json:"address"`
	Price        float64 `json:"price"`
	CodeInternal string  `json:"code_internal"`
	Year         int     `json:"year"`
	OwnerID      uint    `json:"owner_id"`
}

// AddImageRequest defines the structure for image attachment requests
type AddImageRequest struct {
	File string `json:"file"`
}

// ChangePriceRequest defines the structure for price change requests
type ChangePriceRequest struct {
	NewPrice float64 `json:"new_price"`
}

// UpdatePropertyRequest is a partial update; omitted fields are left
// unchanged.
type UpdatePropertyRequest struct {
	Name         *string  `json:"name"`
	Address      *string  `json:"address"`
	Price        *float64 `json:"price"`
	CodeInternal *string  `json:"code_internal"`
	Year         *int     `json:"year"`
}

// Create handles POST /api/properties
func (h *PropertyHandler) Create(c echo.Context) error {
	log := logger.FromContext(c)

	var req CreatePropertyRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("Invalid request data", zap.Error(err))
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	property, err := h.svc.Create(c.Request().Context(), service.CreatePropertyInput{
		Name:         req.Name,
		Address:      req.Address,
		Price:        req.Price,
		CodeInternal: req.CodeInternal,
		Year:         req.Year,
		OwnerID:      req.OwnerID,
	})
	if err != nil {
		return errorJSON(c, err)
	}

	log.Info("Property created",
		zap.Uint("property_id", property.ID),
		zap.String("code_internal", property.CodeInternal))
	return c.JSON(http.StatusCreated, property)
}

// AddImage handles POST /api/properties/:id/images
func (h *PropertyHandler) AddImage(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	var req AddImageRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if err := h.svc.AddImage(c.Request().Context(), id, req.File); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ChangePrice handles PATCH /api/properties/:id/price
func (h *PropertyHandler) ChangePrice(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	var req ChangePriceRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	if err := h.svc.ChangePrice(c.Request().Context(), id, req.NewPrice); err != nil {
		return errorJSON(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Update handles PUT /api/properties/:id
func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	var req UpdatePropertyRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "Invalid request data"})
	}

	property, err := h.svc.Update(c.Request().Context(), id, model.PropertyPatch{
		Name:         req.Name,
		Address:      req.Address,
		Price:        req.Price,
		CodeInternal: req.CodeInternal,
		Year:         req.Year,
	})
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, property)
}

// List handles GET /api/properties
func (h *PropertyHandler) List(c echo.Context) error {
	filter, err := h.parseFilter(c)
	if err != nil {
		return errorJSON(c, err)
	}

	result, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// GetByOwner handles GET /api/properties/owner/:ownerId/properties
func (h *PropertyHandler) GetByOwner(c echo.Context) error {
	ownerID, err := parseID(c, "ownerId")
	if err != nil {
		return errorJSON(c, err)
	}

	properties, err := h.svc.GetByOwner(c.Request().Context(), ownerID)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, properties)
}

// GetDetails handles GET /api/properties/:id/details
func (h *PropertyHandler) GetDetails(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return errorJSON(c, err)
	}

	property, err := h.svc.GetDetails(c.Request().Context(), id)
	if err != nil {
		return errorJSON(c, err)
	}
	return c.JSON(http.StatusOK, property)
}

// parseFilter builds a PropertyFilter from query parameters, collecting
// every malformed parameter into one validation error.
func (h *PropertyHandler) parseFilter(c echo.Context) (model.PropertyFilter, error) {
	filter := model.PropertyFilter{
		PageNumber: 1,
		PageSize:   h.defaultPageSize,
	}
	var violations []string

	if v := c.QueryParam("name"); v != "" {
		filter.Name = &v
	}
	if v := c.QueryParam("address"); v != "" {
		filter.Address = &v
	}
	if v := c.QueryParam("code_internal"); v != "" {
		filter.CodeInternal = &v
	}
	if v := c.QueryParam("min_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			violations = append(violations, "min_price must be a number")
		} else {
			filter.MinPrice = &price
		}
	}
	if v := c.QueryParam("max_price"); v != "" {
		price, err := strconv.ParseFloat(v, 64)
		if err != nil {
			violations = append(violations, "max_price must be a number")
		} else {
			filter.MaxPrice = &price
		}
	}
	if v := c.QueryParam("min_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			violations = append(violations, "min_year must be an integer")
		} else {
			filter.MinYear = &year
		}
	}
	if v := c.QueryParam("max_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			violations = append(violations, "max_year must be an integer")
		} else {
			filter.MaxYear = &year
		}
	}
	if v := c.QueryParam("owner_id"); v != "" {
		ownerID, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			violations = append(violations, "owner_id must be a positive integer")
		} else {
			id := uint(ownerID)
			filter.OwnerID = &id
		}
	}
	if v := c.QueryParam("page_number"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			violations = append(violations, "page_number must be an integer")
		} else {
			filter.PageNumber = page
		}
	}
	if v := c.QueryParam("page_size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			violations = append(violations, "page_size must be an integer")
		} else {
			filter.PageSize = size
		}
	}

	if len(violations) > 0 {
		return model.PropertyFilter{}, apperror.NewValidation(violations...)
	}
	return filter, nil
}

// parseID parses a numeric path parameter.
func parseID(c echo.Context, param string) (uint, error) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, apperror.NewValidation(fmt.Sprintf("%s must be a positive integer", param))
	}
	return uint(id), nil
}
