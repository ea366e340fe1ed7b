package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/Seem1019/RealEstateApi/internal/apperror"
	"github.com/Seem1019/RealEstateApi/pkg/logger"
)

// errorJSON maps service errors onto HTTP responses: validation → 400,
// not found → 404, conflict → 409, anything else → 500 with no internal
// detail leaked.
func errorJSON(c echo.Context, err error) error {
	log := logger.FromContext(c)

	var validationErr *apperror.ValidationError
	var notFoundErr *apperror.NotFoundError
	var conflictErr *apperror.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": validationErr.Error()})
	case errors.As(err, &notFoundErr):
		return c.JSON(http.StatusNotFound, echo.Map{"error": notFoundErr.Error()})
	case errors.As(err, &conflictErr):
		return c.JSON(http.StatusConflict, echo.Map{"error": conflictErr.Error()})
	default:
		log.Error("Unhandled service error", zap.Error(err))
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "Internal Server Error"})
	}
}
