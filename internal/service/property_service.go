// Package service orchestrates entity mutation, validation, and gateway
// calls. It is the unit exposing the public contract of the API.
package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Seem1019/RealEstateApi/internal/model"
	"github.com/Seem1019/RealEstateApi/internal/repository"
	"github.com/Seem1019/RealEstateApi/prometheus"
)

// CreatePropertyInput carries the fields needed to create a property.
type CreatePropertyInput struct {
	Name         string
	Address      string
	Price        float64
	CodeInternal string
	Year         int
	OwnerID      uint
}

// PropertyService exposes the property operations of the API. Every
// failure surfaces as a ValidationError, NotFoundError, ConflictError
// or a raw storage error; nothing is retried or swallowed.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*model.Property, error)
	AddImage(ctx context.Context, propertyID uint, file string) error
	ChangePrice(ctx context.Context, propertyID uint, newPrice float64) error
	Update(ctx context.Context, propertyID uint, patch model.PropertyPatch) (*model.Property, error)
	List(ctx context.Context, filter model.PropertyFilter) (*model.PagedResult, error)
	GetByOwner(ctx context.Context, ownerID uint) ([]model.Property, error)
	GetDetails(ctx context.Context, propertyID uint) (*model.Property, error)
}

type propertyService struct {
	repo repository.PropertyRepository
	log  *zap.Logger
}

// NewPropertyService creates the property service on top of its
// persistence gateway.
func NewPropertyService(repo repository.PropertyRepository, log *zap.Logger) PropertyService {
	return &propertyService{repo: repo, log: log.With(zap.String("service", "property"))}
}

func (s *propertyService) Create(ctx context.Context, input CreatePropertyInput) (*model.Property, error) {
	s.log.Info("Creating property",
		zap.String("name", input.Name),
		zap.Uint("owner_id", input.OwnerID))

	property, err := model.NewProperty(input.Name, input.Address, input.Price, input.CodeInternal, input.Year, input.OwnerID)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, property); err != nil {
		return nil, err
	}

	prometheus.RecordPropertyOperation("create")
	return property, nil
}

func (s *propertyService) AddImage(ctx context.Context, propertyID uint, file string) error {
	s.log.Info("Adding image to property", zap.Uint("property_id", propertyID))

	property, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}

	image, err := model.NewPropertyImage(property.ID, file)
	if err != nil {
		return err
	}
	if err := property.AddImage(image); err != nil {
		return err
	}
	if err := s.repo.AddImage(ctx, image); err != nil {
		return err
	}

	prometheus.RecordPropertyOperation("add_image")
	return nil
}

// ChangePrice mutates the price and appends the audit trace in one
// atomic commit: either both persist or neither does.
func (s *propertyService) ChangePrice(ctx context.Context, propertyID uint, newPrice float64) error {
	s.log.Info("Changing property price",
		zap.Uint("property_id", propertyID),
		zap.Float64("new_price", newPrice))

	property, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		return err
	}
	if err := property.ChangePrice(newPrice); err != nil {
		return err
	}

	trace, err := model.NewPropertyTrace(property.ID, time.Now().UTC(), model.TracePriceChange, newPrice, 0)
	if err != nil {
		return err
	}
	if err := property.AddTrace(trace); err != nil {
		return err
	}
	if err := s.repo.UpdateWithTrace(ctx, property, trace); err != nil {
		return err
	}

	prometheus.RecordPropertyOperation("change_price")
	return nil
}

func (s *propertyService) Update(ctx context.Context, propertyID uint, patch model.PropertyPatch) (*model.Property, error) {
	s.log.Info("Updating property", zap.Uint("property_id", propertyID))

	property, err := s.repo.GetByID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	if err := property.UpdateDetails(patch); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, property); err != nil {
		return nil, err
	}

	prometheus.RecordPropertyOperation("update")
	return property, nil
}

func (s *propertyService) List(ctx context.Context, filter model.PropertyFilter) (*model.PagedResult, error) {
	s.log.Info("Listing properties",
		zap.Int("page_number", filter.PageNumber),
		zap.Int("page_size", filter.PageSize))

	if err := filter.Validate(); err != nil {
		return nil, err
	}
	return s.repo.ListPaged(ctx, filter)
}

// GetByOwner returns the owner's properties with images and traces
// loaded. An owner with none yields an empty slice, not an error.
func (s *propertyService) GetByOwner(ctx context.Context, ownerID uint) ([]model.Property, error) {
	s.log.Info("Getting properties for owner", zap.Uint("owner_id", ownerID))
	return s.repo.GetByOwnerID(ctx, ownerID)
}

func (s *propertyService) GetDetails(ctx context.Context, propertyID uint) (*model.Property, error) {
	s.log.Info("Getting property details", zap.Uint("property_id", propertyID))
	return s.repo.GetDetails(ctx, propertyID)
}
