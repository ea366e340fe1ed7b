// Package repository implements the persistence gateway the services
// depend on. The interfaces are the contract; the gorm implementations
// are the shipped storage engine.
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Seem1019/RealEstateApi/internal/apperror"
	"github.com/Seem1019/RealEstateApi/internal/model"
	"github.com/Seem1019/RealEstateApi/prometheus"
)

// PropertyRepository is the persistence capability for the property
// aggregate. Reads and writes are atomic per operation; UpdateWithTrace
// commits a price mutation and its audit trace as one unit of work.
type PropertyRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Property, error)
	Create(ctx context.Context, property *model.Property) error
	Update(ctx context.Context, property *model.Property) error
	AddImage(ctx context.Context, image *model.PropertyImage) error
	UpdateWithTrace(ctx context.Context, property *model.Property, trace *model.PropertyTrace) error
	ListPaged(ctx context.Context, filter model.PropertyFilter) (*model.PagedResult, error)
	GetDetails(ctx context.Context, id uint) (*model.Property, error)
	GetByOwnerID(ctx context.Context, ownerID uint) ([]model.Property, error)
}

type propertyRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewPropertyRepository creates a gorm-backed property repository.
func NewPropertyRepository(db *gorm.DB, log *zap.Logger) PropertyRepository {
	return &propertyRepository{db: db, log: log.With(zap.String("repo", "property"))}
}

func (r *propertyRepository) GetByID(ctx context.Context, id uint) (*model.Property, error) {
	defer prometheus.TrackDBOperation("property_get")(time.Now())

	var property model.Property
	err := r.db.WithContext(ctx).First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFound("property", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying property %d: %w", id, err)
	}
	return &property, nil
}

func (r *propertyRepository) Create(ctx context.Context, property *model.Property) error {
	defer prometheus.TrackDBOperation("property_create")(time.Now())

	err := r.db.WithContext(ctx).Create(property).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflict(fmt.Sprintf("property with code %q already exists", property.CodeInternal))
	}
	if err != nil {
		return fmt.Errorf("inserting property: %w", err)
	}
	return nil
}

func (r *propertyRepository) Update(ctx context.Context, property *model.Property) error {
	defer prometheus.TrackDBOperation("property_update")(time.Now())

	// Child collections are persisted through their own operations,
	// never re-saved alongside the parent row.
	err := r.db.WithContext(ctx).Omit(clause.Associations).Save(property).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperror.NewConflict(fmt.Sprintf("property with code %q already exists", property.CodeInternal))
	}
	if err != nil {
		return fmt.Errorf("updating property %d: %w", property.ID, err)
	}
	return nil
}

func (r *propertyRepository) AddImage(ctx context.Context, image *model.PropertyImage) error {
	defer prometheus.TrackDBOperation("image_create")(time.Now())

	if err := r.db.WithContext(ctx).Create(image).Error; err != nil {
		return fmt.Errorf("inserting property image: %w", err)
	}
	return nil
}

// UpdateWithTrace persists the mutated property and appends its audit
// trace in a single transaction. Either both commit or neither does.
func (r *propertyRepository) UpdateWithTrace(ctx context.Context, property *model.Property, trace *model.PropertyTrace) error {
	defer prometheus.TrackDBOperation("property_update_with_trace")(time.Now())

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(property).Error; err != nil {
			return fmt.Errorf("updating property %d: %w", property.ID, err)
		}
		if err := tx.Create(trace).Error; err != nil {
			return fmt.Errorf("inserting property trace: %w", err)
		}
		return nil
	})
}

func (r *propertyRepository) ListPaged(ctx context.Context, filter model.PropertyFilter) (*model.PagedResult, error) {
	defer prometheus.TrackDBOperation("property_list")(time.Now())

	// Total count over the full filtered set, independent of the page.
	var total int64
	countQuery := applyPropertyFilter(r.db.WithContext(ctx).Model(&model.Property{}), filter)
	if err := countQuery.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("counting properties: %w", err)
	}

	items := []model.Property{}
	pageQuery := applyPropertyFilter(r.db.WithContext(ctx), filter)
	err := pageQuery.
		Preload("Owner").
		Preload("Images").
		Preload("Traces").
		Order("id ASC"). // deterministic tie-break keeps pagination stable
		Offset((filter.PageNumber - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("listing properties: %w", err)
	}

	return &model.PagedResult{
		Items:      items,
		TotalCount: total,
		PageNumber: filter.PageNumber,
		PageSize:   filter.PageSize,
	}, nil
}

func (r *propertyRepository) GetDetails(ctx context.Context, id uint) (*model.Property, error) {
	defer prometheus.TrackDBOperation("property_details")(time.Now())

	var property model.Property
	err := r.db.WithContext(ctx).
		Preload("Owner").
		Preload("Images").
		Preload("Traces").
		First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFound("property", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying property details %d: %w", id, err)
	}
	return &property, nil
}

func (r *propertyRepository) GetByOwnerID(ctx context.Context, ownerID uint) ([]model.Property, error) {
	defer prometheus.TrackDBOperation("property_by_owner")(time.Now())

	properties := []model.Property{}
	err := r.db.WithContext(ctx).
		Preload("Images").
		Preload("Traces").
		Where("owner_id = ?", ownerID).
		Order("id ASC").
		Find(&properties).Error
	if err != nil {
		return nil, fmt.Errorf("listing properties for owner %d: %w", ownerID, err)
	}
	return properties, nil
}

// applyPropertyFilter translates the sparse predicate set into WHERE
// clauses. Text predicates are case-insensitive substring matches;
// numeric bounds are inclusive; absent predicates add nothing.
func applyPropertyFilter(query *gorm.DB, filter model.PropertyFilter) *gorm.DB {
	if filter.Name != nil {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(*filter.Name)+"%")
	}
	if filter.Address != nil {
		query = query.Where("LOWER(address) LIKE ?", "%"+strings.ToLower(*filter.Address)+"%")
	}
	if filter.CodeInternal != nil {
		query = query.Where("LOWER(code_internal) LIKE ?", "%"+strings.ToLower(*filter.CodeInternal)+"%")
	}
	if filter.MinPrice != nil {
		query = query.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		query = query.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.MinYear != nil {
		query = query.Where("year >= ?", *filter.MinYear)
	}
	if filter.MaxYear != nil {
		query = query.Where("year <= ?", *filter.MaxYear)
	}
	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	return query
}
