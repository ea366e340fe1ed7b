package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Seem1019/RealEstateApi/internal/apperror"
	"github.com/Seem1019/RealEstateApi/internal/model"
	"github.com/Seem1019/RealEstateApi/prometheus"
)

// OwnerRepository is the persistence capability for owners.
type OwnerRepository interface {
	GetByID(ctx context.Context, id uint) (*model.Owner, error)
	Create(ctx context.Context, owner *model.Owner) error
	Update(ctx context.Context, owner *model.Owner) error
	List(ctx context.Context) ([]model.Owner, error)
}

type ownerRepository struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewOwnerRepository creates a gorm-backed owner repository.
func NewOwnerRepository(db *gorm.DB, log *zap.Logger) OwnerRepository {
	return &ownerRepository{db: db, log: log.With(zap.String("repo", "owner"))}
}

func (r *ownerRepository) GetByID(ctx context.Context, id uint) (*model.Owner, error) {
	defer prometheus.TrackDBOperation("owner_get")(time.Now())

	var owner model.Owner
	err := r.db.WithContext(ctx).Preload("Properties").First(&owner, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.NewNotFound("owner", id)
	}
	if err != nil {
		return nil, fmt.Errorf("querying owner %d: %w", id, err)
	}
	return &owner, nil
}

func (r *ownerRepository) Create(ctx context.Context, owner *model.Owner) error {
	defer prometheus.TrackDBOperation("owner_create")(time.Now())

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(owner).Error; err != nil {
		return fmt.Errorf("inserting owner: %w", err)
	}
	return nil
}

func (r *ownerRepository) Update(ctx context.Context, owner *model.Owner) error {
	defer prometheus.TrackDBOperation("owner_update")(time.Now())

	if err := r.db.WithContext(ctx).Omit(clause.Associations).Save(owner).Error; err != nil {
		return fmt.Errorf("updating owner %d: %w", owner.ID, err)
	}
	return nil
}

func (r *ownerRepository) List(ctx context.Context) ([]model.Owner, error) {
	defer prometheus.TrackDBOperation("owner_list")(time.Now())

	owners := []model.Owner{}
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&owners).Error; err != nil {
		return nil, fmt.Errorf("listing owners: %w", err)
	}
	return owners, nil
}
