package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Seem1019/RealEstateApi/internal/model"
	"github.com/Seem1019/RealEstateApi/internal/repository"
	"github.com/Seem1019/RealEstateApi/prometheus"
)

// CreateOwnerInput carries the fields needed to create an owner.
type CreateOwnerInput struct {
	Name     string
	Address  string
	Birthday time.Time
	Photo    *string
}

// OwnerService exposes the owner operations of the API.
type OwnerService interface {
	Create(ctx context.Context, input CreateOwnerInput) (*model.Owner, error)
	Get(ctx context.Context, ownerID uint) (*model.Owner, error)
	Update(ctx context.Context, ownerID uint, patch model.OwnerPatch) (*model.Owner, error)
	List(ctx context.Context) ([]model.Owner, error)
}

type ownerService struct {
	repo repository.OwnerRepository
	log  *zap.Logger
}

// NewOwnerService creates the owner service on top of its persistence
// gateway.
func NewOwnerService(repo repository.OwnerRepository, log *zap.Logger) OwnerService {
	return &ownerService{repo: repo, log: log.With(zap.String("service", "owner"))}
}

func (s *ownerService) Create(ctx context.Context, input CreateOwnerInput) (*model.Owner, error) {
	s.log.Info("Creating owner", zap.String("name", input.Name))

	owner, err := model.NewOwner(input.Name, input.Address, input.Birthday, input.Photo)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, owner); err != nil {
		return nil, err
	}

	prometheus.RecordOwnerOperation("create")
	return owner, nil
}

func (s *ownerService) Get(ctx context.Context, ownerID uint) (*model.Owner, error) {
	s.log.Info("Getting owner", zap.Uint("owner_id", ownerID))
	return s.repo.GetByID(ctx, ownerID)
}

func (s *ownerService) Update(ctx context.Context, ownerID uint, patch model.OwnerPatch) (*model.Owner, error) {
	s.log.Info("Updating owner", zap.Uint("owner_id", ownerID))

	owner, err := s.repo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if err := owner.UpdateDetails(patch); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, owner); err != nil {
		return nil, err
	}

	prometheus.RecordOwnerOperation("update")
	return owner, nil
}

func (s *ownerService) List(ctx context.Context) ([]model.Owner, error) {
	s.log.Info("Listing owners")
	return s.repo.List(ctx)
}
