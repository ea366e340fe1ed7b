package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/Seem1019/RealEstateApi/internal/apperror"
	"github.com/Seem1019/RealEstateApi/internal/model"
)

func TestOwnerCreateAndGet(t *testing.T) {
	db := testDB(t)
	repo := NewOwnerRepository(db, zap.NewNop())

	owner, err := model.NewOwner("Jane Doe", "1 Main St", time.Date(1980, 5, 1, 0, 0, 0, 0, time.UTC), nil)
	if err != nil {
		t.Fatalf("new owner: %v", err)
	}
	if err := repo.Create(context.Background(), owner); err != nil {
		t.Fatalf("create: %v", err)
	}
	if owner.ID == 0 {
		t.Fatal("expected gateway-assigned id")
	}

	got, err := repo.GetByID(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Jane Doe" || got.Address != "1 Main St" {
		t.Errorf("unexpected owner: %+v", got)
	}
}

func TestOwnerGetNotFound(t *testing.T) {
	db := testDB(t)
	repo := NewOwnerRepository(db, zap.NewNop())

	_, err := repo.GetByID(context.Background(), 404)
	var notFoundErr *apperror.NotFoundError
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("error = %v, want NotFoundError", err)
	}
}

func TestOwnerGetPreloadsProperties(t *testing.T) {
	db := testDB(t)
	ownerRepo := NewOwnerRepository(db, zap.NewNop())
	propertyRepo := NewPropertyRepository(db, zap.NewNop())

	owner := seedOwner(t, db)
	seedProperty(t, propertyRepo, "Owned", "Addr", 100, "OW-1", 2010, owner.ID)

	got, err := ownerRepo.GetByID(context.Background(), owner.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if len(got.Properties) != 1 || got.Properties[0].CodeInternal != "OW-1" {
		t.Errorf("properties = %+v, want the one owned property", got.Properties)
	}
}

func TestOwnerUpdateAndList(t *testing.T) {
	db := testDB(t)
	repo := NewOwnerRepository(db, zap.NewNop())

	first := seedOwner(t, db)
	seedOwner(t, db)

	first.Address = "2 Elm St"
	if err := repo.Update(context.Background(), first); err != nil {
		t.Fatalf("update: %v", err)
	}

	owners, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(owners) != 2 {
		t.Fatalf("owners = %d, want 2", len(owners))
	}
	if owners[0].Address != "2 Elm St" {
		t.Errorf("address = %q, want updated", owners[0].Address)
	}
}
