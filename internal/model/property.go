package model

import (
	"time"

	"github.com/Seem1019/RealEstateApi/internal/apperror"
)

// Property represents a real estate property together with the images
// and price traces it owns. Images and traces are append-only; every
// field transition goes through a named mutator that encodes its rule.
type Property struct {
	ID           uint            `json:"id" gorm:"primarykey"`
	Name         string          `json:"name" gorm:"type:varchar(255);not null;index"`
	Address      string          `json:"address" gorm:"type:varchar(255);not null;index"`
	Price        float64         `json:"price" gorm:"not null;index"`
	CodeInternal string          `json:"code_internal" gorm:"type:varchar(100);uniqueIndex;not null"`
	Year         int             `json:"year" gorm:"index"`
	OwnerID      uint            `json:"owner_id" gorm:"index;not null"`
	Owner        *Owner          `json:"owner,omitempty" gorm:"constraint:OnDelete:CASCADE"`
	Images       []PropertyImage `json:"images" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	Traces       []PropertyTrace `json:"traces" gorm:"foreignKey:PropertyID;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func (Property) TableName() string {
	return "properties"
}

// NewProperty builds a property after checking all creation invariants.
// Storage hydration bypasses this and fills the struct from rows; this
// is the only public creation path.
func NewProperty(name, address string, price float64, codeInternal string, year int, ownerID uint) (*Property, error) {
	var violations []string
	if name == "" {
		violations = append(violations, "name must not be empty")
	}
	if address == "" {
		violations = append(violations, "address must not be empty")
	}
	if price <= 0 {
		violations = append(violations, "price must be greater than zero")
	}
	if codeInternal == "" {
		violations = append(violations, "code_internal must not be empty")
	}
	if year <= 1900 {
		violations = append(violations, "year must be greater than 1900")
	}
	if ownerID == 0 {
		violations = append(violations, "owner_id must be set")
	}
	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations...)
	}
	return &Property{
		Name:         name,
		Address:      address,
		Price:        price,
		CodeInternal: codeInternal,
		Year:         year,
		OwnerID:      ownerID,
	}, nil
}

// ChangePrice sets a new price after re-validating positivity.
func (p *Property) ChangePrice(newPrice float64) error {
	if newPrice <= 0 {
		return apperror.NewValidation("price must be greater than zero")
	}
	p.Price = newPrice
	return nil
}

// PropertyPatch is a partial update: nil fields mean "leave unchanged",
// never "clear to default".
type PropertyPatch struct {
	Name         *string
	Address      *string
	Price        *float64
	CodeInternal *string
	Year         *int
}

// UpdateDetails applies only the fields present in the patch,
// re-validating the rules the touched fields carry.
func (p *Property) UpdateDetails(patch PropertyPatch) error {
	var violations []string
	if patch.Name != nil && *patch.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if patch.Address != nil && *patch.Address == "" {
		violations = append(violations, "address must not be empty")
	}
	if patch.Price != nil && *patch.Price <= 0 {
		violations = append(violations, "price must be greater than zero")
	}
	if patch.CodeInternal != nil && *patch.CodeInternal == "" {
		violations = append(violations, "code_internal must not be empty")
	}
	if len(violations) > 0 {
		return apperror.NewValidation(violations...)
	}

	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Address != nil {
		p.Address = *patch.Address
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.CodeInternal != nil {
		p.CodeInternal = *patch.CodeInternal
	}
	if patch.Year != nil {
		p.Year = *patch.Year
	}
	return nil
}

// SetOwner links the property to an owner. Once an owner is attached it
// cannot be reassigned to a different one.
func (p *Property) SetOwner(owner *Owner) error {
	if owner == nil {
		return apperror.NewValidation("owner must not be nil")
	}
	if p.Owner != nil && p.Owner.ID != owner.ID {
		return apperror.NewConflict("property owner cannot be changed once set")
	}
	p.Owner = owner
	p.OwnerID = owner.ID
	return nil
}

// AddImage appends an image to the property's collection.
func (p *Property) AddImage(image *PropertyImage) error {
	if image == nil {
		return apperror.NewValidation("image must not be nil")
	}
	p.Images = append(p.Images, *image)
	return nil
}

// AddTrace appends an audit trace. Traces are never removed or edited.
func (p *Property) AddTrace(trace *PropertyTrace) error {
	if trace == nil {
		return apperror.NewValidation("trace must not be nil")
	}
	p.Traces = append(p.Traces, *trace)
	return nil
}
