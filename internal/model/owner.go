package model

import (
	"time"

	"github.com/Seem1019/RealEstateApi/internal/apperror"
)

// Owner represents a property owner. The Properties collection is a
// navigational view populated by the query layer; the property side
// holds the foreign key and is the authority for the relationship.
type Owner struct {
	ID         uint       `json:"id" gorm:"primarykey"`
	Name       string     `json:"name" gorm:"type:varchar(255);not null"`
	Address    string     `json:"address" gorm:"type:varchar(255);not null"`
	Photo      *string    `json:"photo,omitempty" gorm:"type:text"`
	Birthday   time.Time  `json:"birthday"`
	Properties []Property `json:"properties,omitempty" gorm:"foreignKey:OwnerID"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func (Owner) TableName() string {
	return "owners"
}

// NewOwner builds an owner after checking creation invariants.
func NewOwner(name, address string, birthday time.Time, photo *string) (*Owner, error) {
	var violations []string
	if name == "" {
		violations = append(violations, "name must not be empty")
	}
	if address == "" {
		violations = append(violations, "address must not be empty")
	}
	if len(violations) > 0 {
		return nil, apperror.NewValidation(violations...)
	}
	return &Owner{Name: name, Address: address, Birthday: birthday, Photo: photo}, nil
}

// OwnerPatch is a partial update: nil fields mean "leave unchanged".
type OwnerPatch struct {
	Name     *string
	Address  *string
	Photo    *string
	Birthday *time.Time
}

// UpdateDetails applies only the fields present in the patch.
func (o *Owner) UpdateDetails(patch OwnerPatch) error {
	var violations []string
	if patch.Name != nil && *patch.Name == "" {
		violations = append(violations, "name must not be empty")
	}
	if patch.Address != nil && *patch.Address == "" {
		violations = append(violations, "address must not be empty")
	}
	if len(violations) > 0 {
		return apperror.NewValidation(violations...)
	}

	if patch.Name != nil {
		o.Name = *patch.Name
	}
	if patch.Address != nil {
		o.Address = *patch.Address
	}
	if patch.Photo != nil {
		o.Photo = patch.Photo
	}
	if patch.Birthday != nil {
		o.Birthday = *patch.Birthday
	}
	return nil
}

// AddProperty attaches a property to this owner. An owner cannot hold
// the same property twice.
func (o *Owner) AddProperty(property *Property) error {
	if property == nil {
		return apperror.NewValidation("property must not be nil")
	}
	for _, p := range o.Properties {
		if p.ID == property.ID {
			return apperror.NewConflict("property already owned")
		}
	}
	if err := property.SetOwner(o); err != nil {
		return err
	}
	o.Properties = append(o.Properties, *property)
	return nil
}
