package model

import (
	"time"

	"github.com/Seem1019/RealEstateApi/internal/apperror"
)

// PropertyImage is an image attached to a property. After creation the
// only permitted mutation is disabling it; an image never re-enables.
type PropertyImage struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	PropertyID uint      `json:"property_id" gorm:"index;not null"`
	File       string    `json:"file" gorm:"type:text;not null"`
	Enabled    bool      `json:"enabled" gorm:"not null;default:true"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (PropertyImage) TableName() string {
	return "property_images"
}

// NewPropertyImage builds an enabled image for a property.
func NewPropertyImage(propertyID uint, file string) (*PropertyImage, error) {
	if file == "" {
		return nil, apperror.NewValidation("file must not be empty")
	}
	return &PropertyImage{PropertyID: propertyID, File: file, Enabled: true}, nil
}

// Disable turns the image off. The transition is one-way.
func (i *PropertyImage) Disable() {
	i.Enabled = false
}
