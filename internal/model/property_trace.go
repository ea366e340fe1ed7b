package model

import (
	"time"

	"github.com/Seem1019/RealEstateApi/internal/apperror"
)

// TracePriceChange is the event name recorded for price-change traces.
const TracePriceChange = "Price Change"

// PropertyTrace is one row of a property's append-only audit ledger.
// Traces are never edited or deleted; corrections are new events.
type PropertyTrace struct {
	ID         uint      `json:"id" gorm:"primarykey"`
	PropertyID uint      `json:"property_id" gorm:"index;not null"`
	DateSale   time.Time `json:"date_sale" gorm:"not null"`
	Name       string    `json:"name" gorm:"type:varchar(255);not null"`
	Value      float64   `json:"value" gorm:"not null"`
	Tax        float64   `json:"tax" gorm:"not null"`
	CreatedAt  time.Time `json:"created_at"`
}

func (PropertyTrace) TableName() string {
	return "property_traces"
}

// NewPropertyTrace builds an audit record with a positive value.
func NewPropertyTrace(propertyID uint, dateSale time.Time, name string, value, tax float64) (*PropertyTrace, error) {
	if value <= 0 {
		return nil, apperror.NewValidation("value must be greater than zero")
	}
	return &PropertyTrace{
		PropertyID: propertyID,
		DateSale:   dateSale,
		Name:       name,
		Value:      value,
		Tax:        tax,
	}, nil
}
