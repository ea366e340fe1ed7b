package model

import (
	"fmt"

	"github.com/Seem1019/RealEstateApi/internal/apperror"
)

// Pagination bounds for property listings.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// PropertyFilter is a sparse set of optional predicates plus pagination
// over property listings. Absent predicates are no-ops; text predicates
// match case-insensitive substrings and numeric bounds are inclusive.
type PropertyFilter struct {
	Name         *string
	Address      *string
	CodeInternal *string
	MinPrice     *float64
	MaxPrice     *float64
	MinYear      *int
	MaxYear      *int
	OwnerID      *uint
	PageNumber   int
	PageSize     int
}

// Validate checks the filter before execution and reports every
// violated rule at once, not just the first.
func (f *PropertyFilter) Validate() error {
	var violations []string
	if f.PageNumber <= 0 {
		violations = append(violations, "page_number must be greater than zero")
	}
	if f.PageSize < 1 || f.PageSize > MaxPageSize {
		violations = append(violations, fmt.Sprintf("page_size must be between 1 and %d", MaxPageSize))
	}
	if f.MinPrice != nil && *f.MinPrice < 0 {
		violations = append(violations, "min_price must not be negative")
	}
	if f.MinPrice != nil && f.MaxPrice != nil && *f.MinPrice > *f.MaxPrice {
		violations = append(violations, "min_price must not exceed max_price")
	}
	if f.MinYear != nil && f.MaxYear != nil && *f.MinYear > *f.MaxYear {
		violations = append(violations, "min_year must not exceed max_year")
	}
	if len(violations) > 0 {
		return apperror.NewValidation(violations...)
	}
	return nil
}

// PagedResult is one window over a filtered, id-ordered result set plus
// the total count of the unbounded match, so a caller can render
// "page N of M".
type PagedResult struct {
	Items      []Property `json:"items"`
	TotalCount int64      `json:"total_count"`
	PageNumber int        `json:"page_number"`
	PageSize   int        `json:"page_size"`
}
