package model

import (
	"errors"
	"strings"
	"testing"

	"github.com/Seem1019/RealEstateApi/internal/apperror"
)

func TestFilterValidate(t *testing.T) {
	price := func(v float64) *float64 { return &v }
	year := func(v int) *int { return &v }

	tests := []struct {
		name   string
		filter PropertyFilter
		wants  []string // substrings the error must mention; empty = valid
	}{
		{
			name:   "defaults are valid",
			filter: PropertyFilter{PageNumber: 1, PageSize: 20},
		},
		{
			name:   "full valid filter",
			filter: PropertyFilter{MinPrice: price(100), MaxPrice: price(500), MinYear: year(2000), MaxYear: year(2020), PageNumber: 2, PageSize: 100},
		},
		{
			name:   "zero page number",
			filter: PropertyFilter{PageNumber: 0, PageSize: 20},
			wants:  []string{"page_number"},
		},
		{
			name:   "zero page size",
			filter: PropertyFilter{PageNumber: 1, PageSize: 0},
			wants:  []string{"page_size"},
		},
		{
			name:   "oversized page",
			filter: PropertyFilter{PageNumber: 1, PageSize: 101},
			wants:  []string{"page_size"},
		},
		{
			name:   "inverted price range",
			filter: PropertyFilter{MinPrice: price(500), MaxPrice: price(100), PageNumber: 1, PageSize: 20},
			wants:  []string{"min_price must not exceed max_price"},
		},
		{
			name:   "inverted year range",
			filter: PropertyFilter{MinYear: year(2020), MaxYear: year(2000), PageNumber: 1, PageSize: 20},
			wants:  []string{"min_year must not exceed max_year"},
		},
		{
			name:   "negative min price",
			filter: PropertyFilter{MinPrice: price(-1), PageNumber: 1, PageSize: 20},
			wants:  []string{"min_price must not be negative"},
		},
		{
			name:   "all violations reported at once",
			filter: PropertyFilter{MinPrice: price(500), MaxPrice: price(100), MinYear: year(2020), MaxYear: year(2000), PageNumber: 0, PageSize: 0},
			wants:  []string{"page_number", "page_size", "min_price must not exceed max_price", "min_year must not exceed max_year"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.filter.Validate()
			if len(tt.wants) == 0 {
				if err != nil {
					t.Fatalf("validate: %v", err)
				}
				return
			}

			var validationErr *apperror.ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("error = %v, want ValidationError", err)
			}
			for _, want := range tt.wants {
				if !strings.Contains(err.Error(), want) {
					t.Errorf("error %q does not mention %q", err.Error(), want)
				}
			}
		})
	}
}
