package usecase

import "net/http"

// shared checks for the list endpoints

func validatePageWindow(skip int, limit int) error {
	if skip < 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid skip")
	}
	if limit < 1 || limit > 100 {
		return NewHTTPError(http.StatusBadRequest, "invalid limit")
	}
	return nil
}

func validatePriceRange(minPrice *float64, maxPrice *float64) error {
	if minPrice != nil && *minPrice < 0 {
		return NewHTTPError(http.StatusBadRequest, "min_price must be >= 0")
	}
	if maxPrice != nil && *maxPrice < 0 {
		return NewHTTPError(http.StatusBadRequest, "max_price must be >= 0")
	}
	if minPrice != nil && maxPrice != nil && *minPrice > *maxPrice {
		return NewHTTPError(http.StatusBadRequest, "min_price must be <= max_price")
	}
	return nil
}
