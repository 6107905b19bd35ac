package errors

import "math"

// MaxGridCells bounds width*height for any grid.
const MaxGridCells = 1 << 30

// ValidateDimensions checks that a grid of width x height cells can be allocated.
// Both sides must be strictly positive and the cell count at most MaxGridCells.
func ValidateDimensions(width, height int) error {
	if width <= 0 {
		return New(ErrCodeInvalidDimension, "width must be a positive integer, got %d", width)
	}
	if height <= 0 {
		return New(ErrCodeInvalidDimension, "height must be a positive integer, got %d", height)
	}
	if width > MaxGridCells/height {
		return New(ErrCodeInvalidDimension, "%dx%d exceeds the limit of %d cells", width, height, MaxGridCells)
	}
	return nil
}

// ValidateFinite rejects NaN and infinite values for the named parameter.
func ValidateFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return New(ErrCodeInvalidConfig, "%s must be a finite number, got %v", name, v)
	}
	return nil
}

// ValidatePositive rejects values that are not strictly greater than zero.
func ValidatePositive(name string, v float64) error {
	if err := ValidateFinite(name, v); err != nil {
		return err
	}
	if v <= 0 {
		return New(ErrCodeInvalidConfig, "%s must be > 0, got %v", name, v)
	}
	return nil
}

// ValidateUnitInterval checks that v lies in the half-open interval (0, 1].
func ValidateUnitInterval(name string, v float64) error {
	if err := ValidatePositive(name, v); err != nil {
		return err
	}
	if v > 1 {
		return New(ErrCodeInvalidConfig, "%s must be <= 1, got %v", name, v)
	}
	return nil
}
