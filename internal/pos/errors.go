package pos

import "errors"

// Validation errors returned by cart mutations. The totals pipeline itself
// never fails; every check happens at the mutation boundary, before any cart
// state is touched.
var (
	ErrInvalidSelection = errors.New("invalid item or size selection")
	ErrUnknownModifier  = errors.New("unknown modifier")
	ErrInvalidDiscount  = errors.New("discount percent must be between 0 and 100")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
	ErrLineNotFound     = errors.New("order line not found")
)

// IsValidationError reports whether err comes from cart input validation, as
// opposed to an internal failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidSelection) ||
		errors.Is(err, ErrUnknownModifier) ||
		errors.Is(err, ErrInvalidDiscount) ||
		errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrLineNotFound)
}
