package pricing

import "errors"

var (
	ErrNegativeRate           = errors.New("rate cannot be negative")
	ErrNegativeDiscountAmount = errors.New("discount amount cannot be negative")
	ErrPercentageOutOfRange   = errors.New("percentage must be between 0 and 100")
	ErrAmountWithPercentage   = errors.New("amount should be 0 when discount type is Percentage")
	ErrPercentageWithAmount   = errors.New("percentage should be 0 when discount type is Amount")
	ErrInvalidQuantity        = errors.New("quantity cannot be negative")
	ErrRateAsAddOn            = errors.New("catalog rates cannot be selected as add-ons")
)
