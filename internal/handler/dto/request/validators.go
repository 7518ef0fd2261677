package request

import (
	"venue-admin/internal/domain/pricing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags on gin's validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("discount_type", validDiscountType)
}

// An empty type means no discount.
func validDiscountType(fl validator.FieldLevel) bool {
	switch pricing.DiscountKind(fl.Field().String()) {
	case pricing.DiscountNone, pricing.DiscountAmount, pricing.DiscountPercentage:
		return true
	default:
		return false
	}
}
