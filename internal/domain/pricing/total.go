package pricing

import "github.com/shopspring/decimal"

// DefaultTaxRate applies when the caller does not supply one.
var DefaultTaxRate = decimal.RequireFromString("0.07")

type PricingResult struct {
	Subtotal   decimal.Decimal   `json:"subtotal"`
	Discounted decimal.Decimal   `json:"discounted"`
	Tax        decimal.Decimal   `json:"tax"`
	TotalPrice decimal.Decimal   `json:"totalPrice"`
	Breakdown  SubtotalBreakdown `json:"breakdown"`
}

func (r PricingResult) IsNegative() bool {
	return r.Discounted.IsNegative()
}

func ApplyTax(amount, taxRate decimal.Decimal) decimal.Decimal {
	return amount.Mul(taxRate)
}

// ComputeTotal discounts first and taxes the discounted amount.
func ComputeTotal(subtotal decimal.Decimal, d Discount, taxRate decimal.Decimal) PricingResult {
	discounted := ApplyDiscount(subtotal, d)
	tax := ApplyTax(discounted, taxRate)
	return PricingResult{
		Subtotal:   subtotal,
		Discounted: discounted,
		Tax:        tax,
		TotalPrice: discounted.Add(tax),
	}
}
