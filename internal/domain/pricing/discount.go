package pricing

import "github.com/shopspring/decimal"

type DiscountKind string

const (
	DiscountNone       DiscountKind = ""
	DiscountAmount     DiscountKind = "Amount"
	DiscountPercentage DiscountKind = "Percentage"
)

var hundred = decimal.NewFromInt(100)

// Discount is either nothing, a flat amount, or a percentage of the subtotal.
type Discount struct {
	kind  DiscountKind
	value decimal.Decimal
}

func NoDiscount() Discount {
	return Discount{kind: DiscountNone}
}

func FlatDiscount(amount decimal.Decimal) Discount {
	return Discount{kind: DiscountAmount, value: amount}
}

func PercentDiscount(percentage decimal.Decimal) Discount {
	return Discount{kind: DiscountPercentage, value: percentage}
}

// ParseDiscount builds a discount from the form fields. An unrecognized type
// yields no discount.
func ParseDiscount(kind string, amount, percentage decimal.Decimal) (Discount, error) {
	switch DiscountKind(kind) {
	case DiscountAmount:
		if !percentage.IsZero() {
			return Discount{}, ErrPercentageWithAmount
		}
		if amount.IsNegative() {
			return Discount{}, ErrNegativeDiscountAmount
		}
		return FlatDiscount(amount), nil
	case DiscountPercentage:
		if !amount.IsZero() {
			return Discount{}, ErrAmountWithPercentage
		}
		if percentage.IsNegative() || percentage.GreaterThan(hundred) {
			return Discount{}, ErrPercentageOutOfRange
		}
		return PercentDiscount(percentage), nil
	default:
		return NoDiscount(), nil
	}
}

func (d Discount) Kind() DiscountKind {
	return d.kind
}

func (d Discount) Amount() decimal.Decimal {
	if d.kind == DiscountAmount {
		return d.value
	}
	return decimal.Zero
}

func (d Discount) Percentage() decimal.Decimal {
	if d.kind == DiscountPercentage {
		return d.value
	}
	return decimal.Zero
}

func (d Discount) IsZero() bool {
	return d.kind == DiscountNone || d.value.IsZero()
}

// ApplyDiscount does not clamp: a flat discount above the subtotal yields a
// negative amount.
func ApplyDiscount(subtotal decimal.Decimal, d Discount) decimal.Decimal {
	switch d.kind {
	case DiscountAmount:
		return subtotal.Sub(d.value)
	case DiscountPercentage:
		return subtotal.Sub(subtotal.Mul(d.value).Div(hundred))
	default:
		return subtotal
	}
}
