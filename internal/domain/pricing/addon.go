package pricing

import "github.com/shopspring/decimal"

type AddOn struct {
	ID    string          `json:"id,omitempty"`
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type AddOnSelection struct {
	AddOn    AddOn `json:"addOn"`
	Quantity int   `json:"quantity"`
}

func (s AddOnSelection) Total() decimal.Decimal {
	return s.AddOn.Price.Mul(decimal.NewFromInt(int64(s.Quantity)))
}

// AddOnSelections keeps at most one selection per add-on name.
type AddOnSelections []AddOnSelection

func NewAddOnSelections(items []AddOnSelection) (AddOnSelections, error) {
	var out AddOnSelections
	for _, it := range items {
		if it.Quantity < 0 {
			return nil, ErrInvalidQuantity
		}
		if IsRateName(it.AddOn.Name) {
			return nil, ErrRateAsAddOn
		}
		out = out.SetQuantity(it.AddOn, it.Quantity)
	}
	return out, nil
}

func (s AddOnSelections) Total() decimal.Decimal {
	total := decimal.Zero
	for _, sel := range s {
		total = total.Add(sel.Total())
	}
	return total
}

// SetQuantity replaces the quantity of the add-on with the same name. A
// quantity of zero or less removes it.
func (s AddOnSelections) SetQuantity(addOn AddOn, quantity int) AddOnSelections {
	out := make(AddOnSelections, 0, len(s)+1)
	found := false
	for _, sel := range s {
		if sel.AddOn.Name != addOn.Name {
			out = append(out, sel)
			continue
		}
		found = true
		if quantity > 0 {
			out = append(out, AddOnSelection{AddOn: addOn, Quantity: quantity})
		}
	}
	if !found && quantity > 0 {
		out = append(out, AddOnSelection{AddOn: addOn, Quantity: quantity})
	}
	return out
}
