package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

type Input struct {
	GuestCount int
	Window     ReservationWindow
	AddOns     AddOnSelections
	Discount   Discount
	TaxRate    decimal.Decimal
	Rates      RateTable
	// Stored, when set, replaces the rate table with the rates an existing
	// reservation was priced with.
	Stored *StoredRates
}

// Calculator prices reservations in the venue's time zone.
type Calculator struct {
	Location *time.Location
}

func NewCalculator(loc *time.Location) *Calculator {
	if loc == nil {
		loc = time.Local
	}
	return &Calculator{Location: loc}
}

func (c *Calculator) Quote(in Input) PricingResult {
	window := in.Window.In(c.Location)

	var (
		subtotal  decimal.Decimal
		breakdown SubtotalBreakdown
	)
	if in.Stored != nil {
		breakdown = InitialBreakdown(*in.Stored, in.GuestCount, window, in.AddOns)
		subtotal = breakdown.Sum()
	} else {
		subtotal, breakdown = ComputeSubtotal(in.AddOns.Total(), in.GuestCount, window, in.Rates)
	}

	result := ComputeTotal(subtotal, in.Discount, in.TaxRate)
	result.Breakdown = breakdown
	return result
}

// StoredRates are the rates frozen on a reservation when it was priced.
type StoredRates struct {
	CleaningRate decimal.Decimal `json:"cleaningRate"`
	FacilityRate decimal.Decimal `json:"facilityRate"`
	OvertimeRate decimal.Decimal `json:"overtimeRate"`
	SeatRate     decimal.Decimal `json:"seatRate"`
}

func (r StoredRates) Validate() error {
	for _, v := range []decimal.Decimal{r.CleaningRate, r.FacilityRate, r.OvertimeRate, r.SeatRate} {
		if v.IsNegative() {
			return ErrNegativeRate
		}
	}
	return nil
}

// InitialBreakdown rebuilds the breakdown of an existing reservation from the
// rates it was priced with, so editing it does not pick up catalog changes.
func (c *Calculator) InitialBreakdown(stored StoredRates, guestCount int, w ReservationWindow, addOns AddOnSelections) SubtotalBreakdown {
	return InitialBreakdown(stored, guestCount, w.In(c.Location), addOns)
}

func InitialBreakdown(stored StoredRates, guestCount int, w ReservationWindow, addOns AddOnSelections) SubtotalBreakdown {
	seats := guestCount
	if seats < 0 {
		seats = 0
	}
	hours := OvertimeHours(w)
	return SubtotalBreakdown{
		AddOnsTotal:          addOns.Total(),
		FacilityRental:       stored.FacilityRate,
		FacilityCleaningFees: stored.CleaningRate,
		Overtime: OvertimeLine{
			Hours:        hours,
			TotalCost:    hours.Mul(stored.OvertimeRate),
			OvertimeRate: stored.OvertimeRate,
		},
		Seats: SeatsLine{
			SeatsCount:    seats,
			SeatPrice:     stored.SeatRate,
			SeatRateTotal: stored.SeatRate.Mul(decimal.NewFromInt(int64(seats))),
		},
	}
}

// Frozen returns the rates a quote was actually priced with.
func (b SubtotalBreakdown) Frozen() StoredRates {
	return StoredRates{
		CleaningRate: b.FacilityCleaningFees,
		FacilityRate: b.FacilityRental,
		OvertimeRate: b.Overtime.OvertimeRate,
		SeatRate:     b.Seats.SeatPrice,
	}
}
