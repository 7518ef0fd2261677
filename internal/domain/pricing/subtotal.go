package pricing

import "github.com/shopspring/decimal"

type OvertimeLine struct {
	Hours        decimal.Decimal `json:"hours"`
	TotalCost    decimal.Decimal `json:"totalCost"`
	OvertimeRate decimal.Decimal `json:"overtimeRate"`
}

type SeatsLine struct {
	SeatsCount    int             `json:"seatsCount"`
	SeatPrice     decimal.Decimal `json:"seatPrice"`
	SeatRateTotal decimal.Decimal `json:"seatRateTotal"`
}

// SubtotalBreakdown itemizes the pre-discount, pre-tax charges.
type SubtotalBreakdown struct {
	AddOnsTotal          decimal.Decimal `json:"addOnsTotal"`
	FacilityRental       decimal.Decimal `json:"facilityRental"`
	FacilityCleaningFees decimal.Decimal `json:"facilityCleaningFees"`
	Overtime             OvertimeLine    `json:"overtime"`
	Seats                SeatsLine       `json:"seats"`
}

func (b SubtotalBreakdown) Sum() decimal.Decimal {
	return b.AddOnsTotal.
		Add(b.Seats.SeatRateTotal).
		Add(b.Overtime.TotalCost).
		Add(b.FacilityRental).
		Add(b.FacilityCleaningFees)
}

// ComputeSubtotal prices one snapshot of the form. Guest counts below zero
// contribute no seats. The facility rate is picked from the start's weekday in
// the start's own location.
func ComputeSubtotal(addOnsTotal decimal.Decimal, guestCount int, w ReservationWindow, rates RateTable) (decimal.Decimal, SubtotalBreakdown) {
	seats := guestCount
	if seats < 0 {
		seats = 0
	}

	hours := OvertimeHours(w)

	facility := rates.RegularFacilityRate
	if !w.Start.IsZero() {
		facility = SelectFacilityRate(w.Start.Weekday(), rates)
	}

	breakdown := SubtotalBreakdown{
		AddOnsTotal:          addOnsTotal,
		FacilityRental:       facility,
		FacilityCleaningFees: SelectCleaningFee(guestCount, rates),
		Overtime: OvertimeLine{
			Hours:        hours,
			TotalCost:    hours.Mul(rates.OvertimeHourlyRate),
			OvertimeRate: rates.OvertimeHourlyRate,
		},
		Seats: SeatsLine{
			SeatsCount:    seats,
			SeatPrice:     rates.SeatRate,
			SeatRateTotal: rates.SeatRate.Mul(decimal.NewFromInt(int64(seats))),
		},
	}

	return breakdown.Sum(), breakdown
}
