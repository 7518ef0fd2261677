package pricing

import (
	"time"

	"github.com/shopspring/decimal"
)

// Catalog entries whose price acts as a rate rather than a sellable item.
const (
	SeatRateName             = "Seat Rate"
	OvertimeHourlyRateName   = "Overtime Hourly Rate"
	RegularFacilityRateName  = "Regular Facility Rate"
	SaturdayFacilityRateName = "Saturday Facility Rate"
	CleaningSmallName        = "Cleaning Small Guests Count"
	CleaningLargeName        = "Cleaning Large Guests Count"
)

// SmallGuestCountLimit is the largest guest count billed with the small cleaning fee.
const SmallGuestCountLimit = 100

type RateTable struct {
	SeatRate             decimal.Decimal `json:"seatRate"`
	RegularFacilityRate  decimal.Decimal `json:"regularFacilityRate"`
	SaturdayFacilityRate decimal.Decimal `json:"saturdayFacilityRate"`
	CleaningFeeSmall     decimal.Decimal `json:"cleaningFeeSmall"`
	CleaningFeeLarge     decimal.Decimal `json:"cleaningFeeLarge"`
	OvertimeHourlyRate   decimal.Decimal `json:"overtimeHourlyRate"`
}

func (r RateTable) Validate() error {
	for _, v := range []decimal.Decimal{
		r.SeatRate,
		r.RegularFacilityRate,
		r.SaturdayFacilityRate,
		r.CleaningFeeSmall,
		r.CleaningFeeLarge,
		r.OvertimeHourlyRate,
	} {
		if v.IsNegative() {
			return ErrNegativeRate
		}
	}
	return nil
}

func SelectFacilityRate(day time.Weekday, rates RateTable) decimal.Decimal {
	if day == time.Saturday {
		return rates.SaturdayFacilityRate
	}
	return rates.RegularFacilityRate
}

func SelectCleaningFee(guestCount int, rates RateTable) decimal.Decimal {
	if guestCount <= SmallGuestCountLimit {
		return rates.CleaningFeeSmall
	}
	return rates.CleaningFeeLarge
}

// RatesFromCatalog resolves the rate table by exact catalog name. Names missing
// from the catalog take the matching fallback value.
func RatesFromCatalog(items []AddOn, fallback RateTable) RateTable {
	byName := make(map[string]decimal.Decimal, len(items))
	for _, it := range items {
		if _, seen := byName[it.Name]; seen {
			continue
		}
		byName[it.Name] = it.Price
	}

	lookup := func(name string, def decimal.Decimal) decimal.Decimal {
		if v, ok := byName[name]; ok {
			return v
		}
		return def
	}

	return RateTable{
		SeatRate:             lookup(SeatRateName, fallback.SeatRate),
		RegularFacilityRate:  lookup(RegularFacilityRateName, fallback.RegularFacilityRate),
		SaturdayFacilityRate: lookup(SaturdayFacilityRateName, fallback.SaturdayFacilityRate),
		CleaningFeeSmall:     lookup(CleaningSmallName, fallback.CleaningFeeSmall),
		CleaningFeeLarge:     lookup(CleaningLargeName, fallback.CleaningFeeLarge),
		OvertimeHourlyRate:   lookup(OvertimeHourlyRateName, fallback.OvertimeHourlyRate),
	}
}

// IsRateName reports whether the catalog entry is a pseudo-rate.
func IsRateName(name string) bool {
	switch name {
	case SeatRateName, OvertimeHourlyRateName, RegularFacilityRateName,
		SaturdayFacilityRateName, CleaningSmallName, CleaningLargeName:
		return true
	default:
		return false
	}
}
