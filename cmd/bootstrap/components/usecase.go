package components

import (
	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/pkg/clock"
	"venue-admin/internal/pkg/config"
	"venue-admin/internal/usecase"
	"venue-admin/internal/usecase/commands"
	"venue-admin/internal/usecase/queries"
	"venue-admin/internal/usecase/shared"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	NewCalculator,
	NewSettings,
	NewFallbackRates,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewQuoteCommands,
		commands.NewReservationCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewQuoteQueries,
		queries.NewRateQueries,
		func(r queries.RateQueries) shared.RateProvider { return r },
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)

func NewCalculator(cfg config.Config) (*pricing.Calculator, error) {
	loc, err := cfg.Venue.Location()
	if err != nil {
		return nil, err
	}
	return pricing.NewCalculator(loc), nil
}

func NewSettings(cfg config.Config) commands.Settings {
	return commands.Settings{
		TaxRate:        cfg.Venue.TaxRate,
		PriceTolerance: cfg.Venue.PriceTolerance,
	}
}

// NewFallbackRates covers rate names the add-ons catalog does not return.
func NewFallbackRates(cfg config.Config) queries.FallbackRates {
	v := cfg.Venue
	return queries.FallbackRates{
		SeatRate:             v.FallbackSeatRate,
		RegularFacilityRate:  v.FallbackRegularRate,
		SaturdayFacilityRate: v.FallbackSaturdayRate,
		CleaningFeeSmall:     v.FallbackCleaningSmall,
		CleaningFeeLarge:     v.FallbackCleaningLarge,
		OvertimeHourlyRate:   v.FallbackOvertimeRate,
	}
}
