package queries

import (
	"context"
	"log/slog"

	"venue-admin/internal/domain/pricing"
	"venue-admin/internal/pkg/errs"
	"venue-admin/internal/usecase/shared"

	"golang.org/x/sync/singleflight"
)

var ErrRatesUnavailable = errs.New("rate table unavailable")

type RateQueries interface {
	shared.RateProvider
}

// FallbackRates holds the values used for rate names missing from the catalog.
type FallbackRates pricing.RateTable

type rateQueriesImpl struct {
	catalog  shared.CatalogClient
	cache    shared.RateCache
	fallback pricing.RateTable
	group    singleflight.Group
}

func NewRateQueries(catalog shared.CatalogClient, cache shared.RateCache, fallback FallbackRates) RateQueries {
	return &rateQueriesImpl{
		catalog:  catalog,
		cache:    cache,
		fallback: pricing.RateTable(fallback),
	}
}

// Current serves the cached table when present. Cache failures only cost a
// catalog round trip.
func (q *rateQueriesImpl) Current(ctx context.Context) (pricing.RateTable, error) {
	cached, err := q.cache.Get(ctx)
	if err != nil {
		slog.Warn("rate cache read failed", "error", err.Error())
	}
	if cached != nil {
		return *cached, nil
	}

	// The shared fetch outlives any single caller; the catalog client's own
	// timeout bounds it. Each caller still stops waiting on its own ctx.
	ch := q.group.DoChan("rates", func() (any, error) {
		return q.fetch(context.WithoutCancel(ctx))
	})
	select {
	case <-ctx.Done():
		return pricing.RateTable{}, errs.Mark(ctx.Err(), ErrRatesUnavailable)
	case res := <-ch:
		if res.Err != nil {
			return pricing.RateTable{}, res.Err
		}
		return res.Val.(pricing.RateTable), nil
	}
}

func (q *rateQueriesImpl) fetch(ctx context.Context) (pricing.RateTable, error) {
	items, err := q.catalog.ListAddOns(ctx)
	if err != nil {
		return pricing.RateTable{}, errs.Mark(err, ErrRatesUnavailable)
	}

	rates := pricing.RatesFromCatalog(items, q.fallback)
	if err := rates.Validate(); err != nil {
		return pricing.RateTable{}, errs.Mark(err, ErrRatesUnavailable)
	}

	if err := q.cache.Set(ctx, rates); err != nil {
		slog.Warn("rate cache write failed", "error", err.Error())
	}
	return rates, nil
}
