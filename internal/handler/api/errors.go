package api

import (
	"net/http"

	"venue-admin/internal/handler/httperr"
	"venue-admin/internal/pkg/errs"
	"venue-admin/internal/usecase/commands"
	"venue-admin/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type priceMismatchDetail struct {
	Submitted float64 `json:"submittedTotal"`
	Expected  float64 `json:"expectedTotal"`
}

// abortWithUsecaseError maps usecase and venue API errors onto HTTP statuses.
// A failed catalog read is always 503, whatever the catalog answered: the
// admin cannot fix a service token or URL from the dashboard.
func abortWithUsecaseError(c *gin.Context, err error) {
	var mismatch *commands.PriceMismatchError

	switch {
	case errs.Is(err, queries.ErrRatesUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Rate table unavailable", nil)
	case errs.As(err, &mismatch):
		httperr.AbortWithError(c, http.StatusConflict, err, "Price mismatch", priceMismatchDetail{
			Submitted: mismatch.Submitted.InexactFloat64(),
			Expected:  mismatch.Expected.InexactFloat64(),
		})
	case errs.Is(err, commands.ErrNegativeTotal):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Discount cannot exceed the subtotal", nil)
	case errs.Is(err, commands.ErrActionNotAllowed):
		httperr.AbortWithError(c, http.StatusConflict, err, "Action not allowed", err.Error())
	case errs.Is(err, commands.ErrInvalidQuote), errs.Is(err, commands.ErrInvalidReservation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errs.Is(err, queries.ErrInvalidCursor):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
	case errs.Is(err, queries.ErrQuoteNotFound), errs.Is(err, queries.ErrQuoteAccess):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, errs.ErrUpstreamRejected):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Rejected by the venue API", err.Error())
	case errs.Is(err, errs.ErrUpstreamNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found in the venue API", nil)
	case errs.Is(err, errs.ErrUpstreamConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Conflict reported by the venue API", nil)
	case errs.Is(err, errs.ErrUpstreamUnauthorized):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed by the venue API", nil)
	case errs.Is(err, errs.ErrUpstreamUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Venue API unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
