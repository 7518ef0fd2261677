//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"venue-admin/internal/handler/api"
	resdto "venue-admin/internal/handler/dto/response"
	"venue-admin/internal/usecase/queries"
	"venue-admin/tests/common/builder"
	"venue-admin/tests/common/httptest"
	commandsmock "venue-admin/tests/mock/commands"
	queriesmock "venue-admin/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type RatesHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockRates    *queriesmock.MockRateQueries
	mockCommands *commandsmock.MockReservationCommands
	handler      *api.RatesHandler
}

func (s *RatesHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockRates = queriesmock.NewMockRateQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.handler = api.NewRatesHandler(s.mockRates, s.mockCommands)

	s.router.GET("/rates", s.handler.Get)
	s.router.DELETE("/rates/cache", s.handler.Invalidate)
}

func (s *RatesHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestRatesHandlerSuite(t *testing.T) {
	suite.Run(t, new(RatesHandlerTestSuite))
}

func (s *RatesHandlerTestSuite) TestGet() {
	s.Run("success: returns the resolved rate table", func() {
		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rates", nil, "")

		var body resdto.RatesResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.InDelta(2.5, body.SeatRate, 1e-9)
		s.InDelta(1500, body.RegularFacilityRate, 1e-9)
		s.InDelta(2000, body.SaturdayFacilityRate, 1e-9)
		s.InDelta(150, body.CleaningFeeSmall, 1e-9)
		s.InDelta(250, body.CleaningFeeLarge, 1e-9)
		s.InDelta(150, body.OvertimeHourlyRate, 1e-9)
	})

	s.Run("error: 503 when the catalog cannot be read", func() {
		s.mockRates.EXPECT().Current(gomock.Any()).Return(builder.DefaultRates(), queries.ErrRatesUnavailable).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/rates", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusServiceUnavailable, "unavailable")
	})
}

func (s *RatesHandlerTestSuite) TestInvalidate() {
	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().InvalidateRates(gomock.Any()).Return(nil).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rates/cache", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 500 when the cache refuses", func() {
		s.mockCommands.EXPECT().InvalidateRates(gomock.Any()).Return(errors.New("redis down")).Times(1)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/rates/cache", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal error")
	})
}
