//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"

	"table-reservation/internal/domain/reservation"
	"table-reservation/internal/handler/api"
	resdto "table-reservation/internal/handler/dto/response"
	"table-reservation/internal/pkg/errs"
	"table-reservation/internal/usecase/queries"
	"table-reservation/internal/usecase/shared"
	"table-reservation/tests/common/httptest"
	queriesmock "table-reservation/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationAPITestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockReservationQueries
}

func TestReservationAPISuite(t *testing.T) {
	suite.Run(t, new(ReservationAPITestSuite))
}

func (s *ReservationAPITestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	h := api.NewReservationHandler(s.mockQueries)

	s.router.GET("/api/availability", h.CheckAvailability)
	s.router.GET("/api/reservations/:code", h.GetByCode)
}

func (s *ReservationAPITestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *ReservationAPITestSuite) TestCheckAvailability() {
	slot := reservation.Slot{Date: "2026-10-17", Time: "20:00", PartySize: "5"}

	testCases := []struct {
		name         string
		setup        func()
		expectCode   int
		expectInBody string
		expectBody   *resdto.AvailabilityResponse
	}{
		{
			name: "success",
			setup: func() {
				s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), slot).Return(&queries.AvailabilityView{
					Date: "2026-10-17", Time: "20:00", PartySize: 5,
					IsAvailable: true, TablesRequired: 2, TablesAvailable: 4,
				}, nil)
			},
			expectCode: http.StatusOK,
			expectBody: &resdto.AvailabilityResponse{
				Date: "2026-10-17", Time: "20:00", PartySize: 5,
				Available: true, TablesRequired: 2, TablesAvailable: 4,
			},
		},
		{
			name: "invalid slot",
			setup: func() {
				s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), slot).Return(nil, &shared.ValidationError{
					Violations: []reservation.Violation{{Field: reservation.FieldDate, Kind: reservation.KindPastDate, Message: "La date ne peut pas être dans le passé"}},
				})
			},
			expectCode:   http.StatusUnprocessableEntity,
			expectInBody: "Invalid request",
		},
		{
			name: "store failure",
			setup: func() {
				s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), slot).
					Return(nil, errs.Mark(errors.New("boom"), errs.ErrDatabaseOperationFailed))
			},
			expectCode:   http.StatusInternalServerError,
			expectInBody: "Internal server error",
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()

			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?date=2026-10-17&heure=20:00&personnes=5", nil)

			if tc.expectBody != nil {
				var got resdto.AvailabilityResponse
				httptest.AssertSuccessResponse(s.T(), w, tc.expectCode, &got)
				s.Equal(*tc.expectBody, got)
				return
			}
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectInBody)
		})
	}
}

func (s *ReservationAPITestSuite) TestCheckAvailability_ViolationDetail() {
	s.mockQueries.EXPECT().CheckAvailability(gomock.Any(), gomock.Any()).Return(nil, &shared.ValidationError{
		Violations: []reservation.Violation{{Field: reservation.FieldTime, Kind: reservation.KindOutsideServiceHours, Message: "Les réservations sont possibles entre 12h et 22h"}},
	})

	w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/availability?date=2026-10-17&heure=23:00&personnes=2", nil)

	s.Equal(http.StatusUnprocessableEntity, w.Code)
	s.Contains(w.Body.String(), `"field":"time"`)
	s.Contains(w.Body.String(), `"kind":"OutsideServiceHours"`)
}

func (s *ReservationAPITestSuite) TestGetByCode() {
	testCases := []struct {
		name       string
		code       string
		setup      func()
		expectCode int
	}{
		{
			name: "success",
			code: "RES-ABCD1234",
			setup: func() {
				s.mockQueries.EXPECT().GetByCode(gomock.Any(), "RES-ABCD1234").Return(&queries.ReservationView{
					Code: "RES-ABCD1234", Date: "2026-10-17", Time: "19:00", PartySize: 2, Status: "confirmed",
				}, nil)
			},
			expectCode: http.StatusOK,
		},
		{
			name: "not found",
			code: "RES-ZZZZ0000",
			setup: func() {
				s.mockQueries.EXPECT().GetByCode(gomock.Any(), "RES-ZZZZ0000").Return(nil, queries.ErrReservationNotFound)
			},
			expectCode: http.StatusNotFound,
		},
		{
			name: "store failure",
			code: "RES-ZZZZ0000",
			setup: func() {
				s.mockQueries.EXPECT().GetByCode(gomock.Any(), "RES-ZZZZ0000").
					Return(nil, errs.Mark(errors.New("boom"), errs.ErrDatabaseOperationFailed))
			},
			expectCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			tc.setup()

			w := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/reservations/"+tc.code, nil)

			if tc.expectCode == http.StatusOK {
				var got resdto.ReservationResponse
				httptest.AssertSuccessResponse(s.T(), w, tc.expectCode, &got)
				s.Equal("RES-ABCD1234", got.Code)
				s.Equal("confirmed", got.Status)
				return
			}
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, "")
		})
	}
}
