package api

import (
	"net/http"

	reqdto "table-reservation/internal/handler/dto/request"
	resdto "table-reservation/internal/handler/dto/response"
	"table-reservation/internal/handler/httperr"
	"table-reservation/internal/pkg/errs"
	"table-reservation/internal/usecase/queries"
	"table-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	q queries.ReservationQueries
}

func NewReservationHandler(q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{q: q}
}

// @Summary Check availability
// @Description Report whether a party of the given size can be seated at the given date and time
// @Tags availability
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param heure query string true "Time (HH:MM)"
// @Param personnes query int true "Party size"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 422 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/availability [get]
func (h *ReservationHandler) CheckAvailability(c *gin.Context) {
	var q reqdto.AvailabilityQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	view, err := h.q.CheckAvailability(c.Request.Context(), q.ToDomain())
	if err != nil {
		var verr *shared.ValidationError
		if errs.As(err, &verr) {
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Invalid request", resdto.FromViolations(verr.Violations))
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Get reservation
// @Description Look up a reservation by its confirmation code
// @Tags reservations
// @Produce json
// @Param code path string true "Reservation code (RES-XXXXXXXX)"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /api/reservations/{code} [get]
func (h *ReservationHandler) GetByCode(c *gin.Context) {
	view, err := h.q.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		if errs.Is(err, queries.ErrReservationNotFound) {
			httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
