package web

import (
	"fmt"
	"log/slog"
	"net/http"

	"table-reservation/internal/domain/reservation"
	reqdto "table-reservation/internal/handler/dto/request"
	"table-reservation/internal/handler/httperr"
	"table-reservation/internal/handler/middleware"
	"table-reservation/internal/pkg/clock"
	"table-reservation/internal/pkg/config"
	"table-reservation/internal/pkg/cookie"
	"table-reservation/internal/pkg/errs"
	"table-reservation/internal/usecase/commands"
	"table-reservation/internal/usecase/queries"
	"table-reservation/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

const (
	msgPersistenceFailed = "Erreur lors de la réservation. Veuillez réessayer plus tard."
	msgInvalidForm       = "Formulaire invalide"
)

type formView struct {
	Restaurant string
	Errors     []string
	Form       reqdto.ReservationForm
	Today      string
	MinTime    string
	MaxTime    string
	FirstHour  int
	EndHour    int
	MinParty   int
	MaxParty   int
}

type confirmationView struct {
	Restaurant   string
	Phone        string
	Confirmation reservation.PendingConfirmation
}

type ReservationHandler struct {
	cmds          commands.ReservationCommands
	confirmations queries.ConfirmationQueries
	cookie        *cookie.ConfirmationCookie
	restaurant    config.RestaurantConfig
	clock         clock.Clock
	logger        *slog.Logger
}

func NewReservationHandler(
	cmds commands.ReservationCommands,
	confirmations queries.ConfirmationQueries,
	cc *cookie.ConfirmationCookie,
	restaurant config.RestaurantConfig,
	clk clock.Clock,
	logger *slog.Logger,
) *ReservationHandler {
	return &ReservationHandler{
		cmds:          cmds,
		confirmations: confirmations,
		cookie:        cc,
		restaurant:    restaurant,
		clock:         clk,
		logger:        logger,
	}
}

// ShowForm renders the empty reservation form.
func (h *ReservationHandler) ShowForm(c *gin.Context) {
	h.renderForm(c, http.StatusOK, reqdto.ReservationForm{}, nil)
}

// Submit handles the posted form. Success redirects to the confirmation page;
// any rejection re-renders the form with the submitted values.
func (h *ReservationHandler) Submit(c *gin.Context) {
	var form reqdto.ReservationForm
	if err := c.ShouldBind(&form); err != nil {
		httperr.RecordError(c, err)
		h.renderForm(c, http.StatusBadRequest, form, []string{msgInvalidForm})
		return
	}

	result, err := h.cmds.Submit(c.Request.Context(), form.ToDomain())
	if err != nil {
		h.renderSubmitError(c, form, err)
		return
	}

	if result.Token == "" {
		// nowhere to carry the confirmation across a redirect
		h.renderConfirmation(c, result.Confirmation)
		return
	}

	if err := h.cookie.Set(c, result.Token); err != nil {
		h.logger.Error("failed to set confirmation cookie",
			"request_id", middleware.GetRequestID(c),
			"code", result.Confirmation.Code,
			"error", err.Error())
		h.renderConfirmation(c, result.Confirmation)
		return
	}

	c.Redirect(http.StatusSeeOther, "/confirmation")
}

// ShowConfirmation renders a pending confirmation once. Without a valid cookie,
// or once the confirmation has been shown, the visitor is sent back to the form.
func (h *ReservationHandler) ShowConfirmation(c *gin.Context) {
	token, ok := h.cookie.Read(c)
	if !ok {
		c.Redirect(http.StatusSeeOther, "/reservation")
		return
	}
	h.cookie.Clear(c)

	pc, err := h.confirmations.Consume(c.Request.Context(), token)
	if err != nil {
		if !errs.Is(err, errs.ErrConfirmationNotFound) {
			httperr.RecordError(c, err)
			h.logger.Error("failed to load pending confirmation",
				"request_id", middleware.GetRequestID(c),
				"error", err.Error())
		}
		c.Redirect(http.StatusSeeOther, "/reservation")
		return
	}

	h.renderConfirmation(c, *pc)
}

func (h *ReservationHandler) renderSubmitError(c *gin.Context, form reqdto.ReservationForm, err error) {
	var verr *shared.ValidationError
	if errs.As(err, &verr) {
		msgs := make([]string, len(verr.Violations))
		for i, v := range verr.Violations {
			msgs[i] = v.Message
		}
		h.renderForm(c, http.StatusUnprocessableEntity, form, msgs)
		return
	}

	var capErr *commands.CapacityError
	if errs.As(err, &capErr) {
		h.renderForm(c, http.StatusUnprocessableEntity, form, []string{capErr.Message()})
		return
	}

	httperr.RecordError(c, err)
	h.renderForm(c, http.StatusInternalServerError, form, []string{msgPersistenceFailed})
}

func (h *ReservationHandler) renderForm(c *gin.Context, status int, form reqdto.ReservationForm, messages []string) {
	c.HTML(status, reservationPage, formView{
		Restaurant: h.restaurant.Name,
		Errors:     messages,
		Form:       form,
		Today:      h.clock.Now().Format(reservation.DateLayout),
		MinTime:    fmt.Sprintf("%02d:00", h.restaurant.FirstSeatingHour),
		MaxTime:    fmt.Sprintf("%02d:59", h.restaurant.LastSeatingHour),
		FirstHour:  h.restaurant.FirstSeatingHour,
		EndHour:    h.restaurant.LastSeatingHour + 1,
		MinParty:   h.restaurant.MinPartySize,
		MaxParty:   h.restaurant.MaxPartySize,
	})
}

func (h *ReservationHandler) renderConfirmation(c *gin.Context, pc reservation.PendingConfirmation) {
	c.Header("Cache-Control", "no-store")
	c.HTML(http.StatusOK, confirmationPage, confirmationView{
		Restaurant:   h.restaurant.Name,
		Phone:        h.restaurant.ContactPhone,
		Confirmation: pc,
	})
}
