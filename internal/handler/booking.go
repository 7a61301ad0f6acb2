package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-reservation/internal/model"
	"github.com/iliyamo/railway-ticket-reservation/internal/queue"
	"github.com/iliyamo/railway-ticket-reservation/internal/repository"
	"github.com/iliyamo/railway-ticket-reservation/internal/service"
)

// BookingHandler exposes the booking list, lookups, cancellation and the
// draft staging step of the booking flow.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Flow     *service.BookingService

	// PublishCancelled is invoked after a successful cancellation.  It
	// defaults to the RabbitMQ publisher; tests substitute a no-op.
	PublishCancelled func(context.Context, queue.TicketCancelledEvent) error
}

func NewBookingHandler(bookings *repository.BookingRepo, flow *service.BookingService) *BookingHandler {
	return &BookingHandler{
		Bookings:         bookings,
		Flow:             flow,
		PublishCancelled: queue.PublishTicketCancelled,
	}
}

// ----- DTOs -----

type stageDraftReq struct {
	TrainID     string            `json:"trainId"`
	JourneyDate string            `json:"journeyDate"`
	ClassCode   string            `json:"classCode"`
	Passengers  []model.Passenger `json:"passengers"`
}

// List returns every booking, most recent first.
func (h *BookingHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Bookings.List())
}

// Get returns one booking by id, 404 when unknown.
func (h *BookingHandler) Get(c echo.Context) error {
	b, ok := h.Bookings.GetByID(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, b)
}

// GetByPNR returns one booking by its tracking code, matched
// case-insensitively.
func (h *BookingHandler) GetByPNR(c echo.Context) error {
	b, ok := h.Bookings.GetByPNR(c.Param("pnr"))
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	return c.JSON(http.StatusOK, b)
}

// Cancel flips the booking to cancelled.  The repo's found semantics apply:
// cancelling an already-cancelled booking succeeds again, an unknown id is
// a 404.  A cancellation event is published best effort.
func (h *BookingHandler) Cancel(c echo.Context) error {
	id := c.Param("id")
	if !h.Bookings.Cancel(id) {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
	}
	b, _ := h.Bookings.GetByID(id)
	_ = h.PublishCancelled(c.Request().Context(), queue.TicketCancelledEvent{
		BookingID:   b.ID,
		PNR:         b.PNR,
		TrainNumber: b.TrainNumber,
		JourneyDate: b.JourneyDate,
		TotalFare:   b.TotalFare,
		CancelledAt: time.Now().UTC().Format(time.RFC3339),
	})
	return c.JSON(http.StatusOK, b)
}

// StageDraft validates the selection and passengers and stages the draft
// for payment.  Validation failures return 400 with per-passenger field
// annotations so the client can mark exactly the offending inputs.
func (h *BookingHandler) StageDraft(c echo.Context) error {
	var req stageDraftReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	draft, fieldErrs, err := h.Flow.Stage(req.TrainID, req.JourneyDate, req.ClassCode, req.Passengers)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTrainNotFound), errors.Is(err, service.ErrClassNotFound):
			return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
		case fieldErrs != nil:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid passenger details", "passengers": fieldErrs})
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
	}
	return c.JSON(http.StatusOK, draft)
}

// GetDraft returns the staged draft, or 404 when nothing is staged.
func (h *BookingHandler) GetDraft(c echo.Context) error {
	d := h.Bookings.Draft()
	if d == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no booking in progress"})
	}
	return c.JSON(http.StatusOK, d)
}

// ClearDraft empties the draft slot, mirroring navigation away from the
// flow.
func (h *BookingHandler) ClearDraft(c echo.Context) error {
	h.Bookings.ClearDraft()
	return c.NoContent(http.StatusNoContent)
}
