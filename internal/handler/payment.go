package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-reservation/internal/service"
)

// PaymentHandler drives the payment simulation against the staged draft.
type PaymentHandler struct {
	Payments *service.PaymentService
}

func NewPaymentHandler(payments *service.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// Process handles POST /v1/payments.  Paying with no staged draft means the
// client skipped the flow (or lost its state), so the response carries a
// redirect hint back to the search entry point.  Instrument errors are 400;
// once those pass the payment cannot fail and the created booking is
// returned.
func (h *PaymentHandler) Process(c echo.Context) error {
	var details service.PaymentDetails
	if err := c.Bind(&details); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	booking, err := h.Payments.Process(details)
	if err != nil {
		if errors.Is(err, service.ErrNoDraft) {
			return c.JSON(http.StatusConflict, echo.Map{
				"error":    "no booking in progress",
				"redirect": "/v1/trains/search",
			})
		}
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusCreated, booking)
}

// State reports the simulation state for busy indicators.
func (h *PaymentHandler) State(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"state": h.Payments.State()})
}
