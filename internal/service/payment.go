package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/iliyamo/railway-ticket-reservation/internal/model"
	"github.com/iliyamo/railway-ticket-reservation/internal/queue"
	"github.com/iliyamo/railway-ticket-reservation/internal/repository"
)

// Payment methods accepted by the simulation.
const (
	MethodUPI    = "upi"
	MethodDebit  = "debit"
	MethodCredit = "credit"
)

// Payment states.  Each attempt walks Idle -> Processing -> Settled; there
// is no failure state because payment cannot fail once the entry checks
// pass.
const (
	StateIdle       = "idle"
	StateProcessing = "processing"
	StateSettled    = "settled"
)

// Payment entry errors.  These are the only ways a payment can be refused,
// and all of them happen before the simulated processing starts.
var (
	ErrNoDraft             = errors.New("no booking in progress")
	ErrUnknownMethod       = errors.New("unknown payment method")
	ErrUPIRequired         = errors.New("UPI ID is required")
	ErrCardDetailsRequired = errors.New("card number, expiry and CVV are required")
)

// PaymentDetails is the instrument the payer selected.  Only non-emptiness
// is checked: there is no UPI format validation, no Luhn check and no
// expiry validity check, faithful to the simulation.
type PaymentDetails struct {
	Method     string `json:"method"`
	UPIID      string `json:"upiId"`
	CardNumber string `json:"cardNumber"`
	CardExpiry string `json:"cardExpiry"`
	CardCVV    string `json:"cardCvv"`
}

// PaymentService simulates the payment step.  Process holds for the
// configured delay and then unconditionally commits the staged draft into a
// confirmed booking.  The delay is a plain sleep on purpose: in the
// reference behavior navigating away during processing does not abort the
// pending commit, so no context cancellation is honored mid-flight.
type PaymentService struct {
	bookings *repository.BookingRepo
	delay    time.Duration

	// Publish is invoked after commit with the confirmation event.  It
	// defaults to the RabbitMQ publisher; tests substitute a no-op.
	Publish func(context.Context, queue.TicketConfirmedEvent) error

	mu    sync.Mutex
	state string
}

// NewPaymentService returns a payment simulator over the booking store.
// Tests pass a zero delay.
func NewPaymentService(bookings *repository.BookingRepo, delay time.Duration) *PaymentService {
	return &PaymentService{
		bookings: bookings,
		delay:    delay,
		Publish:  queue.PublishTicketConfirmed,
		state:    StateIdle,
	}
}

// State reports where the simulation currently is, for busy indicators.
func (s *PaymentService) State() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// validate applies the entry checks for the chosen method.
func validate(d PaymentDetails) error {
	switch d.Method {
	case MethodUPI:
		if d.UPIID == "" {
			return ErrUPIRequired
		}
	case MethodDebit, MethodCredit:
		if d.CardNumber == "" || d.CardExpiry == "" || d.CardCVV == "" {
			return ErrCardDetailsRequired
		}
	default:
		return ErrUnknownMethod
	}
	return nil
}

// Process runs one payment attempt against the currently staged draft.  It
// refuses only when no draft is staged or the instrument fields are empty;
// after that the outcome is fixed: wait, commit the draft through the
// booking store, clear the draft, publish the confirmation event (best
// effort) and settle.  The created booking is returned for display.
func (s *PaymentService) Process(details PaymentDetails) (model.Booking, error) {
	draft := s.bookings.Draft()
	if draft == nil {
		return model.Booking{}, ErrNoDraft
	}
	if err := validate(details); err != nil {
		return model.Booking{}, err
	}

	s.mu.Lock()
	s.state = StateProcessing
	s.mu.Unlock()

	time.Sleep(s.delay) // simulated gateway processing; cannot be aborted

	booking := s.bookings.Add(*draft)
	s.bookings.ClearDraft()

	// Best effort: a broker outage must not fail a settled payment.
	_ = s.Publish(context.Background(), queue.TicketConfirmedEvent{
		BookingID:   booking.ID,
		PNR:         booking.PNR,
		TrainNumber: booking.TrainNumber,
		TrainName:   booking.TrainName,
		Source:      booking.Source,
		Destination: booking.Destination,
		JourneyDate: booking.JourneyDate,
		ClassCode:   booking.ClassCode,
		Passengers:  len(booking.Passengers),
		SeatNumbers: booking.SeatNumbers,
		TotalFare:   booking.TotalFare,
		BookedAt:    booking.BookedAt,
	})

	s.mu.Lock()
	s.state = StateSettled
	s.mu.Unlock()
	return booking, nil
}
