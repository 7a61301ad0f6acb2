package service

import (
	"context"
	"errors"
	"testing"

	"github.com/iliyamo/railway-ticket-reservation/internal/model"
	"github.com/iliyamo/railway-ticket-reservation/internal/queue"
	"github.com/iliyamo/railway-ticket-reservation/internal/repository"
	"github.com/iliyamo/railway-ticket-reservation/internal/storage"
	"github.com/iliyamo/railway-ticket-reservation/internal/utils"
)

func newPayment(t *testing.T) (*PaymentService, *BookingService, *repository.BookingRepo) {
	t.Helper()
	bookings := repository.NewBookingRepo(storage.NewMemoryStore(), utils.NewWeakGenerator())
	payments := NewPaymentService(bookings, 0)
	payments.Publish = func(context.Context, queue.TicketConfirmedEvent) error { return nil }
	return payments, NewBookingService(repository.NewTrainRepo(), bookings), bookings
}

func upi() PaymentDetails { return PaymentDetails{Method: MethodUPI, UPIID: "asha@upi"} }

func TestProcessWithoutDraft(t *testing.T) {
	payments, _, _ := newPayment(t)
	if _, err := payments.Process(upi()); !errors.Is(err, ErrNoDraft) {
		t.Fatalf("Process with no draft: err = %v", err)
	}
	if payments.State() != StateIdle {
		t.Fatalf("state after refused attempt = %q", payments.State())
	}
}

func TestProcessInstrumentChecks(t *testing.T) {
	payments, flow, bookings := newPayment(t)
	if _, _, err := flow.Stage("1", "2026-09-15", "2A", validPassengers(1)); err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		name    string
		details PaymentDetails
		want    error
	}{
		{"upi without id", PaymentDetails{Method: MethodUPI}, ErrUPIRequired},
		{"debit missing cvv", PaymentDetails{Method: MethodDebit, CardNumber: "4111111111111111", CardExpiry: "12/27"}, ErrCardDetailsRequired},
		{"credit all empty", PaymentDetails{Method: MethodCredit}, ErrCardDetailsRequired},
		{"unknown method", PaymentDetails{Method: "cash"}, ErrUnknownMethod},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := payments.Process(tc.details); !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}

	// Refused attempts leave the draft staged for a retry.
	if bookings.Draft() == nil {
		t.Fatalf("instrument check consumed the draft")
	}
}

func TestProcessCommitsDraft(t *testing.T) {
	payments, flow, bookings := newPayment(t)
	var published *queue.TicketConfirmedEvent
	payments.Publish = func(_ context.Context, ev queue.TicketConfirmedEvent) error {
		published = &ev
		return nil
	}

	if _, _, err := flow.Stage("1", "2026-09-15", "2A", validPassengers(3)); err != nil {
		t.Fatal(err)
	}
	booking, err := payments.Process(PaymentDetails{
		Method: MethodCredit, CardNumber: "4111111111111111", CardExpiry: "12/27", CardCVV: "123",
	})
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if booking.Status != model.StatusConfirmed {
		t.Fatalf("status = %q", booking.Status)
	}
	if len(booking.SeatNumbers) != 3 {
		t.Fatalf("seat count = %d", len(booking.SeatNumbers))
	}
	if payments.State() != StateSettled {
		t.Fatalf("state = %q", payments.State())
	}
	if bookings.Draft() != nil {
		t.Fatalf("draft not cleared after commit")
	}
	if published == nil || published.BookingID != booking.ID || published.PNR != booking.PNR {
		t.Fatalf("confirmation event = %+v", published)
	}
}

func TestProcessSettlesDespiteBrokerOutage(t *testing.T) {
	payments, flow, _ := newPayment(t)
	payments.Publish = func(context.Context, queue.TicketConfirmedEvent) error {
		return errors.New("broker down")
	}
	if _, _, err := flow.Stage("1", "2026-09-15", "2A", validPassengers(1)); err != nil {
		t.Fatal(err)
	}
	booking, err := payments.Process(upi())
	if err != nil {
		t.Fatalf("publish failure leaked into the payment result: %v", err)
	}
	if booking.Status != model.StatusConfirmed || payments.State() != StateSettled {
		t.Fatalf("booking %q, state %q", booking.Status, payments.State())
	}
}

// Full flow: search, stage, pay.  Two adults from Ilkal to Bengaluru in
// Second AC comes to 2 x 2800.
func TestBookingEndToEnd(t *testing.T) {
	payments, flow, bookings := newPayment(t)
	trains := repository.NewTrainRepo()

	results := trains.Search("ILKL", "SBC", "2A")
	if len(results) == 0 {
		t.Fatalf("search returned no trains")
	}
	train := results[0]
	if train.ID != "1" {
		t.Fatalf("expected train 1 first, got %s", train.ID)
	}

	draft, _, err := flow.Stage(train.ID, "2026-09-15", "2A", []model.Passenger{
		{Name: "Asha Rao", Age: 28, Gender: model.GenderFemale},
		{Name: "Vikram Rao", Age: 31, Gender: model.GenderMale},
	})
	if err != nil {
		t.Fatalf("Stage: %v", err)
	}
	if draft.TotalFare != 5600 {
		t.Fatalf("TotalFare = %d, want 5600", draft.TotalFare)
	}

	booking, err := payments.Process(upi())
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if booking.TotalFare != 5600 || len(booking.SeatNumbers) != 2 {
		t.Fatalf("committed booking = %+v", booking)
	}
	if booking.Status != model.StatusConfirmed {
		t.Fatalf("status = %q", booking.Status)
	}

	// The booking is now at the head of history and findable by PNR.
	list := bookings.List()
	if list[0].ID != booking.ID {
		t.Fatalf("booking not first in history")
	}
	if got, ok := bookings.GetByPNR(booking.PNR); !ok || got.ID != booking.ID {
		t.Fatalf("PNR lookup failed for %s", booking.PNR)
	}

	// Cancellation is the only transition left.
	if !bookings.Cancel(booking.ID) {
		t.Fatalf("cancel failed")
	}
	got, _ := bookings.GetByID(booking.ID)
	if got.Status != model.StatusCancelled {
		t.Fatalf("status after cancel = %q", got.Status)
	}
}
