package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/railway-ticket-reservation/internal/model"
	"github.com/iliyamo/railway-ticket-reservation/internal/queue"
	"github.com/iliyamo/railway-ticket-reservation/internal/repository"
	"github.com/iliyamo/railway-ticket-reservation/internal/service"
	"github.com/iliyamo/railway-ticket-reservation/internal/storage"
	"github.com/iliyamo/railway-ticket-reservation/internal/utils"
)

func newPaymentHandler(t *testing.T) (*PaymentHandler, *repository.BookingRepo) {
	t.Helper()
	bookings := repository.NewBookingRepo(storage.NewMemoryStore(), utils.NewWeakGenerator())
	payments := service.NewPaymentService(bookings, 0)
	payments.Publish = func(context.Context, queue.TicketConfirmedEvent) error { return nil }
	return NewPaymentHandler(payments), bookings
}

func postJSON(e *echo.Echo, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestProcessWithoutDraftRedirects(t *testing.T) {
	h, _ := newPaymentHandler(t)
	e := echo.New()
	c, rec := postJSON(e, "/v1/payments", `{"method":"upi","upiId":"a@upi"}`)
	if err := h.Process(c); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if rec.Code != http.StatusConflict {
		t.Fatalf("status %d", rec.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["redirect"] != "/v1/trains/search" {
		t.Fatalf("redirect hint = %q", body["redirect"])
	}
}

func TestProcessCreatesBooking(t *testing.T) {
	h, bookings := newPaymentHandler(t)
	bookings.SetDraft(&model.BookingDraft{
		TrainID: "1", TrainNumber: "12301", ClassCode: "2A", ClassName: "Second AC",
		JourneyDate: "2026-09-15",
		Passengers: []model.Passenger{
			{Name: "Asha Rao", Age: 28, Gender: model.GenderFemale},
		},
		TotalFare: 2800,
	})

	e := echo.New()
	c, rec := postJSON(e, "/v1/payments", `{"method":"upi","upiId":"asha@upi"}`)
	if err := h.Process(c); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("status %d, body %s", rec.Code, rec.Body.String())
	}
	var b model.Booking
	if err := json.Unmarshal(rec.Body.Bytes(), &b); err != nil {
		t.Fatal(err)
	}
	if b.Status != model.StatusConfirmed || len(b.SeatNumbers) != 1 {
		t.Fatalf("created booking = %+v", b)
	}
	if bookings.Draft() != nil {
		t.Fatalf("draft survived payment")
	}
}

func TestProcessRejectsEmptyInstrument(t *testing.T) {
	h, bookings := newPaymentHandler(t)
	bookings.SetDraft(&model.BookingDraft{
		TrainID: "1", ClassCode: "2A",
		Passengers: []model.Passenger{{Name: "Asha Rao", Age: 28, Gender: model.GenderFemale}},
		TotalFare:  2800,
	})
	e := echo.New()
	c, rec := postJSON(e, "/v1/payments", `{"method":"upi"}`)
	if err := h.Process(c); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status %d", rec.Code)
	}
	if bookings.Draft() == nil {
		t.Fatalf("refused payment consumed the draft")
	}
}
