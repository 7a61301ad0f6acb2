// Package queue defines message payloads exchanged over the message broker.
package queue

// TicketConfirmedEvent is published when payment settles and a booking is
// committed.  It carries enough information for downstream consumers to
// log, notify, or feed analytics without querying the booking store.
type TicketConfirmedEvent struct {
	BookingID   string   `json:"booking_id"`
	PNR         string   `json:"pnr"`
	TrainNumber string   `json:"train_number"`
	TrainName   string   `json:"train_name"`
	Source      string   `json:"source"`
	Destination string   `json:"destination"`
	JourneyDate string   `json:"journey_date"`
	ClassCode   string   `json:"class_code"`
	Passengers  int      `json:"passengers"`
	SeatNumbers []string `json:"seats"`
	TotalFare   int      `json:"total_fare"`
	BookedAt    string   `json:"booked_at"`
}

// TicketCancelledEvent is published when a confirmed booking is cancelled.
// Cancellation is terminal, so consumers can treat one of these as the end
// of the booking's lifecycle.
type TicketCancelledEvent struct {
	BookingID   string `json:"booking_id"`
	PNR         string `json:"pnr"`
	TrainNumber string `json:"train_number"`
	JourneyDate string `json:"journey_date"`
	TotalFare   int    `json:"total_fare"`
	CancelledAt string `json:"cancelled_at"`
}
