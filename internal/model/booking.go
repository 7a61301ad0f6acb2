package model

// Booking status values.  A booking is created as StatusConfirmed and the
// only reachable transition is to StatusCancelled, which is terminal.
// StatusWaiting is part of the public taxonomy but no workflow currently
// produces it; it is kept for forward compatibility and must not be removed
// without a product decision on waitlisting.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusWaiting   = "waiting"
)

// Passenger gender values accepted by the booking flow.
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// Passenger is one traveller on a booking.  Validation (trimmed name of at
// least 3 characters, age 1..120, gender from the three-way enum) happens
// once at entry time in the booking flow; the booking store does not
// re-validate stored passengers.
//
// Fields:
//  Name   – passenger full name.
//  Age    – age in whole years.
//  Gender – one of the Gender* constants.
type Passenger struct {
	Name   string `json:"name"`   // full name, >=3 trimmed chars
	Age    int    `json:"age"`    // 1..120
	Gender string `json:"gender"` // male | female | other
}

// Booking is a confirmed (or later cancelled) ticket.  Bookings are created
// atomically by the payment step, never partially persisted, and never
// deleted.  Invariant: len(SeatNumbers) == len(Passengers).
//
// Fields:
//  ID          – booking identifier ("BK" + epoch millis + random digits).
//  PNR         – 10 character public tracking code.
//  TrainID     – identifier of the booked train in the timetable.
//  TrainNumber – public train number, denormalized for display.
//  TrainName   – train name, denormalized for display.
//  Source      – source station code.
//  Destination – destination station code.
//  JourneyDate – travel date as "YYYY-MM-DD".
//  ClassCode   – booked fare class code.
//  ClassName   – booked fare class name.
//  Passengers  – travellers on this booking (1..6).
//  TotalFare   – class fare multiplied by passenger count.
//  Status      – one of the Status* constants.
//  BookedAt    – RFC 3339 creation timestamp.
//  SeatNumbers – one generated seat label per passenger.
type Booking struct {
	ID          string      `json:"id"`          // booking identifier
	PNR         string      `json:"pnr"`         // public tracking code
	TrainID     string      `json:"trainId"`     // booked train id
	TrainNumber string      `json:"trainNumber"` // denormalized train number
	TrainName   string      `json:"trainName"`   // denormalized train name
	Source      string      `json:"source"`      // source station code
	Destination string      `json:"destination"` // destination station code
	JourneyDate string      `json:"journeyDate"` // "YYYY-MM-DD"
	ClassCode   string      `json:"classCode"`   // fare class code
	ClassName   string      `json:"className"`   // fare class name
	Passengers  []Passenger `json:"passengers"`  // 1..6 travellers
	TotalFare   int         `json:"totalFare"`   // fare * passenger count
	Status      string      `json:"status"`      // confirmed | cancelled | waiting
	BookedAt    string      `json:"bookedAt"`    // RFC 3339 timestamp
	SeatNumbers []string    `json:"seatNumbers"` // one seat per passenger
}

// BookingDraft is the partially assembled booking staged between class
// selection and payment commit.  It carries everything the payment step
// needs to create a Booking; id, PNR, seats, status and timestamp are filled
// in at commit time.  The draft slot in the booking store holds at most one
// of these and each staging call fully replaces it.
type BookingDraft struct {
	TrainID     string      `json:"trainId"`     // selected train id
	TrainNumber string      `json:"trainNumber"` // selected train number
	TrainName   string      `json:"trainName"`   // selected train name
	Source      string      `json:"source"`      // source station code
	Destination string      `json:"destination"` // destination station code
	JourneyDate string      `json:"journeyDate"` // "YYYY-MM-DD"
	ClassCode   string      `json:"classCode"`   // selected class code
	ClassName   string      `json:"className"`   // selected class name
	Passengers  []Passenger `json:"passengers"`  // validated travellers
	TotalFare   int         `json:"totalFare"`   // computed fare
}
