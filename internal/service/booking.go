package service

import (
	"errors"
	"strings"
	"time"

	"github.com/iliyamo/railway-ticket-reservation/internal/model"
	"github.com/iliyamo/railway-ticket-reservation/internal/repository"
)

// Passenger count bounds for one booking.
const (
	MinPassengers = 1
	MaxPassengers = 6
)

// Booking flow errors.
var (
	ErrPassengerCount = errors.New("passenger count must be between 1 and 6")
	ErrTrainNotFound  = errors.New("train not found")
	ErrClassNotFound  = errors.New("class not offered on this train")
	ErrBadJourneyDate = errors.New("journey date must be YYYY-MM-DD")
)

// PassengerError annotates the invalid fields of one passenger.  Empty
// strings mean the field is fine; only offending fields carry a message.
type PassengerError struct {
	Name   string `json:"name,omitempty"`
	Age    string `json:"age,omitempty"`
	Gender string `json:"gender,omitempty"`
}

func (e PassengerError) ok() bool { return e.Name == "" && e.Age == "" && e.Gender == "" }

// BookingService runs the booking flow: it validates passengers against the
// entry rules, computes the flat per-seat fare, and stages the resulting
// draft into the booking store for the payment step to commit.
type BookingService struct {
	trains   *repository.TrainRepo
	bookings *repository.BookingRepo
}

// NewBookingService wires the flow to the timetable and booking store.
func NewBookingService(trains *repository.TrainRepo, bookings *repository.BookingRepo) *BookingService {
	return &BookingService{trains: trains, bookings: bookings}
}

// ValidatePassengers checks the whole passenger set synchronously and
// returns one PassengerError per passenger plus an overall verdict.  A
// single invalid field anywhere blocks the submission; the annotations
// point at exactly the offending fields.  Rules: trimmed name of at least
// 3 characters, integer age 1..120, gender from the three-way enum.
func ValidatePassengers(passengers []model.Passenger) ([]PassengerError, bool) {
	errs := make([]PassengerError, len(passengers))
	ok := true
	for i, p := range passengers {
		name := strings.TrimSpace(p.Name)
		switch {
		case name == "":
			errs[i].Name = "Name is required"
		case len(name) < 3:
			errs[i].Name = "Name must be at least 3 characters"
		}
		if p.Age < 1 || p.Age > 120 {
			errs[i].Age = "Enter valid age (1-120)"
		}
		switch p.Gender {
		case model.GenderMale, model.GenderFemale, model.GenderOther:
		default:
			errs[i].Gender = "Gender is required"
		}
		if !errs[i].ok() {
			ok = false
		}
	}
	return errs, ok
}

// Fare computes the total for a class and passenger count.  Pricing is a
// flat per-seat multiplication: no discounts, no tax line items.
func Fare(class model.TrainClass, passengerCount int) int {
	return class.Fare * passengerCount
}

// Stage validates the selection and passenger set, computes the fare, and
// replaces the booking store's draft slot with the assembled draft.  On
// validation failure the per-passenger annotations are returned alongside
// the error and nothing is staged.  Passenger names are trimmed as they are
// staged.  Note that no seat-inventory check happens here or later: a
// class advertised with zero availability can still be staged and paid for.
func (s *BookingService) Stage(trainID, journeyDate, classCode string, passengers []model.Passenger) (model.BookingDraft, []PassengerError, error) {
	if len(passengers) < MinPassengers || len(passengers) > MaxPassengers {
		return model.BookingDraft{}, nil, ErrPassengerCount
	}
	train, ok := s.trains.Get(trainID)
	if !ok {
		return model.BookingDraft{}, nil, ErrTrainNotFound
	}
	class, ok := train.ClassByCode(classCode)
	if !ok {
		return model.BookingDraft{}, nil, ErrClassNotFound
	}
	if _, err := time.Parse("2006-01-02", journeyDate); err != nil {
		return model.BookingDraft{}, nil, ErrBadJourneyDate
	}
	if errs, valid := ValidatePassengers(passengers); !valid {
		return model.BookingDraft{}, errs, errors.New("invalid passenger details")
	}

	staged := make([]model.Passenger, len(passengers))
	for i, p := range passengers {
		staged[i] = model.Passenger{Name: strings.TrimSpace(p.Name), Age: p.Age, Gender: p.Gender}
	}
	draft := model.BookingDraft{
		TrainID:     train.ID,
		TrainNumber: train.Number,
		TrainName:   train.Name,
		Source:      train.Source,
		Destination: train.Destination,
		JourneyDate: journeyDate,
		ClassCode:   class.Code,
		ClassName:   class.Name,
		Passengers:  staged,
		TotalFare:   Fare(class, len(staged)),
	}
	s.bookings.SetDraft(&draft)
	return draft, nil, nil
}
