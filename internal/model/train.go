package model

// TrainClass describes one fare class offered on a train (e.g. First AC,
// Sleeper).  AvailableSeats and TotalSeats are display-only capacity
// figures: nothing in the booking lifecycle decrements them, and no
// operation re-validates them against bookings actually made.  The only
// invariant is 0 <= AvailableSeats <= TotalSeats in the reference data.
//
// Fields:
//  Code           – short class code (e.g. "2A").
//  Name           – human readable class name (e.g. "Second AC").
//  Fare           – flat per-seat fare in rupees.
//  AvailableSeats – advertised free seats (never decremented).
//  TotalSeats     – advertised capacity of the class.
type TrainClass struct {
	Code           string `json:"code"`           // class code
	Name           string `json:"name"`           // class display name
	Fare           int    `json:"fare"`           // per-seat fare
	AvailableSeats int    `json:"availableSeats"` // advertised availability
	TotalSeats     int    `json:"totalSeats"`     // advertised capacity
}

// Train is a single service in the static timetable.  Classes is always
// non-empty.  Source and Destination are expected to differ but that is not
// enforced at this layer; the search handler rejects identical stations on
// input instead.
//
// Fields:
//  ID              – unique train identifier within the dataset.
//  Number          – public train number (e.g. "12301").
//  Name            – train display name.
//  Source          – station code the train departs from.
//  Destination     – station code the train arrives at.
//  DepartureTime   – departure as "HH:MM".
//  ArrivalTime     – arrival as "HH:MM".
//  Duration        – journey duration as a display string.
//  DaysOfOperation – weekday abbreviations the train runs on.
//  Classes         – fare classes offered on this train.
type Train struct {
	ID              string       `json:"id"`              // dataset identifier
	Number          string       `json:"number"`          // public train number
	Name            string       `json:"name"`            // train name
	Source          string       `json:"source"`          // source station code
	Destination     string       `json:"destination"`     // destination station code
	DepartureTime   string       `json:"departureTime"`   // "HH:MM"
	ArrivalTime     string       `json:"arrivalTime"`     // "HH:MM"
	Duration        string       `json:"duration"`        // display duration
	DaysOfOperation []string     `json:"daysOfOperation"` // operating days
	Classes         []TrainClass `json:"classes"`         // offered classes (non-empty)
}

// ClassByCode returns the fare class with the given code, or false when the
// train does not offer it.
func (t Train) ClassByCode(code string) (TrainClass, bool) {
	for _, c := range t.Classes {
		if c.Code == code {
			return c, true
		}
	}
	return TrainClass{}, false
}
