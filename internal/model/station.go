package model

// Station is a single entry in the static station directory.  Stations are
// reference data: the set is fixed for the lifetime of the process and no
// operation ever mutates it.
//
// Fields:
//  Code – unique station code (e.g. "SBC").
//  Name – full display name of the station.
//  City – city the station serves.
type Station struct {
	Code string `json:"code"` // unique station code
	Name string `json:"name"` // station display name
	City string `json:"city"` // city served by the station
}
