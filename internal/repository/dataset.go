package repository

import "github.com/iliyamo/railway-ticket-reservation/internal/model"

// Demonstration reference data.  Values are carried over verbatim from the
// original dataset, quirks included (the trailing space in the Ilkal station
// name is part of the data).

var stations = []model.Station{
	{Code: "ILKL", Name: "Ilkal ", City: "Ilkal"},
	{Code: "SBC", Name: "Bengaluru City Junction", City: "Bengaluru"},
	{Code: "BGM", Name: "Belagavi Junction", City: "Belagavi"},
	{Code: "UBL", Name: "Hubballi Junction", City: "Hubballi"},
	{Code: "BGK", Name: "Bagalkot", City: "Bagalkot"},
	{Code: "BJP", Name: "Bijapur (Vijayapura)", City: "Vijayapura"},
}

var trains = []model.Train{
	{
		ID:              "1",
		Number:          "12301",
		Name:            "ILKAL Express",
		Source:          "ILKL",
		Destination:     "SBC",
		DepartureTime:   "16:55",
		ArrivalTime:     "09:55",
		Duration:        "17h 00m",
		DaysOfOperation: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Classes: []model.TrainClass{
			{Code: "1A", Name: "First AC", Fare: 4500, AvailableSeats: 18, TotalSeats: 24},
			{Code: "2A", Name: "Second AC", Fare: 2800, AvailableSeats: 42, TotalSeats: 52},
			{Code: "3A", Name: "Third AC", Fare: 1950, AvailableSeats: 65, TotalSeats: 72},
		},
	},
	{
		ID:              "2",
		Number:          "12951",
		Name:            "KUNDANAGAR EXPRESSSS",
		Source:          "BGM",
		Destination:     "UBL",
		DepartureTime:   "16:35",
		ArrivalTime:     "08:35",
		Duration:        "16h 00m",
		DaysOfOperation: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Classes: []model.TrainClass{
			{Code: "1A", Name: "First AC", Fare: 4200, AvailableSeats: 12, TotalSeats: 24},
			{Code: "2A", Name: "Second AC", Fare: 2500, AvailableSeats: 38, TotalSeats: 52},
			{Code: "3A", Name: "Third AC", Fare: 1750, AvailableSeats: 58, TotalSeats: 72},
		},
	},
	{
		ID:              "3",
		Number:          "12259",
		Name:            "HUBBBLI EXPRESS",
		Source:          "UBL",
		Destination:     "BGK",
		DepartureTime:   "20:05",
		ArrivalTime:     "11:50",
		Duration:        "15h 45m",
		DaysOfOperation: []string{"Mon", "Wed", "Fri"},
		Classes: []model.TrainClass{
			{Code: "1A", Name: "First AC", Fare: 4800, AvailableSeats: 6, TotalSeats: 18},
			{Code: "2A", Name: "Second AC", Fare: 3000, AvailableSeats: 24, TotalSeats: 46},
			{Code: "3A", Name: "Third AC", Fare: 2100, AvailableSeats: 45, TotalSeats: 64},
			{Code: "SL", Name: "Sleeper", Fare: 850, AvailableSeats: 120, TotalSeats: 180},
		},
	},
	{
		ID:              "4",
		Number:          "12621",
		Name:            "BIJAPUR EXPRESSS",
		Source:          "BGK",
		Destination:     "BJP",
		DepartureTime:   "22:30",
		ArrivalTime:     "07:10",
		Duration:        "32h 40m",
		DaysOfOperation: []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"},
		Classes: []model.TrainClass{
			{Code: "1A", Name: "First AC", Fare: 5200, AvailableSeats: 14, TotalSeats: 24},
			{Code: "2A", Name: "Second AC", Fare: 3200, AvailableSeats: 36, TotalSeats: 52},
			{Code: "3A", Name: "Third AC", Fare: 2250, AvailableSeats: 52, TotalSeats: 72},
			{Code: "SL", Name: "Sleeper", Fare: 950, AvailableSeats: 180, TotalSeats: 240},
		},
	},
}

// seedBookings are the two fixed demonstration bookings the booking store
// initializes itself with when no stored blob exists (or when the stored
// blob fails to parse).
var seedBookings = []model.Booking{
	{
		ID:          "BK1704067200001",
		PNR:         "PNR1234567890",
		TrainID:     "1",
		TrainNumber: "12301",
		TrainName:   "Rajdhani Express",
		Source:      "NDLS",
		Destination: "HWH",
		JourneyDate: "2025-01-15",
		ClassCode:   "2A",
		ClassName:   "Second AC",
		Passengers: []model.Passenger{
			{Name: "Rahul Sharma", Age: 28, Gender: model.GenderMale},
			{Name: "Priya Sharma", Age: 26, Gender: model.GenderFemale},
		},
		TotalFare:   5600,
		Status:      model.StatusConfirmed,
		BookedAt:    "2025-01-05T10:30:00Z",
		SeatNumbers: []string{"2AA-15", "2AA-16"},
	},
	{
		ID:          "BK1704067200002",
		PNR:         "PNR0987654321",
		TrainID:     "4",
		TrainNumber: "12621",
		TrainName:   "Tamil Nadu Express",
		Source:      "NDLS",
		Destination: "MAS",
		JourneyDate: "2025-01-20",
		ClassCode:   "3A",
		ClassName:   "Third AC",
		Passengers: []model.Passenger{
			{Name: "Amit Kumar", Age: 35, Gender: model.GenderMale},
		},
		TotalFare:   2250,
		Status:      model.StatusConfirmed,
		BookedAt:    "2025-01-04T14:45:00Z",
		SeatNumbers: []string{"3AB-42"},
	},
}
