package repository

import (
	"strings"

	"github.com/iliyamo/railway-ticket-reservation/internal/model"
)

// TrainRepo serves the static timetable and station directory.  The data is
// reference data: it is fixed at construction and read-only for the lifetime
// of the process, so no locking is needed.
type TrainRepo struct {
	stations []model.Station
	trains   []model.Train
}

// NewTrainRepo returns a repository over the built-in demonstration dataset.
func NewTrainRepo() *TrainRepo {
	return &TrainRepo{stations: stations, trains: trains}
}

// Stations returns the full station directory.
func (r *TrainRepo) Stations() []model.Station { return r.stations }

// All returns every train in the timetable.
func (r *TrainRepo) All() []model.Train { return r.trains }

// Get returns the train with the given id, or false when absent.
func (r *TrainRepo) Get(id string) (model.Train, bool) {
	for _, t := range r.trains {
		if t.ID == id {
			return t, true
		}
	}
	return model.Train{}, false
}

// StationName resolves a station code to its display name.  Unknown codes
// resolve to themselves so callers can render whatever they were given.
func (r *TrainRepo) StationName(code string) string {
	for _, s := range r.stations {
		if s.Code == code {
			return s.Name
		}
	}
	return code
}

// Search returns every train whose source matches the source query OR whose
// destination matches the destination query.  A query matches on exact
// station code (case-insensitive) or on a case-insensitive substring of the
// station's display name.  The conditions are a union, not a conjunction: a
// train matching only on destination is returned even when its source is
// unrelated.  That looseness is long-standing observed behavior; switching
// to an AND of both conditions would be a product change, not a bug fix.
// An optional classCode restricts results to trains offering that class.
func (r *TrainRepo) Search(source, destination, classCode string) []model.Train {
	src := strings.ToLower(source)
	dst := strings.ToLower(destination)
	out := make([]model.Train, 0)
	for _, t := range r.trains {
		match := strings.ToLower(t.Source) == src ||
			strings.ToLower(t.Destination) == dst ||
			strings.Contains(strings.ToLower(r.StationName(t.Source)), src) ||
			strings.Contains(strings.ToLower(r.StationName(t.Destination)), dst)
		if !match {
			continue
		}
		if classCode != "" {
			if _, ok := t.ClassByCode(classCode); !ok {
				continue
			}
		}
		out = append(out, t)
	}
	return out
}
