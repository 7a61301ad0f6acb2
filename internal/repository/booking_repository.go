package repository

import (
	"encoding/json"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/railway-ticket-reservation/internal/model"
	"github.com/iliyamo/railway-ticket-reservation/internal/storage"
	"github.com/iliyamo/railway-ticket-reservation/internal/utils"
)

// BookingRepo owns the full list of bookings plus the single draft slot the
// booking flow stages into between class selection and payment commit.  The
// whole list is serialized to the railway_bookings blob on every mutation;
// there is no partial persistence and no transactional rollback.
//
// All mutation goes through one mutex.  The reference implementation got
// away without one because its runtime was single-threaded; here the
// single-writer invariant has to be explicit since handlers run on
// concurrent goroutines.
type BookingRepo struct {
	mu       sync.Mutex
	store    storage.BlobStore
	ids      utils.IdentifierGenerator
	bookings []model.Booking
	draft    *model.BookingDraft
}

// NewBookingRepo loads the booking list from the store.  When no blob has
// ever been written the repo seeds itself with the two fixed demonstration
// bookings and persists them immediately.  A blob that exists but fails to
// parse is treated the same way: the corrupt value is discarded and the
// seeds take its place.  Silently dropping corrupted real data is an
// accepted demo simplification; a production port should surface it.
func NewBookingRepo(store storage.BlobStore, ids utils.IdentifierGenerator) *BookingRepo {
	r := &BookingRepo{store: store, ids: ids}
	b, err := store.Get(storage.KeyBookings)
	if err == nil {
		if jsonErr := json.Unmarshal(b, &r.bookings); jsonErr == nil {
			return r
		}
		log.Printf("bookings: stored blob failed to parse, reseeding")
	} else if err != storage.ErrNoBlob {
		log.Printf("bookings: load failed: %v; starting from seeds", err)
	}
	r.bookings = append([]model.Booking(nil), seedBookings...)
	r.persistLocked()
	return r
}

// persistLocked writes the whole list back to the blob store.  Callers must
// hold the mutex.  The add and cancel paths never fail, so a persistence
// error is logged rather than surfaced; the in-memory state stays
// authoritative for the rest of the process lifetime.
func (r *BookingRepo) persistLocked() {
	b, err := json.Marshal(r.bookings)
	if err != nil {
		log.Printf("bookings: marshal failed: %v", err)
		return
	}
	if err := r.store.Set(storage.KeyBookings, b); err != nil {
		log.Printf("bookings: persist failed: %v", err)
	}
}

// Add creates a confirmed booking from the draft fields: one generated seat
// per passenger, a fresh booking id and PNR, BookedAt set to now.  The new
// booking is prepended so the list stays most-recent-first.  This is the
// only path that creates a booking and it cannot fail: there is no capacity
// check against the class's advertised seats and no duplicate check on the
// generated identifiers.
func (r *BookingRepo) Add(draft model.BookingDraft) model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()

	seats := make([]string, len(draft.Passengers))
	for i := range draft.Passengers {
		seats[i] = r.ids.NewSeatNumber(draft.ClassCode)
	}
	booking := model.Booking{
		ID:          r.ids.NewBookingID(),
		PNR:         r.ids.NewPNR(),
		TrainID:     draft.TrainID,
		TrainNumber: draft.TrainNumber,
		TrainName:   draft.TrainName,
		Source:      draft.Source,
		Destination: draft.Destination,
		JourneyDate: draft.JourneyDate,
		ClassCode:   draft.ClassCode,
		ClassName:   draft.ClassName,
		Passengers:  draft.Passengers,
		TotalFare:   draft.TotalFare,
		Status:      model.StatusConfirmed,
		BookedAt:    time.Now().UTC().Format(time.RFC3339),
		SeatNumbers: seats,
	}
	r.bookings = append([]model.Booking{booking}, r.bookings...)
	r.persistLocked()
	return booking
}

// Cancel flips the booking's status to cancelled in place, leaving every
// other field untouched.  It reports whether the booking was found: a
// second cancel of the same id still returns true, and cancelling an
// unknown id returns false without mutating anything.  There is no
// reversal operation.
func (r *BookingRepo) Cancel(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			r.bookings[i].Status = model.StatusCancelled
			r.persistLocked()
			return true
		}
	}
	return false
}

// GetByID returns the booking with the given id.
func (r *BookingRepo) GetByID(id string) (model.Booking, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, true
		}
	}
	return model.Booking{}, false
}

// GetByPNR returns the booking with the given PNR.  The comparison is
// case-insensitive so tracking codes can be typed in either case.
func (r *BookingRepo) GetByPNR(pnr string) (model.Booking, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if strings.EqualFold(b.PNR, pnr) {
			return b, true
		}
	}
	return model.Booking{}, false
}

// List returns a copy of all bookings, most recent first.
func (r *BookingRepo) List() []model.Booking {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]model.Booking, len(r.bookings))
	copy(out, r.bookings)
	return out
}

// SetDraft replaces the draft slot.  There are no merging semantics: each
// call fully replaces whatever was staged before.
func (r *BookingRepo) SetDraft(d *model.BookingDraft) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draft = d
}

// Draft returns the currently staged draft, or nil when none is staged.
func (r *BookingRepo) Draft() *model.BookingDraft {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.draft == nil {
		return nil
	}
	d := *r.draft
	return &d
}

// ClearDraft empties the draft slot.
func (r *BookingRepo) ClearDraft() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.draft = nil
}
