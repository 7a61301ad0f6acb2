package repository

import (
	"encoding/json"
	"log"

	"github.com/iliyamo/railway-ticket-reservation/internal/model"
	"github.com/iliyamo/railway-ticket-reservation/internal/storage"
)

// SessionRepo persists the at-most-one logged-in user profile to the
// railway_user blob.  The service layer owns the state machine; this repo
// only loads, saves and clears the blob.
type SessionRepo struct {
	store storage.BlobStore
}

// NewSessionRepo returns a repo over the given blob store.
func NewSessionRepo(store storage.BlobStore) *SessionRepo {
	return &SessionRepo{store: store}
}

// Load returns the persisted user, or false when no session is stored.  A
// blob that exists but fails to parse is deleted and reported as absent, so
// a corrupt session degrades to logged-out rather than an error.
func (r *SessionRepo) Load() (model.User, bool) {
	b, err := r.store.Get(storage.KeySession)
	if err != nil {
		if err != storage.ErrNoBlob {
			log.Printf("session: load failed: %v", err)
		}
		return model.User{}, false
	}
	var u model.User
	if err := json.Unmarshal(b, &u); err != nil {
		log.Printf("session: stored blob failed to parse, clearing")
		_ = r.store.Delete(storage.KeySession)
		return model.User{}, false
	}
	return u, true
}

// Save serializes the full user (including the IsAdmin flag) under the
// fixed session key, replacing whatever was stored before.
func (r *SessionRepo) Save(u model.User) {
	b, err := json.Marshal(u)
	if err != nil {
		log.Printf("session: marshal failed: %v", err)
		return
	}
	if err := r.store.Set(storage.KeySession, b); err != nil {
		log.Printf("session: persist failed: %v", err)
	}
}

// Clear removes the persisted session blob.
func (r *SessionRepo) Clear() {
	if err := r.store.Delete(storage.KeySession); err != nil {
		log.Printf("session: clear failed: %v", err)
	}
}
