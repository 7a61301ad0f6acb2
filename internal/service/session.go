// Package service implements the business workflows on top of the
// repositories: the session state machine, the booking flow with its
// passenger validation and fare computation, and the payment simulation
// that commits drafts into confirmed bookings.
package service

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/iliyamo/railway-ticket-reservation/internal/model"
	"github.com/iliyamo/railway-ticket-reservation/internal/repository"
)

// ErrInvalidCredentials is returned by Login when the email or password is
// empty or the email is not well formed.  It is the only way login can
// fail: the password is never checked against anything, because there is no
// account database behind this demo.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrNotLoggedIn is returned by operations that require a LoggedIn session.
var ErrNotLoggedIn = errors.New("not logged in")

// emailRe is the well-formedness check login applies to the email.  Any
// address that passes it is accepted.
var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// fixedMobile is the placeholder contact number attached to users
// synthesized at login.
const fixedMobile = "9876543210"

// SessionService is the two-state session machine: LoggedOut (user == nil)
// and LoggedIn.  At most one profile is held at a time; login and register
// replace it wholesale and logout clears it.  Every change while LoggedIn
// is persisted through the session repo.
type SessionService struct {
	mu    sync.Mutex
	repo  *repository.SessionRepo
	delay time.Duration
	user  *model.User
}

// NewSessionService restores the persisted session, if any, and returns the
// service.  The delay is the simulated network latency applied to login and
// register; tests pass zero.
func NewSessionService(repo *repository.SessionRepo, delay time.Duration) *SessionService {
	s := &SessionService{repo: repo, delay: delay}
	if u, ok := repo.Load(); ok {
		s.user = &u
	}
	return s
}

// Login validates the inputs, waits out the simulated latency, and then
// always succeeds: the profile is synthesized from the email's local part
// and the password is discarded unchecked.  The new session replaces any
// existing one and is persisted with isAdmin reset to false.
func (s *SessionService) Login(email, password string) (model.User, error) {
	if email == "" || password == "" {
		return model.User{}, ErrInvalidCredentials
	}
	if !emailRe.MatchString(email) {
		return model.User{}, ErrInvalidCredentials
	}
	time.Sleep(s.delay) // simulated network round trip

	u := model.User{
		ID:       fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		FullName: fullNameFromEmail(email),
		Email:    email,
		Mobile:   fixedMobile,
		IsAdmin:  false,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	s.repo.Save(u)
	return u, nil
}

// Register waits out the simulated latency and always succeeds, creating a
// fresh user from the submitted fields.  The password is accepted and then
// dropped: nothing ever stores or verifies it.
func (s *SessionService) Register(fullName, email, mobile, _password string) (model.User, error) {
	time.Sleep(s.delay) // simulated network round trip

	u := model.User{
		ID:       fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		FullName: fullName,
		Email:    email,
		Mobile:   mobile,
		IsAdmin:  false,
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	s.repo.Save(u)
	return u, nil
}

// Logout transitions to LoggedOut and removes the persisted session blob.
// Logging out while already logged out is a no-op.
func (s *SessionService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	s.repo.Clear()
}

// ToggleAdminMode flips the isAdmin flag in place and persists it.  The
// flag only gates the admin view on the client; it is not an authorization
// boundary and any logged-in user may flip it.  ErrNotLoggedIn is returned
// while LoggedOut.
func (s *SessionService) ToggleAdminMode() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return false, ErrNotLoggedIn
	}
	s.user.IsAdmin = !s.user.IsAdmin
	s.repo.Save(*s.user)
	return s.user.IsAdmin, nil
}

// Current returns the logged-in user, or false while LoggedOut.
func (s *SessionService) Current() (model.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return model.User{}, false
	}
	return *s.user, true
}

// fullNameFromEmail derives a display name from the address's local part:
// dots and underscores become spaces and the first letter of each word is
// upper-cased ("jane.doe@x.com" -> "Jane Doe").
func fullNameFromEmail(email string) string {
	local := email
	if at := strings.IndexByte(email, '@'); at >= 0 {
		local = email[:at]
	}
	local = strings.NewReplacer(".", " ", "_", " ").Replace(local)

	b := []byte(local)
	prevWord := false
	for i, c := range b {
		isWord := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
		if isWord && !prevWord && c >= 'a' && c <= 'z' {
			b[i] = c - 'a' + 'A'
		}
		prevWord = isWord
	}
	return string(b)
}
