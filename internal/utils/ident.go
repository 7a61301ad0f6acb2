package utils // package utils provides identifier generation and token helpers

import (
	"fmt"
	"math/rand"
	"time"
)

// IdentifierGenerator produces booking identifiers, PNR codes and seat
// labels.  Implementations must be pure with respect to external state: a
// value is derived from randomness and time alone, with no lookup against
// existing bookings.  That fire-and-forget contract is what keeps the
// booking store's add path infallible; a hardened implementation with real
// uniqueness guarantees can be swapped in behind this interface, but doing
// so is a deliberate behavior change, not a bug fix.
type IdentifierGenerator interface {
	NewBookingID() string
	NewPNR() string
	NewSeatNumber(classCode string) string
}

// pnrChars is the alphabet PNR codes are drawn from, one independent
// uniform draw per character.
const pnrChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// WeakGenerator is the default IdentifierGenerator.  It mirrors the
// reference scheme exactly: identifiers are weak random/time draws with no
// collision checks.  Two bookings created in the same millisecond with the
// same random draw collide, and duplicate seat labels across bookings are
// possible and unguarded.
type WeakGenerator struct {
	rng *rand.Rand
}

// NewWeakGenerator returns a generator seeded from the wall clock.
func NewWeakGenerator() *WeakGenerator {
	return &WeakGenerator{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// NewBookingID returns "BK" + current epoch milliseconds + a random integer
// in [0,1000).  The random part is not zero padded.
func (g *WeakGenerator) NewBookingID() string {
	return fmt.Sprintf("BK%d%d", time.Now().UnixMilli(), g.rng.Intn(1000))
}

// NewPNR returns a 10 character code drawn uniformly from A-Z and 0-9.
func (g *WeakGenerator) NewPNR() string {
	b := make([]byte, 10)
	for i := range b {
		b[i] = pnrChars[g.rng.Intn(len(pnrChars))]
	}
	return string(b)
}

// NewSeatNumber returns "{classCode}{coach}-{seat}" where coach is a random
// letter A-H and seat is a random integer in [1,72].
func (g *WeakGenerator) NewSeatNumber(classCode string) string {
	coach := byte('A' + g.rng.Intn(8))
	seat := g.rng.Intn(72) + 1
	return fmt.Sprintf("%s%c-%d", classCode, coach, seat)
}
