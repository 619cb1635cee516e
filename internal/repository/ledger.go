package repository // repository for the in-memory booked seat ledger

import (
	"sync"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// BookingLedger is the authoritative record of which seats have been
// sold.  It is the single source of truth for seat availability and is
// shared by reference between the catalog, the selection session and the
// booking service for the lifetime of the process.  The set only grows;
// there is no cancellation path.  A mutex guards the set because the
// HTTP facade serves requests concurrently.
type BookingLedger struct {
	mu     sync.Mutex
	booked map[model.SeatID]struct{}
}

// NewBookingLedger constructs an empty ledger.
func NewBookingLedger() *BookingLedger {
	return &BookingLedger{booked: make(map[model.SeatID]struct{})}
}

// Contains reports whether the seat has already been sold.
func (l *BookingLedger) Contains(seat model.SeatID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.booked[seat]
	return ok
}

// CommitAll inserts every seat into the ledger.  Re-inserting a seat
// that is already booked is a no-op, not an error, so the operation is
// idempotent.  Insertion cannot fail, which is why the ledger needs no
// transactional rollback.
func (l *BookingLedger) CommitAll(seats []model.SeatID) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range seats {
		l.booked[s] = struct{}{}
	}
}

// Reserve re-checks that every seat is still free and inserts all of
// them inside a single critical section.  This is the designated
// compare-and-commit point that preserves the no-double-booking
// invariant when confirmations race.  When any seat is already sold the
// whole call fails with a SeatAlreadyBookedError naming the first
// conflict, and no seat is inserted.
func (l *BookingLedger) Reserve(seats []model.SeatID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, s := range seats {
		if _, ok := l.booked[s]; ok {
			return &SeatAlreadyBookedError{Seat: s}
		}
	}
	for _, s := range seats {
		l.booked[s] = struct{}{}
	}
	return nil
}

// CountForShowtime returns how many seats have been sold for the given
// showtime.
func (l *BookingLedger) CountForShowtime(showtimeID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for s := range l.booked {
		if s.ShowtimeID == showtimeID {
			n++
		}
	}
	return n
}
