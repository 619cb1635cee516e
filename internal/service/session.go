package service

import (
	"sort"
	"sync"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// SelectionSession mediates the seat-picking state machine for exactly
// one open booking dialog.  It is either CLOSED (no active showtime) or
// OPEN with a requested ticket count and a set of tentatively selected
// seats.  Opening resets the count to 1 and the selection to empty;
// closing or a successful confirmation discards the state without
// touching the ledger.
//
// Invariants held while OPEN: every selected seat belongs to the active
// showtime and was free in the ledger at selection time, and the number
// of selected seats never exceeds the requested count.
type SelectionSession struct {
	mu      sync.Mutex
	catalog *repository.CatalogRepo
	ledger  *repository.BookingLedger
	grid    model.Grid

	active    *model.Showtime // nil while CLOSED
	requested int
	selected  map[model.SeatID]struct{}
}

// Snapshot is an immutable view of the session for rendering.  Seat
// labels are sorted in row-major order so re-renders are stable.
type Snapshot struct {
	Open           bool     `json:"open"`
	ShowtimeID     string   `json:"showtime_id,omitempty"`
	RequestedCount int      `json:"requested_count"`
	SelectedSeats  []string `json:"selected_seats"`
	CanConfirm     bool     `json:"can_confirm"`
	TotalPrice     float64  `json:"total_price"`
}

// NewSelectionSession constructs a CLOSED session over the given catalog
// and ledger.
func NewSelectionSession(catalog *repository.CatalogRepo, ledger *repository.BookingLedger, grid model.Grid) *SelectionSession {
	return &SelectionSession{
		catalog:  catalog,
		ledger:   ledger,
		grid:     grid,
		selected: make(map[model.SeatID]struct{}),
	}
}

// Open activates the session for the given showtime.  The selection is
// reset to empty and the requested count to 1 even when the session was
// already open for another showtime.  Unknown ids leave the session
// CLOSED and return repository.ErrShowtimeNotFound.
func (s *SelectionSession) Open(showtimeID string) error {
	st, err := s.catalog.FindShowtimeByID(showtimeID)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = &st
	s.requested = 1
	s.selected = make(map[model.SeatID]struct{})
	return nil
}

// Close discards all session state.  Closing a CLOSED session is a
// no-op.  The ledger is never touched; Close is the only abort path.
func (s *SelectionSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closeLocked()
}

func (s *SelectionSession) closeLocked() {
	s.active = nil
	s.requested = 0
	s.selected = make(map[model.SeatID]struct{})
}

// ToggleSeat flips the selection state of one seat.  A selected seat is
// always removed.  An unselected seat is added unless it does not belong
// to the active showtime's sellable grid, is already sold, or the
// selection already matches the requested ticket count.
func (s *SelectionSession) ToggleSeat(seat model.SeatID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return ErrSessionClosed
	}
	if _, ok := s.selected[seat]; ok {
		delete(s.selected, seat)
		return nil
	}
	if seat.ShowtimeID != s.active.ID || !s.grid.Contains(seat.Label, s.active.Capacity) {
		return ErrInvalidSeat
	}
	if s.ledger.Contains(seat) {
		return ErrInvalidSeat
	}
	if len(s.selected) >= s.requested {
		return ErrSelectionLimitReached
	}
	s.selected[seat] = struct{}{}
	return nil
}

// SetRequestedCount changes the number of tickets the user wants.  A
// count below one is rejected.  Lowering the count below the current
// selection size does not trim the selection; the confirm gate simply
// stays blocked until the user deselects seats.
func (s *SelectionSession) SetRequestedCount(n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return ErrSessionClosed
	}
	if n < 1 {
		return ErrInvalidTicketCount
	}
	s.requested = n
	return nil
}

// CanConfirm reports whether the selection is ready to be confirmed:
// the session is open and the number of selected seats equals the
// requested ticket count.  This boolean is the sole driver of the
// confirm control in the presentation layer and must be re-read after
// every toggle and count change.
func (s *SelectionSession) CanConfirm() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.canConfirmLocked()
}

func (s *SelectionSession) canConfirmLocked() bool {
	return s.active != nil && s.requested >= 1 && len(s.selected) == s.requested
}

// TotalPrice returns the selection size times the active showtime's
// ticket price.  It is defined even when CanConfirm is false, for live
// preview, and is zero while CLOSED.
func (s *SelectionSession) TotalPrice() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.totalPriceLocked()
}

func (s *SelectionSession) totalPriceLocked() float64 {
	if s.active == nil {
		return 0
	}
	return float64(len(s.selected)) * s.active.TicketPrice
}

// Snapshot returns the current session state for rendering.
func (s *SelectionSession) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := Snapshot{
		Open:           s.active != nil,
		RequestedCount: s.requested,
		SelectedSeats:  sortedLabels(s.selected),
		CanConfirm:     s.canConfirmLocked(),
		TotalPrice:     s.totalPriceLocked(),
	}
	if s.active != nil {
		snap.ShowtimeID = s.active.ID
	}
	return snap
}

// sortedLabels orders seat labels by row letter and then by numeric seat
// number, i.e. row-major order rather than lexicographic ("A2" before
// "A10").
func sortedLabels(seats map[model.SeatID]struct{}) []string {
	labels := make([]string, 0, len(seats))
	for s := range seats {
		labels = append(labels, s.Label)
	}
	sort.Slice(labels, func(i, j int) bool {
		ri, ni, errI := model.ParseSeatLabel(labels[i])
		rj, nj, errJ := model.ParseSeatLabel(labels[j])
		if errI != nil || errJ != nil {
			return labels[i] < labels[j]
		}
		if ri != rj {
			return ri < rj
		}
		return ni < nj
	})
	return labels
}
