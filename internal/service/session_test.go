package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

func newTestSession() (*SelectionSession, *repository.BookingLedger) {
	ledger := repository.NewBookingLedger()
	catalog := repository.NewCatalogRepo(repository.SeedMovies(), ledger)
	grid := model.Grid{Rows: 15, SeatsPerRow: 10}
	return NewSelectionSession(catalog, ledger, grid), ledger
}

func seat(showtimeID, label string) model.SeatID {
	return model.SeatID{ShowtimeID: showtimeID, Label: label}
}

func TestSessionOpenResetsState(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.Open("st1"))
	require.NoError(t, s.SetRequestedCount(3))
	require.NoError(t, s.ToggleSeat(seat("st1", "A1")))

	// Re-opening, even for another showtime, starts from scratch.
	require.NoError(t, s.Open("st2"))
	snap := s.Snapshot()
	assert.True(t, snap.Open)
	assert.Equal(t, "st2", snap.ShowtimeID)
	assert.Equal(t, 1, snap.RequestedCount)
	assert.Empty(t, snap.SelectedSeats)
}

func TestSessionOpenUnknownShowtime(t *testing.T) {
	s, _ := newTestSession()
	err := s.Open("unknown-id")
	assert.ErrorIs(t, err, repository.ErrShowtimeNotFound)

	// The session must remain closed after a failed open.
	snap := s.Snapshot()
	assert.False(t, snap.Open)
	assert.False(t, snap.CanConfirm)
}

func TestSessionToggleIsItsOwnInverse(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.Open("st1"))

	require.NoError(t, s.ToggleSeat(seat("st1", "A1")))
	assert.Equal(t, []string{"A1"}, s.Snapshot().SelectedSeats)

	require.NoError(t, s.ToggleSeat(seat("st1", "A1")))
	assert.Empty(t, s.Snapshot().SelectedSeats)
}

func TestSessionToggleRejectsForeignAndBookedSeats(t *testing.T) {
	s, ledger := newTestSession()
	require.NoError(t, s.Open("st1"))

	// Seat from another showtime.
	assert.ErrorIs(t, s.ToggleSeat(seat("st2", "A1")), ErrInvalidSeat)

	// Seat outside the sellable grid (st1 has capacity 100 on a 15x10 grid).
	assert.ErrorIs(t, s.ToggleSeat(seat("st1", "K1")), ErrInvalidSeat)
	assert.ErrorIs(t, s.ToggleSeat(seat("st1", "A11")), ErrInvalidSeat)

	// Seat already sold.
	ledger.CommitAll([]model.SeatID{seat("st1", "A1")})
	assert.ErrorIs(t, s.ToggleSeat(seat("st1", "A1")), ErrInvalidSeat)

	assert.Empty(t, s.Snapshot().SelectedSeats)
}

func TestSessionSelectionLimit(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.Open("st1"))
	require.NoError(t, s.SetRequestedCount(2))
	require.NoError(t, s.ToggleSeat(seat("st1", "A1")))
	require.NoError(t, s.ToggleSeat(seat("st1", "A2")))

	err := s.ToggleSeat(seat("st1", "A3"))
	assert.ErrorIs(t, err, ErrSelectionLimitReached)
	// The failed toggle must leave the selection unchanged.
	assert.Equal(t, []string{"A1", "A2"}, s.Snapshot().SelectedSeats)

	// Deselecting still works at the limit.
	require.NoError(t, s.ToggleSeat(seat("st1", "A2")))
	assert.Equal(t, []string{"A1"}, s.Snapshot().SelectedSeats)
}

func TestSessionSetRequestedCount(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.Open("st1"))

	assert.ErrorIs(t, s.SetRequestedCount(0), ErrInvalidTicketCount)
	assert.ErrorIs(t, s.SetRequestedCount(-3), ErrInvalidTicketCount)
	require.NoError(t, s.SetRequestedCount(4))
	assert.Equal(t, 4, s.Snapshot().RequestedCount)
}

func TestSessionLoweringCountDoesNotTrimSelection(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.Open("st1"))
	require.NoError(t, s.SetRequestedCount(2))
	require.NoError(t, s.ToggleSeat(seat("st1", "A1")))
	require.NoError(t, s.ToggleSeat(seat("st1", "A2")))
	assert.True(t, s.CanConfirm())

	// Lowering the count keeps both seats selected but blocks confirm.
	require.NoError(t, s.SetRequestedCount(1))
	snap := s.Snapshot()
	assert.Equal(t, []string{"A1", "A2"}, snap.SelectedSeats)
	assert.False(t, snap.CanConfirm)
}

func TestSessionCanConfirm(t *testing.T) {
	s, _ := newTestSession()
	assert.False(t, s.CanConfirm()) // closed

	require.NoError(t, s.Open("st1"))
	assert.False(t, s.CanConfirm()) // 0 selected of 1 requested

	require.NoError(t, s.SetRequestedCount(2))
	require.NoError(t, s.ToggleSeat(seat("st1", "A1")))
	assert.False(t, s.CanConfirm()) // 1 of 2

	require.NoError(t, s.ToggleSeat(seat("st1", "A2")))
	assert.True(t, s.CanConfirm()) // 2 of 2
}

func TestSessionTotalPrice(t *testing.T) {
	s, _ := newTestSession()
	assert.Equal(t, 0.0, s.TotalPrice()) // closed

	require.NoError(t, s.Open("st1")) // st1 costs 12.50
	require.NoError(t, s.SetRequestedCount(2))
	require.NoError(t, s.ToggleSeat(seat("st1", "A1")))
	// Defined even while the selection is incomplete, for live preview.
	assert.Equal(t, 12.50, s.TotalPrice())

	require.NoError(t, s.ToggleSeat(seat("st1", "A2")))
	assert.Equal(t, 25.00, s.TotalPrice())
}

func TestSessionSnapshotSortsRowMajor(t *testing.T) {
	s, _ := newTestSession()
	require.NoError(t, s.Open("st1"))
	require.NoError(t, s.SetRequestedCount(3))
	require.NoError(t, s.ToggleSeat(seat("st1", "A10")))
	require.NoError(t, s.ToggleSeat(seat("st1", "A2")))
	require.NoError(t, s.ToggleSeat(seat("st1", "B1")))

	// "A2" sorts before "A10" numerically, not lexicographically.
	assert.Equal(t, []string{"A2", "A10", "B1"}, s.Snapshot().SelectedSeats)
}

func TestSessionCommandsRequireOpenSession(t *testing.T) {
	s, _ := newTestSession()
	assert.ErrorIs(t, s.ToggleSeat(seat("st1", "A1")), ErrSessionClosed)
	assert.ErrorIs(t, s.SetRequestedCount(2), ErrSessionClosed)
	s.Close() // closing a closed session is a no-op
}
