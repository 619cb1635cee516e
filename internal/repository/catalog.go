package repository // repository for the read-only movie catalog

import (
	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// CatalogRepo holds the static list of movies and their showtimes.  The
// catalog is loaded once at startup and read-only afterwards, so no
// locking is needed.  It keeps a reference to the booking ledger in
// order to answer availability queries; the ledger is passed in at
// construction time rather than reached through package state so the
// single shared instance is explicit.
type CatalogRepo struct {
	movies []model.Movie
	byID   map[string]model.Showtime
	movie  map[string]model.Movie // showtime id -> owning movie
	ledger *BookingLedger
}

// NewCatalogRepo indexes the given movies by showtime id and wires the
// shared ledger.
func NewCatalogRepo(movies []model.Movie, ledger *BookingLedger) *CatalogRepo {
	r := &CatalogRepo{
		movies: movies,
		byID:   make(map[string]model.Showtime),
		movie:  make(map[string]model.Movie),
		ledger: ledger,
	}
	for _, m := range movies {
		for _, st := range m.Showtimes {
			r.byID[st.ID] = st
			r.movie[st.ID] = m
		}
	}
	return r
}

// Movies returns all movies with their showtimes in catalog order.
func (r *CatalogRepo) Movies() []model.Movie {
	return r.movies
}

// FindShowtimeByID resolves a showtime id.  Unknown ids yield
// ErrShowtimeNotFound rather than a panic, since callers must treat "no
// such showtime" as a normal, displayable condition.
func (r *CatalogRepo) FindShowtimeByID(id string) (model.Showtime, error) {
	st, ok := r.byID[id]
	if !ok {
		return model.Showtime{}, ErrShowtimeNotFound
	}
	return st, nil
}

// MovieForShowtime returns the movie that owns the given showtime, used
// for titles in listings and events.
func (r *CatalogRepo) MovieForShowtime(id string) (model.Movie, error) {
	m, ok := r.movie[id]
	if !ok {
		return model.Movie{}, ErrShowtimeNotFound
	}
	return m, nil
}

// AvailableSeatCount returns the showtime's capacity minus the number of
// seats already sold for it, floored at zero.  Unknown showtimes report
// zero availability.
func (r *CatalogRepo) AvailableSeatCount(showtimeID string) int {
	st, ok := r.byID[showtimeID]
	if !ok {
		return 0
	}
	available := st.Capacity - r.ledger.CountForShowtime(showtimeID)
	if available < 0 {
		return 0
	}
	return available
}
