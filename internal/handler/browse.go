// Package handler exposes the HTTP boundary of the booking core.  This
// file defines the read-only browse endpoints: the movie listing with
// live availability and the per-showtime seat map.  These routes carry
// no session state and are safe to cache briefly.
package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/service"
)

// BrowseHandler aggregates the read side: catalog and ledger for
// availability, plus the session so the seat map can mark tentatively
// selected seats.
type BrowseHandler struct {
	Catalog *repository.CatalogRepo
	Ledger  *repository.BookingLedger
	Session *service.SelectionSession
	Grid    model.Grid
}

// NewBrowseHandler constructs a BrowseHandler.  All dependencies must be
// non-nil.
func NewBrowseHandler(catalog *repository.CatalogRepo, ledger *repository.BookingLedger, session *service.SelectionSession, grid model.Grid) *BrowseHandler {
	if catalog == nil || ledger == nil || session == nil {
		panic("nil dependency passed to NewBrowseHandler")
	}
	return &BrowseHandler{Catalog: catalog, Ledger: ledger, Session: session, Grid: grid}
}

// ShowtimeView is one showtime in list and detail responses, with the
// live available seat count alongside the static fields.
type ShowtimeView struct {
	ID             string  `json:"id"`
	TicketPrice    float64 `json:"ticket_price"`
	Capacity       int     `json:"capacity"`
	TheaterName    string  `json:"theater_name"`
	AvailableSeats int     `json:"available_seats"`
}

// MovieView is one movie in the listing, carrying its showtimes and a
// pre-formatted duration for display.
type MovieView struct {
	Title        string         `json:"title"`
	Duration     int            `json:"duration"`
	DurationText string         `json:"duration_text"`
	Rating       string         `json:"rating"`
	Showtimes    []ShowtimeView `json:"showtimes"`
}

// SeatView is one cell of the seat map.  Status is AVAILABLE, SELECTED
// or BOOKED.
type SeatView struct {
	Label  string `json:"label"`
	Status string `json:"status"`
}

// GetMovies handles GET /v1/movies.  It returns every movie with its
// showtimes and current availability.
func (h *BrowseHandler) GetMovies(c echo.Context) error {
	movies := h.Catalog.Movies()
	out := make([]MovieView, 0, len(movies))
	for _, m := range movies {
		mv := MovieView{
			Title:        m.Title,
			Duration:     m.Duration,
			DurationText: formatDuration(m.Duration),
			Rating:       m.Rating,
			Showtimes:    make([]ShowtimeView, 0, len(m.Showtimes)),
		}
		for _, st := range m.Showtimes {
			mv.Showtimes = append(mv.Showtimes, ShowtimeView{
				ID:             st.ID,
				TicketPrice:    st.TicketPrice,
				Capacity:       st.Capacity,
				TheaterName:    st.TheaterName,
				AvailableSeats: h.Catalog.AvailableSeatCount(st.ID),
			})
		}
		out = append(out, mv)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": out})
}

// GetShowtime handles GET /v1/showtimes/:id.  It returns one showtime
// with its movie title and availability, or 404 for unknown ids.
func (h *BrowseHandler) GetShowtime(c echo.Context) error {
	id := c.Param("id")
	st, err := h.Catalog.FindShowtimeByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	}
	movie, err := h.Catalog.MovieForShowtime(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"item": ShowtimeView{
			ID:             st.ID,
			TicketPrice:    st.TicketPrice,
			Capacity:       st.Capacity,
			TheaterName:    st.TheaterName,
			AvailableSeats: h.Catalog.AvailableSeatCount(id),
		},
		"movie_title": movie.Title,
	})
}

// GetShowtimeSeats handles GET /v1/showtimes/:id/seats.  It renders the
// seat map for one showtime: every sellable seat in row-major order with
// its status derived from the ledger and the active selection session.
func (h *BrowseHandler) GetShowtimeSeats(c echo.Context) error {
	id := c.Param("id")
	st, err := h.Catalog.FindShowtimeByID(id)
	if err != nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
	}
	snap := h.Session.Snapshot()
	selected := make(map[string]struct{})
	if snap.Open && snap.ShowtimeID == id {
		for _, label := range snap.SelectedSeats {
			selected[label] = struct{}{}
		}
	}
	labels := h.Grid.SeatLabels(st.Capacity)
	seats := make([]SeatView, 0, len(labels))
	for _, label := range labels {
		status := "AVAILABLE"
		if h.Ledger.Contains(model.SeatID{ShowtimeID: id, Label: label}) {
			status = "BOOKED"
		} else if _, ok := selected[label]; ok {
			status = "SELECTED"
		}
		seats = append(seats, SeatView{Label: label, Status: status})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"showtime_id":   id,
		"seats_per_row": h.Grid.SeatsPerRow,
		"items":         seats,
	})
}

// formatDuration renders a running time in minutes as "2h 16m", or just
// "45m" for short films.
func formatDuration(minutes int) string {
	hours := minutes / 60
	mins := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
	return fmt.Sprintf("%dm", mins)
}
