package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/notify"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/service"
)

// SessionHandler drives the seat-picking dialog over HTTP: opening a
// showtime, toggling seats, changing the ticket count and closing.  It
// pushes a toast notice for the outcomes the original widget surfaced
// to the user.
type SessionHandler struct {
	Session *service.SelectionSession
	Notices *notify.Center
}

// NewSessionHandler constructs a SessionHandler.
func NewSessionHandler(session *service.SelectionSession, notices *notify.Center) *SessionHandler {
	if session == nil || notices == nil {
		panic("nil dependency passed to NewSessionHandler")
	}
	return &SessionHandler{Session: session, Notices: notices}
}

// OpenSession handles POST /v1/session/open.  The body must contain a
// showtime_id.  Opening resets any previous selection.  Unknown ids
// leave the session closed and produce an error toast, matching the
// original behaviour.
func (h *SessionHandler) OpenSession(c echo.Context) error {
	var body struct {
		ShowtimeID string `json:"showtime_id"`
	}
	if err := c.Bind(&body); err != nil || strings.TrimSpace(body.ShowtimeID) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "showtime_id is required"})
	}
	if err := h.Session.Open(body.ShowtimeID); err != nil {
		if errors.Is(err, repository.ErrShowtimeNotFound) {
			h.Notices.Error("Showtime not found")
			return c.JSON(http.StatusNotFound, echo.Map{"error": "showtime not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to open session"})
	}
	return c.JSON(http.StatusOK, echo.Map{"session": h.Session.Snapshot()})
}

// CloseSession handles POST /v1/session/close.  It discards the session
// state without touching the ledger and always succeeds.
func (h *SessionHandler) CloseSession(c echo.Context) error {
	h.Session.Close()
	return c.NoContent(http.StatusNoContent)
}

// ToggleSeat handles POST /v1/session/seats/toggle.  The body carries a
// seat, either as a bare label ("A1") resolved against the active
// showtime, or as a full key ("st1-A1").  Toggling a selected seat
// always deselects it; adding a seat is validated against the grid, the
// ledger and the requested ticket count.
func (h *SessionHandler) ToggleSeat(c echo.Context) error {
	var body struct {
		Seat string `json:"seat"`
	}
	if err := c.Bind(&body); err != nil || body.Seat == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat is required"})
	}
	snap := h.Session.Snapshot()
	if !snap.Open {
		return c.JSON(http.StatusConflict, echo.Map{"error": "no selection session is open"})
	}
	seat := model.SeatID{ShowtimeID: snap.ShowtimeID, Label: body.Seat}
	if strings.Contains(body.Seat, "-") {
		parsed, err := model.ParseSeatKey(body.Seat)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid seat key"})
		}
		seat = parsed
	}
	if err := h.Session.ToggleSeat(seat); err != nil {
		switch {
		case errors.Is(err, service.ErrSessionClosed):
			return c.JSON(http.StatusConflict, echo.Map{"error": "no selection session is open"})
		case errors.Is(err, service.ErrSelectionLimitReached):
			h.Notices.Error(fmt.Sprintf("You can only select %d seat(s)", snap.RequestedCount))
			return c.JSON(http.StatusConflict, echo.Map{"error": "selection limit reached"})
		case errors.Is(err, service.ErrInvalidSeat):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "seat is not selectable"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to toggle seat"})
	}
	return c.JSON(http.StatusOK, echo.Map{"session": h.Session.Snapshot()})
}

// SetTickets handles PUT /v1/session/tickets.  It changes the requested
// ticket count.  Lowering the count below the current selection size is
// allowed; the confirm gate simply stays blocked until seats are
// deselected.
func (h *SessionHandler) SetTickets(c echo.Context) error {
	var body struct {
		Count int `json:"count"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Session.SetRequestedCount(body.Count); err != nil {
		switch {
		case errors.Is(err, service.ErrSessionClosed):
			return c.JSON(http.StatusConflict, echo.Map{"error": "no selection session is open"})
		case errors.Is(err, service.ErrInvalidTicketCount):
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "ticket count must be at least 1"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to set ticket count"})
	}
	return c.JSON(http.StatusOK, echo.Map{"session": h.Session.Snapshot()})
}

// GetSession handles GET /v1/session.  It returns the current snapshot:
// active showtime, requested count, selected seats, the confirm gate
// and the live total price.
func (h *SessionHandler) GetSession(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"session": h.Session.Snapshot()})
}
