// Package repository contains the in-memory stores backing the booking
// core: the movie catalog and the ledger of sold seats. This file
// defines error values shared by those stores. These sentinels allow
// higher layers such as handlers to distinguish between failure
// scenarios with errors.Is and errors.As instead of inspecting
// messages.
package repository

import (
	"errors"
	"fmt"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// ErrShowtimeNotFound is returned when a showtime id cannot be resolved
// against the catalog. Callers must treat this as a normal, displayable
// condition rather than a fault; handlers translate it into an HTTP 404
// response.
var ErrShowtimeNotFound = errors.New("showtime not found")

// SeatAlreadyBookedError reports the first already-sold seat found while
// reserving a set of seats. It names the offending seat so the message
// shown to the user can identify it.
type SeatAlreadyBookedError struct {
	Seat model.SeatID
}

func (e *SeatAlreadyBookedError) Error() string {
	return fmt.Sprintf("seat %s is already booked", e.Seat)
}
