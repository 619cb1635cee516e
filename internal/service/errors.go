// Package service implements the seat-selection state machine and the
// booking confirmation flow on top of the catalog and ledger stores.
// This file defines the error values the two expose.  Every failure is
// recoverable by the user; none is fatal to the process.  Handlers
// translate each sentinel into an HTTP status and a displayable message.
package service

import "errors"

// ErrSessionClosed is returned when a seat toggle or ticket-count change
// arrives while no selection session is open.  The rendered UI cannot
// produce this, but the command surface checks it anyway.
var ErrSessionClosed = errors.New("no selection session is open")

// ErrInvalidSeat is returned when a toggled seat does not belong to the
// active showtime's sellable grid or has already been sold.
var ErrInvalidSeat = errors.New("seat is not selectable")

// ErrSelectionLimitReached is returned when adding a seat would exceed
// the requested ticket count.  Deselecting always succeeds.
var ErrSelectionLimitReached = errors.New("selection limit reached")

// ErrInvalidTicketCount is returned when the requested ticket count is
// below one.
var ErrInvalidTicketCount = errors.New("ticket count must be at least 1")

// ErrNoSelection is returned by Confirm when the session is closed or no
// seats are selected.
var ErrNoSelection = errors.New("no seats selected")

// ErrMissingCustomerName is returned by Confirm when the customer name
// is empty after trimming whitespace.
var ErrMissingCustomerName = errors.New("customer name is required")

// ErrIncompleteSelection is returned by Confirm when the number of
// selected seats does not match the requested ticket count.
var ErrIncompleteSelection = errors.New("selected seats do not match the requested ticket count")
