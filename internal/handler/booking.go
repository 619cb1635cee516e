package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/notify"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/service"
)

// BookingHandler exposes the confirm step.  Every outcome, success or
// failure, is also pushed to the notification center so the
// presentation layer can show the matching toast.
type BookingHandler struct {
	Service *service.BookingService
	Session *service.SelectionSession
	Notices *notify.Center
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc *service.BookingService, session *service.SelectionSession, notices *notify.Center) *BookingHandler {
	if svc == nil || session == nil || notices == nil {
		panic("nil dependency passed to NewBookingHandler")
	}
	return &BookingHandler{Service: svc, Session: session, Notices: notices}
}

// CreateBooking handles POST /v1/bookings.  It confirms the current
// selection for the customer named in the body.  All validation happens
// in the booking service; this handler only translates the error
// taxonomy into HTTP statuses and toast messages.  On success it
// returns 201 with the booking record and its seat reservations, and
// the session is closed.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	var body struct {
		CustomerName string `json:"customer_name"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	booking, reservations, err := h.Service.Confirm(c.Request().Context(), h.Session, body.CustomerName)
	if err != nil {
		var taken *repository.SeatAlreadyBookedError
		switch {
		case errors.Is(err, service.ErrNoSelection):
			h.Notices.Error("Please select seats before confirming")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "no seats selected"})
		case errors.Is(err, service.ErrMissingCustomerName):
			h.Notices.Error("Please enter customer name")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer name is required"})
		case errors.Is(err, service.ErrIncompleteSelection):
			h.Notices.Error("Selected seats must match the number of tickets")
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "selection does not match ticket count"})
		case errors.As(err, &taken):
			h.Notices.Error("Seat " + taken.Seat.Label + " was just booked by someone else")
			return c.JSON(http.StatusConflict, echo.Map{
				"error": "seat already booked",
				"seat":  taken.Seat.Label,
			})
		case errors.Is(err, model.ErrMalformedSeatLabel):
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "malformed seat label"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to confirm booking"})
	}

	h.Notices.Success("Booking confirmed! Booking ID: " + booking.BookingID)
	return c.JSON(http.StatusCreated, echo.Map{
		"booking":      booking,
		"reservations": reservations,
	})
}
