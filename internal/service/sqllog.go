package service

import (
	"fmt"
	"strings"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
)

// Persistence is simulated: the only durable effect of a booking is the
// in-memory ledger mutation.  For diagnostics the service still emits
// the INSERT statements a real database layer would have executed, one
// per record, mirroring the tables Booking and Seat_Reserved.

func bookingInsertSQL(b model.Booking) string {
	return fmt.Sprintf(
		"INSERT INTO Booking (bookingId, showtimeId, customerName, totalAmount, bookingDate) VALUES ('%s', '%s', '%s', %.2f, '%s');",
		b.BookingID, b.ShowtimeID, escapeSQL(b.CustomerName), b.TotalAmount, b.BookingDate,
	)
}

func reservationInsertSQL(r model.SeatReservation) string {
	return fmt.Sprintf(
		"INSERT INTO Seat_Reserved (reservationId, bookingId, row, number) VALUES ('%s', '%s', '%s', %d);",
		r.ReservationID, r.BookingID, r.Row, r.Number,
	)
}

// escapeSQL doubles single quotes.  The statements are log output, but
// there is no reason to emit broken SQL when a name contains a quote.
func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

func (b *BookingService) logBookingSQL(rec model.Booking, seats []model.SeatReservation) {
	entry := b.log.WithField("booking_id", rec.BookingID)
	entry.Info(bookingInsertSQL(rec))
	for _, r := range seats {
		entry.Info(reservationInsertSQL(r))
	}
}
