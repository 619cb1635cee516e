package model

// Booking records a customer's confirmed purchase of one or more seats
// for a single showtime.  A booking is created once by the booking
// service and is immutable thereafter.
//
// Fields:
//  BookingID    – unique identifier, e.g. "BK-8gTq...".
//  ShowtimeID   – showtime the seats were bought for.
//  CustomerName – non-empty name entered at confirmation time.
//  TotalAmount  – number of seats times the showtime's ticket price.
//  BookingDate  – calendar date of the booking, formatted YYYY-MM-DD.
type Booking struct {
	BookingID    string  `json:"booking_id"`
	ShowtimeID   string  `json:"showtime_id"`
	CustomerName string  `json:"customer_name"`
	TotalAmount  float64 `json:"total_amount"`
	BookingDate  string  `json:"booking_date"`
}

// SeatReservation links one booked seat to its booking.  One record is
// created per seat, atomically with the booking itself.
//
// Fields:
//  ReservationID – unique identifier of this seat reservation.
//  BookingID     – booking this seat belongs to.
//  Row           – row letter(s) parsed from the seat label.
//  Number        – 1-based seat number within the row.
type SeatReservation struct {
	ReservationID string `json:"reservation_id"`
	BookingID     string `json:"booking_id"`
	Row           string `json:"row"`
	Number        int    `json:"number"`
}
