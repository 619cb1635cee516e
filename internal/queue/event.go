// Package queue defines the message exchanged over the broker and the
// best-effort publisher and consumer around it. The broker is optional:
// when no URL is configured the rest of the system behaves as if the
// package did not exist.
package queue

// BookingConfirmedEvent is published when a booking is successfully
// confirmed. It carries enough information for downstream consumers to
// log or notify without querying the process that produced it.
type BookingConfirmedEvent struct {
	BookingID    string   `json:"booking_id"`
	ShowtimeID   string   `json:"showtime_id"`
	MovieTitle   string   `json:"movie_title"`
	TheaterName  string   `json:"theater_name"`
	CustomerName string   `json:"customer_name"`
	SeatLabels   []string `json:"seats"`
	TotalAmount  float64  `json:"total_amount"`
	ConfirmedAt  string   `json:"confirmed_at"`
}
