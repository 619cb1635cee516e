package model

// Movie represents a film in the static catalog.  Movies are pure
// reference data: they are loaded once at startup and never modified
// afterwards.  Each movie owns an ordered list of showtimes.
//
// Fields:
//  Title     – display title of the film.
//  Duration  – running time in minutes.
//  Rating    – certification code such as "PG-13" or "R".
//  Showtimes – scheduled screenings of this movie.
type Movie struct {
	Title     string     `json:"title"`
	Duration  int        `json:"duration"`
	Rating    string     `json:"rating"`
	Showtimes []Showtime `json:"showtimes"`
}

// Showtime represents a scheduled screening of a movie in a particular
// theater.  A showtime belongs to exactly one movie and is immutable
// after load.  Capacity is the total number of sellable seats; the seat
// grid may address more cells, but only the first Capacity seats in
// row-major order are ever offered for sale.
//
// Fields:
//  ID          – unique identifier of the showtime, e.g. "st1".
//  TicketPrice – price per seat, non-negative.
//  Capacity    – total number of sellable seats, positive.
//  TheaterName – name of the theater hosting the screening.
type Showtime struct {
	ID          string  `json:"id"`
	TicketPrice float64 `json:"ticket_price"`
	Capacity    int     `json:"capacity"`
	TheaterName string  `json:"theater_name"`
}
