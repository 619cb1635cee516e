package repository

import "github.com/iliyamo/movie-ticket-booking/internal/model"

// SeedMovies returns the built-in catalog.  The widget has no movie
// administration surface, so the catalog ships with the binary.
func SeedMovies() []model.Movie {
	return []model.Movie{
		{
			Title:    "The Matrix",
			Duration: 136,
			Rating:   "R",
			Showtimes: []model.Showtime{
				{ID: "st1", TicketPrice: 12.50, Capacity: 100, TheaterName: "Theater A"},
				{ID: "st2", TicketPrice: 12.50, Capacity: 150, TheaterName: "Theater B"},
				{ID: "st3", TicketPrice: 15.00, Capacity: 80, TheaterName: "Theater C"},
			},
		},
		{
			Title:    "Inception",
			Duration: 148,
			Rating:   "PG-13",
			Showtimes: []model.Showtime{
				{ID: "st4", TicketPrice: 13.75, Capacity: 120, TheaterName: "Theater A"},
				{ID: "st5", TicketPrice: 13.75, Capacity: 100, TheaterName: "Theater B"},
				{ID: "st6", TicketPrice: 14.50, Capacity: 90, TheaterName: "Theater D"},
			},
		},
		{
			Title:    "Interstellar",
			Duration: 169,
			Rating:   "PG-13",
			Showtimes: []model.Showtime{
				{ID: "st7", TicketPrice: 14.00, Capacity: 110, TheaterName: "Theater C"},
				{ID: "st8", TicketPrice: 14.00, Capacity: 130, TheaterName: "Theater D"},
				{ID: "st9", TicketPrice: 16.25, Capacity: 75, TheaterName: "Theater A"},
			},
		},
	}
}
