package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4" // Echo web framework used for routing

	"github.com/iliyamo/movie-ticket-booking/internal/handler" // handlers implementing the endpoints
)

// RegisterRoutes registers the routes that carry no state on the
// provided Echo instance. At the moment this is only the health check,
// which load balancers and monitoring systems can probe.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterBrowse registers the read-only browse endpoints. The optional
// rate limiter covers all of them; the optional response cache covers
// only the listing routes, which are safe to serve slightly stale. The
// seat map embeds the live selection state of the open session, so it
// is always served fresh: a cached copy could show a seat as
// unselected right after the user toggled it.
func RegisterBrowse(e *echo.Echo, b *handler.BrowseHandler, limiter, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")
	listing := routeMW(limiter, cache)
	// Full movie listing with showtimes and live availability.
	g.GET("/movies", b.GetMovies, listing...)
	// One showtime with its movie title and availability.
	g.GET("/showtimes/:id", b.GetShowtime, listing...)
	// The seat map for one showtime, one cell per sellable seat.
	g.GET("/showtimes/:id/seats", b.GetShowtimeSeats, routeMW(limiter)...)
}

// routeMW drops nil entries so callers can pass only the middleware
// they actually constructed.
func routeMW(mws ...echo.MiddlewareFunc) []echo.MiddlewareFunc {
	out := make([]echo.MiddlewareFunc, 0, len(mws))
	for _, mw := range mws {
		if mw != nil {
			out = append(out, mw)
		}
	}
	return out
}

// RegisterBooking registers the command surface: the selection session
// endpoints, the confirm step and the notification poll. These must
// never be cached or rate limited away, so no middleware is applied.
func RegisterBooking(e *echo.Echo, s *handler.SessionHandler, b *handler.BookingHandler, n *handler.NotificationHandler) {
	g := e.Group("/v1")
	// Open the seat-picking session for a showtime.
	g.POST("/session/open", s.OpenSession)
	// Discard the session without booking anything.
	g.POST("/session/close", s.CloseSession)
	// Flip one seat in or out of the selection.
	g.POST("/session/seats/toggle", s.ToggleSeat)
	// Change how many tickets the customer wants.
	g.PUT("/session/tickets", s.SetTickets)
	// Current session snapshot: selection, confirm gate, total price.
	g.GET("/session", s.GetSession)
	// Confirm the selection and commit the seats to the ledger.
	g.POST("/bookings", b.CreateBooking)
	// Active toast notifications for polling renderers.
	g.GET("/notifications", n.GetNotifications)
}
