package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lithammer/shortuuid/v3"
	"github.com/sirupsen/logrus"

	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
)

// ConfirmedPublisher publishes a booking-confirmed event after a
// successful commit.  Publishing is best effort: failures are logged and
// never fail the booking.
type ConfirmedPublisher interface {
	PublishBookingConfirmed(ctx context.Context, ev queue.BookingConfirmedEvent) error
}

// BookingService validates a completed selection and commits it to the
// ledger, producing an immutable booking record plus one seat
// reservation record per seat.  The ledger is the only state it mutates.
type BookingService struct {
	catalog   *repository.CatalogRepo
	ledger    *repository.BookingLedger
	log       *logrus.Logger
	publisher ConfirmedPublisher // nil when no broker is configured
}

// NewBookingService wires the service to the shared catalog and ledger.
// The publisher may be nil.
func NewBookingService(catalog *repository.CatalogRepo, ledger *repository.BookingLedger, log *logrus.Logger, publisher ConfirmedPublisher) *BookingService {
	if catalog == nil || ledger == nil || log == nil {
		panic("nil dependency passed to NewBookingService")
	}
	return &BookingService{
		catalog:   catalog,
		ledger:    ledger,
		log:       log,
		publisher: publisher,
	}
}

// Confirm finalises the session's selection for the given customer.  The
// checks run in a fixed order and all precede any mutation, so a failed
// confirmation leaves both the session and the ledger untouched:
//
//  1. the session must be open with at least one seat selected,
//  2. the customer name must be non-empty after trimming,
//  3. the selection size must equal the requested ticket count,
//  4. every seat must still be free in the ledger (another confirmation
//     may have taken one since it was selected),
//  5. every seat label must parse into row + number.
//
// On success the seats are committed through the ledger's single
// compare-and-commit section, the would-be SQL is logged, a confirmation
// event is published best-effort and the session transitions to CLOSED.
func (b *BookingService) Confirm(ctx context.Context, sess *SelectionSession, customerName string) (model.Booking, []model.SeatReservation, error) {
	sess.mu.Lock()
	defer sess.mu.Unlock()

	if sess.active == nil || len(sess.selected) == 0 {
		return model.Booking{}, nil, ErrNoSelection
	}
	name := strings.TrimSpace(customerName)
	if name == "" {
		return model.Booking{}, nil, ErrMissingCustomerName
	}
	if !sess.canConfirmLocked() {
		return model.Booking{}, nil, ErrIncompleteSelection
	}

	seats := make([]model.SeatID, 0, len(sess.selected))
	for s := range sess.selected {
		seats = append(seats, s)
	}
	sortSeats(seats)

	for _, s := range seats {
		if b.ledger.Contains(s) {
			return model.Booking{}, nil, &repository.SeatAlreadyBookedError{Seat: s}
		}
	}

	st := *sess.active
	booking := model.Booking{
		BookingID:    "BK-" + shortuuid.New(),
		ShowtimeID:   st.ID,
		CustomerName: name,
		TotalAmount:  float64(len(seats)) * st.TicketPrice,
		BookingDate:  time.Now().UTC().Format("2006-01-02"),
	}

	reservations := make([]model.SeatReservation, 0, len(seats))
	for _, s := range seats {
		row, number, err := model.ParseSeatLabel(s.Label)
		if err != nil {
			return model.Booking{}, nil, err
		}
		reservations = append(reservations, model.SeatReservation{
			ReservationID: "SR-" + uuid.NewString(),
			BookingID:     booking.BookingID,
			Row:           row,
			Number:        number,
		})
	}

	// The re-check above already reported conflicts in seat order; the
	// reserve call repeats it atomically in case a concurrent
	// confirmation won the race in between.
	if err := b.ledger.Reserve(seats); err != nil {
		return model.Booking{}, nil, err
	}

	b.logBookingSQL(booking, reservations)
	b.publishConfirmed(ctx, booking, st, seats)
	sess.closeLocked()

	return booking, reservations, nil
}

func (b *BookingService) publishConfirmed(ctx context.Context, booking model.Booking, st model.Showtime, seats []model.SeatID) {
	if b.publisher == nil {
		return
	}
	labels := make([]string, 0, len(seats))
	for _, s := range seats {
		labels = append(labels, s.Label)
	}
	ev := queue.BookingConfirmedEvent{
		BookingID:    booking.BookingID,
		ShowtimeID:   booking.ShowtimeID,
		TheaterName:  st.TheaterName,
		CustomerName: booking.CustomerName,
		SeatLabels:   labels,
		TotalAmount:  booking.TotalAmount,
		ConfirmedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	if movie, err := b.catalog.MovieForShowtime(st.ID); err == nil {
		ev.MovieTitle = movie.Title
	}
	if err := b.publisher.PublishBookingConfirmed(ctx, ev); err != nil {
		b.log.WithError(err).Warn("failed to publish booking confirmed event")
	}
}

// sortSeats orders seats row-major so reservation rows and diagnostics
// come out in a stable, human-friendly order.
func sortSeats(seats []model.SeatID) {
	sort.Slice(seats, func(i, j int) bool {
		ri, ni, errI := model.ParseSeatLabel(seats[i].Label)
		rj, nj, errJ := model.ParseSeatLabel(seats[j].Label)
		if errI != nil || errJ != nil {
			return seats[i].Label < seats[j].Label
		}
		if ri != rj {
			return ri < rj
		}
		return ni < nj
	})
}
