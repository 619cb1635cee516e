package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/notify"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/router"
	"github.com/iliyamo/movie-ticket-booking/internal/service"
)

type testAPI struct {
	echo   *echo.Echo
	ledger *repository.BookingLedger
}

func newTestAPI(t *testing.T) *testAPI {
	t.Helper()

	ledger := repository.NewBookingLedger()
	catalog := repository.NewCatalogRepo(repository.SeedMovies(), ledger)
	grid := model.Grid{Rows: 15, SeatsPerRow: 10}
	sess := service.NewSelectionSession(catalog, ledger, grid)
	notices := notify.NewCenter(time.Minute)

	lg := logrus.New()
	lg.SetOutput(io.Discard)
	svc := service.NewBookingService(catalog, ledger, lg, nil)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterBrowse(e, handler.NewBrowseHandler(catalog, ledger, sess, grid), nil, nil)
	router.RegisterBooking(e,
		handler.NewSessionHandler(sess, notices),
		handler.NewBookingHandler(svc, sess, notices),
		handler.NewNotificationHandler(notices),
	)

	return &testAPI{echo: e, ledger: ledger}
}

func (a *testAPI) do(t *testing.T, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	a.echo.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload
}

func TestHealthz(t *testing.T) {
	api := newTestAPI(t)
	rec, payload := api.do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", payload["status"])
}

func TestGetMovies(t *testing.T) {
	api := newTestAPI(t)
	rec, payload := api.do(t, http.MethodGet, "/v1/movies", "")
	require.Equal(t, http.StatusOK, rec.Code)

	items, ok := payload["items"].([]any)
	require.True(t, ok)
	require.Len(t, items, 3)

	first := items[0].(map[string]any)
	assert.Equal(t, "The Matrix", first["title"])
	assert.Equal(t, "2h 16m", first["duration_text"])
	showtimes := first["showtimes"].([]any)
	require.Len(t, showtimes, 3)
	st := showtimes[0].(map[string]any)
	assert.Equal(t, "st1", st["id"])
	assert.Equal(t, 12.50, st["ticket_price"])
	assert.Equal(t, float64(100), st["available_seats"])
}

func TestGetShowtimeNotFound(t *testing.T) {
	api := newTestAPI(t)
	rec, payload := api.do(t, http.MethodGet, "/v1/showtimes/st999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "showtime not found", payload["error"])
}

func TestSeatMapReflectsLedgerAndSelection(t *testing.T) {
	api := newTestAPI(t)
	api.ledger.CommitAll([]model.SeatID{{ShowtimeID: "st1", Label: "A3"}})

	rec, _ := api.do(t, http.MethodPost, "/v1/session/open", `{"showtime_id":"st1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = api.do(t, http.MethodPost, "/v1/session/seats/toggle", `{"seat":"A1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, payload := api.do(t, http.MethodGet, "/v1/showtimes/st1/seats", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(10), payload["seats_per_row"])

	items := payload["items"].([]any)
	require.Len(t, items, 100) // capacity 100 on a 15x10 grid

	byLabel := make(map[string]string, len(items))
	for _, it := range items {
		cell := it.(map[string]any)
		byLabel[cell["label"].(string)] = cell["status"].(string)
	}
	assert.Equal(t, "SELECTED", byLabel["A1"])
	assert.Equal(t, "BOOKED", byLabel["A3"])
	assert.Equal(t, "AVAILABLE", byLabel["A2"])
	assert.Equal(t, "AVAILABLE", byLabel["J10"])
}

func TestOpenSessionUnknownShowtime(t *testing.T) {
	api := newTestAPI(t)
	rec, _ := api.do(t, http.MethodPost, "/v1/session/open", `{"showtime_id":"st999"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// The failure surfaced as a toast.
	_, payload := api.do(t, http.MethodGet, "/v1/notifications", "")
	items := payload["items"].([]any)
	require.Len(t, items, 1)
	toast := items[0].(map[string]any)
	assert.Equal(t, "Showtime not found", toast["message"])
	assert.Equal(t, "error", toast["severity"])
}

func TestToggleRequiresOpenSession(t *testing.T) {
	api := newTestAPI(t)
	rec, _ := api.do(t, http.MethodPost, "/v1/session/seats/toggle", `{"seat":"A1"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSelectionLimitToast(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodPost, "/v1/session/open", `{"showtime_id":"st1"}`)

	rec, _ := api.do(t, http.MethodPost, "/v1/session/seats/toggle", `{"seat":"A1"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, _ = api.do(t, http.MethodPost, "/v1/session/seats/toggle", `{"seat":"A2"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)

	_, payload := api.do(t, http.MethodGet, "/v1/notifications", "")
	items := payload["items"].([]any)
	require.Len(t, items, 1)
	assert.Equal(t, "You can only select 1 seat(s)", items[0].(map[string]any)["message"])
}

func TestFullBookingFlow(t *testing.T) {
	api := newTestAPI(t)

	rec, _ := api.do(t, http.MethodPost, "/v1/session/open", `{"showtime_id":"st1"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec, payload := api.do(t, http.MethodPut, "/v1/session/tickets", `{"count":2}`)
	require.Equal(t, http.StatusOK, rec.Code)
	sess := payload["session"].(map[string]any)
	assert.Equal(t, float64(2), sess["requested_count"])

	api.do(t, http.MethodPost, "/v1/session/seats/toggle", `{"seat":"A1"}`)
	rec, payload = api.do(t, http.MethodPost, "/v1/session/seats/toggle", `{"seat":"st1-A2"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	sess = payload["session"].(map[string]any)
	assert.Equal(t, true, sess["can_confirm"])
	assert.Equal(t, 25.00, sess["total_price"])

	rec, payload = api.do(t, http.MethodPost, "/v1/bookings", `{"customer_name":"Alice"}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	booking := payload["booking"].(map[string]any)
	assert.Equal(t, "Alice", booking["customer_name"])
	assert.Equal(t, 25.00, booking["total_amount"])
	reservations := payload["reservations"].([]any)
	assert.Len(t, reservations, 2)

	// The session closed and availability dropped.
	_, payload = api.do(t, http.MethodGet, "/v1/session", "")
	sess = payload["session"].(map[string]any)
	assert.Equal(t, false, sess["open"])

	_, payload = api.do(t, http.MethodGet, "/v1/showtimes/st1", "")
	item := payload["item"].(map[string]any)
	assert.Equal(t, float64(98), item["available_seats"])

	_, payload = api.do(t, http.MethodGet, "/v1/notifications", "")
	items := payload["items"].([]any)
	require.Len(t, items, 1)
	msg := items[0].(map[string]any)["message"].(string)
	assert.True(t, strings.HasPrefix(msg, "Booking confirmed! Booking ID: BK-"))
}

func TestCreateBookingConflict(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodPost, "/v1/session/open", `{"showtime_id":"st1"}`)
	api.do(t, http.MethodPost, "/v1/session/seats/toggle", `{"seat":"A1"}`)

	// A concurrent booking claims the seat before confirm.
	api.ledger.CommitAll([]model.SeatID{{ShowtimeID: "st1", Label: "A1"}})

	rec, payload := api.do(t, http.MethodPost, "/v1/bookings", `{"customer_name":"Alice"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "A1", payload["seat"])
}

func TestCreateBookingValidation(t *testing.T) {
	api := newTestAPI(t)

	// Nothing selected.
	rec, _ := api.do(t, http.MethodPost, "/v1/bookings", `{"customer_name":"Alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Seat selected but no name.
	api.do(t, http.MethodPost, "/v1/session/open", `{"showtime_id":"st1"}`)
	api.do(t, http.MethodPost, "/v1/session/seats/toggle", `{"seat":"A1"}`)
	rec, payload := api.do(t, http.MethodPost, "/v1/bookings", `{"customer_name":"  "}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "customer name is required", payload["error"])

	// Selection smaller than the ticket count.
	api.do(t, http.MethodPut, "/v1/session/tickets", `{"count":3}`)
	rec, _ = api.do(t, http.MethodPost, "/v1/bookings", `{"customer_name":"Alice"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetTicketsValidation(t *testing.T) {
	api := newTestAPI(t)
	api.do(t, http.MethodPost, "/v1/session/open", `{"showtime_id":"st1"}`)

	rec, _ := api.do(t, http.MethodPut, "/v1/session/tickets", `{"count":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	api.do(t, http.MethodPost, "/v1/session/close", "")
	rec, _ = api.do(t, http.MethodPut, "/v1/session/tickets", `{"count":2}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}
