package main // Entry point package

import (
	"log" // startup logging

	"github.com/labstack/echo/v4" // Echo web framework
	"github.com/sirupsen/logrus"  // structured logging for the booking service

	"github.com/iliyamo/movie-ticket-booking/internal/config"
	"github.com/iliyamo/movie-ticket-booking/internal/handler"
	"github.com/iliyamo/movie-ticket-booking/internal/middleware"
	"github.com/iliyamo/movie-ticket-booking/internal/model"
	"github.com/iliyamo/movie-ticket-booking/internal/notify"
	"github.com/iliyamo/movie-ticket-booking/internal/queue"
	"github.com/iliyamo/movie-ticket-booking/internal/repository"
	"github.com/iliyamo/movie-ticket-booking/internal/router"
	"github.com/iliyamo/movie-ticket-booking/internal/service"
)

func main() {
	cfg := config.Load() // load environment config

	// Shared state: the ledger is the single source of truth for seat
	// availability and is passed by reference to everything that needs it.
	ledger := repository.NewBookingLedger()
	catalog := repository.NewCatalogRepo(repository.SeedMovies(), ledger)
	grid := model.Grid{Rows: cfg.SeatRows, SeatsPerRow: cfg.SeatsPerRow}

	session := service.NewSelectionSession(catalog, ledger, grid)
	notices := notify.NewCenter(cfg.NoticeTTL)
	publisher := queue.NewPublisher(cfg.AMQPURL)
	booking := service.NewBookingService(catalog, ledger, logrus.StandardLogger(), publisher)

	// Optional background consumer mirroring confirmed bookings into
	// logs/booking.log. It reconnects forever, so run it detached.
	if cfg.RunConsumer && cfg.AMQPURL != "" {
		go func() {
			if err := queue.StartBookingConsumer(cfg.AMQPURL); err != nil {
				log.Printf("booking consumer disabled: %v", err)
			}
		}()
	}

	e := echo.New()
	router.RegisterRoutes(e)

	// Redis is optional: a nil client turns both middlewares into
	// pass-throughs.
	rdb := config.NewRedisClient()
	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewResponseCache(config.LoadCacheConfig(), rdb)
	router.RegisterBrowse(e, handler.NewBrowseHandler(catalog, ledger, session, grid), limiter, cache)
	router.RegisterBooking(e,
		handler.NewSessionHandler(session, notices),
		handler.NewBookingHandler(booking, session, notices),
		handler.NewNotificationHandler(notices),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
