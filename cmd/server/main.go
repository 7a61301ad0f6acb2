package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"    // .env loading for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/railway-ticket-reservation/internal/config"
	"github.com/iliyamo/railway-ticket-reservation/internal/handler"
	"github.com/iliyamo/railway-ticket-reservation/internal/middleware"
	"github.com/iliyamo/railway-ticket-reservation/internal/queue"
	"github.com/iliyamo/railway-ticket-reservation/internal/repository"
	"github.com/iliyamo/railway-ticket-reservation/internal/router"
	"github.com/iliyamo/railway-ticket-reservation/internal/service"
	"github.com/iliyamo/railway-ticket-reservation/internal/storage"
	"github.com/iliyamo/railway-ticket-reservation/internal/utils"
)

func main() {
	// Load .env if present; real environment values win over file values.
	_ = godotenv.Load()
	cfg := config.Load()

	// Redis is optional: it backs the rate limiter and, when selected, the
	// blob store.  A nil client degrades both gracefully.
	rdb := config.NewRedisClient()

	var store storage.BlobStore
	if cfg.StorageBackend == "redis" && rdb != nil {
		store = storage.NewRedisStore(rdb, "railway")
		log.Printf("storage: using redis blobs")
	} else {
		fs, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			log.Fatalf("storage: open data dir %q: %v", cfg.DataDir, err)
		}
		store = fs
		log.Printf("storage: using file blobs in %s", cfg.DataDir)
	}

	ids := utils.NewWeakGenerator()
	trains := repository.NewTrainRepo()
	bookings := repository.NewBookingRepo(store, ids)
	sessions := service.NewSessionService(repository.NewSessionRepo(store), cfg.LoginDelay)

	flow := service.NewBookingService(trains, bookings)
	payments := service.NewPaymentService(bookings, cfg.PaymentDelay)

	// Consume confirmation events into logs/ticket.log.  The consumer runs
	// its own reconnect loop and never takes the server down.
	go func() {
		if err := queue.StartTicketConsumer(); err != nil {
			log.Printf("ticket-consumer stopped: %v", err)
		}
	}()

	limiter := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, sessions), cfg.JWTSecret)
	router.RegisterSearch(e, handler.NewSearchHandler(trains, cfg.SearchDelay), limiter)
	router.RegisterBooking(e, handler.NewBookingHandler(bookings, flow), handler.NewPaymentHandler(payments), cfg.JWTSecret, limiter)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
