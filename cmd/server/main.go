package main // Entry point package

import (
	"log" // Logging library

	"github.com/joho/godotenv"    // .env loader for local development
	"github.com/labstack/echo/v4" // Echo web framework

	"github.com/iliyamo/cinema-commerce-api/internal/config"
	"github.com/iliyamo/cinema-commerce-api/internal/database"
	"github.com/iliyamo/cinema-commerce-api/internal/handler"
	"github.com/iliyamo/cinema-commerce-api/internal/middleware"
	"github.com/iliyamo/cinema-commerce-api/internal/queue"
	"github.com/iliyamo/cinema-commerce-api/internal/repository"
	"github.com/iliyamo/cinema-commerce-api/internal/router"
	queue_publisher "github.com/iliyamo/cinema-commerce-api/internal/service"
	"github.com/iliyamo/cinema-commerce-api/internal/store"
)

func main() {
	_ = godotenv.Load() // best effort; real deployments set the environment directly
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("database open: %v", err)
	}
	if err := database.EnsureSchema(db, cfg.UsersTable,
		cfg.OrdersTable, cfg.ProductsTable, cfg.ReservationsTable, cfg.SchedulesTable, cfg.MoviesTable); err != nil {
		log.Fatalf("ensure schema: %v", err)
	}

	// One table store per entity, each binding its id attribute.
	orders := repository.NewOrderRepo(store.New(db, cfg.OrdersTable, "order_id"))
	products := repository.NewProductRepo(store.New(db, cfg.ProductsTable, "product_id"))
	reservations := repository.NewReservationRepo(store.New(db, cfg.ReservationsTable, "reservation_id"))
	schedules := repository.NewScheduleRepo(store.New(db, cfg.SchedulesTable, "schedule_id"))
	movies := repository.NewMovieRepo(store.New(db, cfg.MoviesTable, "movie_id"))
	users := repository.NewUserRepo(db, cfg.UsersTable)

	events := queue_publisher.New()

	h := router.Handlers{
		Auth:         handler.NewAuthHandler(cfg, users),
		Orders:       handler.NewOrderHandler(orders, events),
		Products:     handler.NewProductHandler(products),
		Reservations: handler.NewReservationHandler(reservations, schedules, events),
		Schedules:    handler.NewScheduleHandler(schedules),
		Movies:       handler.NewMovieHandler(movies),
	}

	e := echo.New()

	// Redis-backed middleware degrades to no-ops when Redis is absent.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable; response cache and rate limiting disabled")
	}
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	router.RegisterRoutes(e)
	router.RegisterAuth(e, h.Auth)
	router.RegisterAPI(e, cfg.JWTSecret, cache, h)

	// Background consumer records created bookings; it reconnects on its
	// own and never takes the server down.
	go func() {
		if err := queue.StartBookingConsumer(); err != nil {
			log.Printf("booking consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
