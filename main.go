package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"doonconnect/internal/catalog"
	intconfig "doonconnect/internal/config"
	router "doonconnect/internal/http"
	"doonconnect/internal/http/handlers"
	applog "doonconnect/internal/logger"
	"doonconnect/internal/repositories"
	"doonconnect/internal/services"

	"github.com/gin-gonic/gin"
)

func main() {
	env := intconfig.LoadEnv()
	applog.Setup(env.LogFile, env.LogStdout)
	log := applog.L()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	var store repositories.BlobStore
	var db *sql.DB
	switch env.StorageDriver {
	case "memory":
		log.Info("using in-memory storage")
		store = repositories.NewMemoryStore()
	default:
		db = intconfig.ConnectDB(env)
		defer intconfig.CloseDB()
		mysqlStore, err := repositories.NewMySQLStore(db)
		if err != nil {
			log.Fatalf("failed to prepare storage schema: %v", err)
		}
		store = mysqlStore
	}

	profiles := repositories.ProfileRepo{Store: store}
	ticketRepo := repositories.TicketRepo{Store: store}
	sessions := repositories.AdminSessionRepo{Store: store}

	cat := catalog.NewDefault()
	seats := catalog.NewDefaultAvailability()
	slots := services.SlotService{}
	fare := services.FareService{}

	tickets := services.NewTicketService(ticketRepo)
	bookings := services.NewBookingService(cat, seats, slots, fare, tickets, profiles)
	bookings.ProcessDelay = 2 * time.Second

	auth := services.AuthService{
		Profiles:  profiles,
		Tickets:   ticketRepo,
		Secret:    []byte(env.JWTSecret),
		DemoCode:  env.DemoOTPCode,
		SendDelay: time.Second,
	}

	admin, err := services.NewAdminService(sessions, []byte(env.JWTSecret), env.AdminEmail, env.AdminPassword)
	if err != nil {
		log.Fatalf("failed to set up admin console: %v", err)
	}

	live := services.NewLiveService(catalog.DefaultLiveBuses())

	ctx, stop := context.WithCancel(context.Background())
	defer stop()
	go live.Run(ctx, time.Minute)
	go tickets.RunExpiry(ctx, time.Minute)
	go bookings.RunJanitor(ctx, 5*time.Minute)

	api := &handlers.API{
		Catalog:  cat,
		Seats:    seats,
		Slots:    slots,
		Fare:     fare,
		Bookings: bookings,
		Tickets:  tickets,
		Auth:     auth,
		Admin:    admin,
		Live:     live,
		DB:       db,
	}

	r := router.NewRouter(env, api)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Infof("server listening on %s", env.AppAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("shutdown failed: %v", err)
	}
	log.Info("server stopped")
}
