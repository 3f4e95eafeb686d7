package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/mkazakov/shopdata/internal/config"
	"github.com/mkazakov/shopdata/internal/events"
	"github.com/mkazakov/shopdata/internal/httpserver"
	"github.com/mkazakov/shopdata/internal/logging"
	loggingmw "github.com/mkazakov/shopdata/internal/middleware/logging"
	"github.com/mkazakov/shopdata/internal/repo"
	"github.com/mkazakov/shopdata/internal/service"
)

func main() {
	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	db, err := config.InitDB(context.Background(), cfg)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}

	producer := events.NewProducer(cfg.KafkaBrokers)

	gormRepo := &repo.GormRepo{DB: db}
	orderSvc := &service.OrderService{Repo: gormRepo}
	storeSvc := &service.StoreService{Repo: gormRepo}

	e := echo.New()
	e.Pre(echomw.RemoveTrailingSlash())
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.CORS())

	httpserver.Register(e, &httpserver.Deps{
		OrderHandler: &httpserver.OrderHTTP{Svc: orderSvc, Producer: producer},
		StoreHandler: &httpserver.StoreHTTP{Svc: storeSvc, Producer: producer},
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("%s listening on %s", cfg.ServiceName, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Println("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
