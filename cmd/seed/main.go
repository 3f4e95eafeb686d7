package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/mkazakov/shopdata/internal/config"
	"github.com/mkazakov/shopdata/internal/logging"
	"github.com/mkazakov/shopdata/internal/seed"
)

func main() {
	users := flag.Int("users", 1000, "number of fake users to insert")
	orders := flag.Int("orders", 2000, "number of fake orders to insert")
	extraItems := flag.Int("extra-items", 100, "extra order items on top of one per order")
	flag.Parse()

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName+"-seed")
	slog.SetDefault(logger)

	db, err := config.InitDB(context.Background(), cfg)
	if err != nil {
		log.Fatalf("db init: %v", err)
	}

	s := &seed.Seeder{DB: db, Log: logger}
	if err := s.Run(context.Background(), *users, *orders, *extraItems); err != nil {
		log.Fatalf("seed: %v", err)
	}

	log.Println("random users and orders inserted successfully")
}
