package main

import (
	"context"
	"fmt"
	"os"

	"restaurant-pos/internal/auth"
	"restaurant-pos/internal/config"
	"restaurant-pos/internal/logger"
	"restaurant-pos/internal/repository"
	"restaurant-pos/internal/service"
	"restaurant-pos/internal/shell"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel)

	surcharges, err := cfg.ParseSurcharges()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to parse surcharges: %v\n", err)
		os.Exit(1)
	}

	restaurant := service.NewRestaurant(service.RestaurantParams{
		MenuSeed:           repository.DefaultMenu(),
		TableCount:         cfg.TableCount,
		OrderLedgerPath:    cfg.OrderLedgerPath,
		FeedbackLedgerPath: cfg.FeedbackLedgerPath,
		Surcharges:         surcharges,
	}, log)

	log.Info("starting restaurant pos",
		"tables", cfg.TableCount,
		"order_ledger", cfg.OrderLedgerPath,
		"feedback_ledger", cfg.FeedbackLedgerPath,
		"surcharges", cfg.Surcharges,
	)

	gate := auth.NewPasswordGate(cfg.AdminPassword)
	sh := shell.New(restaurant, gate, os.Stdin, os.Stdout, log)
	if err := sh.Run(context.Background()); err != nil {
		log.Error("shell exited with error", "error", err)
		os.Exit(1)
	}
	log.Info("restaurant pos stopped")
}
