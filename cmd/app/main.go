package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"time"

	"fooddelivery/cmd"
	"fooddelivery/internal/adapters/in/cli"
	"fooddelivery/internal/adapters/out/statefile"
	"fooddelivery/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	// a missing .env is fine, every setting has a default
	_ = godotenv.Load(".env")

	configs, err := getConfigs()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	store, err := statefile.NewStore(configs.DataFile, configs.DeliveryWindow)
	if err != nil {
		log.Fatalf("Failed to open state file: %v", err)
	}

	root, err := cmd.NewCompositionRoot(configs, store)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	jobManager := jobs.NewJobManager(root.CreatePromoteOrdersCommandHandler(), logger)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	handlers, err := root.CreateSessionHandlers()
	if err != nil {
		log.Fatalf("Failed to build handlers: %v", err)
	}

	session := cli.NewSession(
		os.Stdin, os.Stdout, handlers,
		configs.AdminLogin, configs.AdminPassword,
		logger,
	)

	if err = session.Run(context.Background()); err != nil {
		log.Fatalf("Session failed: %v", err)
	}
}

func getConfigs() (cmd.Config, error) {
	deliveryWindow, err := envDuration("DELIVERY_WINDOW_MINUTES", 30, time.Minute)
	if err != nil {
		return cmd.Config{}, err
	}
	enRouteAfter, err := envDuration("ENROUTE_AFTER_SECONDS", 10, time.Second)
	if err != nil {
		return cmd.Config{}, err
	}
	deliveredAfter, err := envDuration("DELIVERED_AFTER_SECONDS", 20, time.Second)
	if err != nil {
		return cmd.Config{}, err
	}

	return cmd.Config{
		DataFile:       envOrDefault("DATA_FILE", "delivery.data"),
		DeliveryWindow: deliveryWindow,
		EnRouteAfter:   enRouteAfter,
		DeliveredAfter: deliveredAfter,
		AdminLogin:     envOrDefault("ADMIN_LOGIN", "admin"),
		AdminPassword:  envOrDefault("ADMIN_PASSWORD", "admin123"),
	}, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envDuration(key string, fallback int, unit time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return time.Duration(fallback) * unit, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	return time.Duration(value) * unit, nil
}
