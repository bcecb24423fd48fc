package main

import (
	"CivicReportAPI/internal/adapter"
	"CivicReportAPI/internal/bootstrap"
	"CivicReportAPI/internal/config"
	"CivicReportAPI/internal/websocket"
	"fmt"
	"log/slog"
	"net/http"
	"os"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := config.LoadAppConfig()

	client := config.InitEnt(cfg)
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("Error closing database connection", "error", err)
		}
	}()

	s3Client := config.NewS3Client(cfg)

	redisAdapter, err := adapter.NewRedisAdapter(cfg)
	if err != nil {
		slog.Warn("Redis unavailable, falling back to in-memory rate limiting", "error", err)
		redisAdapter = nil
	}

	validate := config.NewValidator()

	hub := websocket.NewHub()
	go hub.Run()

	chiMux := bootstrap.Init(cfg, client, validate, s3Client, redisAdapter, hub)

	addr := fmt.Sprintf(":%s", cfg.AppPort)
	slog.Info("Starting CivicReportAPI", "port", cfg.AppPort)

	if err := http.ListenAndServe(addr, chiMux); err != nil {
		slog.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
