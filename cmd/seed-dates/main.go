// Package main pre-populates the date dimension table for a fixed
// calendar range so analytics queries never race on first insert.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/ledgertrack/backend/config"
	"github.com/ledgertrack/backend/internal/infra/db"
	"github.com/ledgertrack/backend/internal/integration/persistence"
	"github.com/ledgertrack/backend/internal/integration/persistence/model"
)

func main() {
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	startFlag := flag.String("start", "2020-01-01", "first date to seed (YYYY-MM-DD)")
	endFlag := flag.String("end", "2030-12-31", "last date to seed (YYYY-MM-DD)")
	flag.Parse()

	start, err := time.Parse("2006-01-02", *startFlag)
	if err != nil {
		slog.Error("Invalid start date", "value", *startFlag, "error", err)
		os.Exit(1)
	}
	end, err := time.Parse("2006-01-02", *endFlag)
	if err != nil {
		slog.Error("Invalid end date", "value", *endFlag, "error", err)
		os.Exit(1)
	}
	if end.Before(start) {
		slog.Error("End date precedes start date", "start", *startFlag, "end", *endFlag)
		os.Exit(1)
	}

	cfg := config.Load()

	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	if err := database.AutoMigrate(&model.DateDimensionModel{}); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}

	repo := persistence.NewDateDimensionRepository(database.DB())
	ctx := context.Background()

	seeded := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if _, err := repo.GetOrCreate(ctx, day); err != nil {
			slog.Error("Failed to seed date", "date", day.Format("2006-01-02"), "error", err)
			os.Exit(1)
		}
		seeded++
	}

	slog.Info("Date dimension seeding completed",
		"start", start.Format("2006-01-02"),
		"end", end.Format("2006-01-02"),
		"days", seeded,
	)
}
