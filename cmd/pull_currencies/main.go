// Command pull_currencies imports the provider's currency list into the catalog.
// Existing codes are left untouched.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/SscSPs/currency_exchange_app/internal/adapters/currencyapi"
	"github.com/SscSPs/currency_exchange_app/internal/core/services"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/SscSPs/currency_exchange_app/internal/platform/config"
	"github.com/SscSPs/currency_exchange_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/currency_exchange_app/pkg/database"
	"github.com/google/uuid"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
	slog.SetDefault(logger)

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Error("Failed to load config", slog.String("error", err.Error()))
		return 1
	}

	ctx := middleware.WithLogger(context.Background(), logger.With(slog.String("run_id", uuid.NewString())))

	dbPool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
	if err != nil {
		logger.Error("Failed to initialize database pool", slog.String("error", err.Error()))
		return 1
	}
	defer database.ClosePgxPool(dbPool)

	if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, logger); err != nil {
		logger.Error("Failed to apply migrations", slog.String("error", err.Error()))
		return 1
	}

	api := currencyapi.NewClient(cfg.CurrencyAPIKey, cfg.CurrencyAPIBaseURL, cfg.CurrencyAPITimeout)
	importer := services.NewCurrencyImportService(api, pgsql.NewRepositoryProvider(dbPool).CurrencyRepo)

	report, err := importer.ImportCurrencies(ctx)
	if report != nil {
		if report.Failure != "" {
			fmt.Fprintln(os.Stdout, report.Failure)
		}
		for _, entry := range report.Entries {
			fmt.Fprintln(os.Stdout, entry.Message)
		}
	}
	if err != nil {
		logger.Error("Currency import failed", slog.String("error", err.Error()))
		return 1
	}
	return 0
}
