package services

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a specific currency by its id.
	GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves the currencies matching q. An empty catalog is not an error.
	ListCurrencies(ctx context.Context, q domain.CurrencyQuery) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// DeleteCurrency removes a currency together with its exchange rates.
	DeleteCurrency(ctx context.Context, id int64) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// CurrencyImportSvc pulls the provider catalog into the currencies table.
type CurrencyImportSvc interface {
	ImportCurrencies(ctx context.Context) (*domain.ImportReport, error)
}

// RateFetcherSvc resolves the rate of a pending exchange rate before it is persisted.
type RateFetcherSvc interface {
	ResolveRate(ctx context.Context, pending domain.PendingExchangeRate) (domain.PendingExchangeRate, error)
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	GetExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error)
	ListExchangeRates(ctx context.Context, q domain.ExchangeRateQuery) ([]domain.ExchangeRate, error)

	// HistoryDateBounds returns the currently accepted [min, max] history dates.
	HistoryDateBounds() (time.Time, time.Time)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate validates, fetches the rate when missing, then persists.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
