package providers

import (
	"context"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyListProvider returns the provider's catalog keyed by currency code.
type CurrencyListProvider interface {
	ListCurrencies(ctx context.Context) (map[string]domain.ProviderCurrency, error)
}

// HistoricalRateProvider returns the base→target rate for a past date.
// Implementations return apperrors.ErrRateUnprocessable for HTTP 422.
type HistoricalRateProvider interface {
	HistoricalRate(ctx context.Context, baseCode, targetCode string, date time.Time) (decimal.Decimal, error)
}

// CurrencyAPI combines both provider endpoints.
type CurrencyAPI interface {
	CurrencyListProvider
	HistoricalRateProvider
}
