package repositories

import (
	"context"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its surrogate key.
	FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error)

	// FindCurrencyByCode retrieves the currency with the given code (lowest id wins).
	FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error)

	// ListCurrencies retrieves the currencies matching every predicate of q.
	ListCurrencies(ctx context.Context, q domain.CurrencyQuery) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// GetOrCreateCurrency inserts currency unless a row with the same code exists.
	// The returned bool is true when a row was created.
	GetOrCreateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, bool, error)

	// DeleteCurrency removes a currency and every exchange rate referencing it, atomically.
	// It returns the number of exchange rates removed.
	DeleteCurrency(ctx context.Context, id int64) (int64, error)
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}

// CurrencyRepositoryWithTx extends CurrencyRepositoryFacade with transaction capabilities
type CurrencyRepositoryWithTx interface {
	CurrencyRepositoryFacade
	TransactionManager
}
