package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a row of the exchange_rates table joined with both of its currencies.
type ExchangeRate struct {
	ID               int64
	BaseCurrencyID   int64
	TargetCurrencyID int64
	Rate             decimal.Decimal
	HistoryDate      time.Time
	AuditFields

	// Populated from the joined currencies rows on reads.
	BaseCurrency   Currency
	TargetCurrency Currency
}
