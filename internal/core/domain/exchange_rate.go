package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/shopspring/decimal"
)

// MinHistoryDate is the earliest date a historical rate may be recorded for.
var MinHistoryDate = time.Date(2010, time.June, 1, 0, 0, 0, 0, time.UTC)

// ProviderDateLayout is the date layout the rate provider expects.
const ProviderDateLayout = "2006-01-02"

// ExchangeRate stores the conversion rate from Base to Target on HistoryDate.
type ExchangeRate struct {
	ID          int64           `json:"id"`
	Base        Currency        `json:"base"`
	Target      Currency        `json:"target"`
	Rate        decimal.Decimal `json:"rate"` // units of Target per one unit of Base
	HistoryDate time.Time       `json:"historyDate"`
	AuditFields
}

// PendingExchangeRate is a rate that has resolved currencies but may still lack a rate value.
type PendingExchangeRate struct {
	Base        Currency
	Target      Currency
	Rate        decimal.Decimal
	HistoryDate time.Time
}

// NeedsFetch reports whether the rate has to be fetched from the provider.
func (p PendingExchangeRate) NeedsFetch() bool {
	return p.Rate.IsZero()
}

// DateOnly truncates t to midnight UTC of its calendar date.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// HistoryDateBounds returns the inclusive [min, max] range of accepted history dates
// relative to now. The upper bound moves forward one day every day.
func HistoryDateBounds(now time.Time) (time.Time, time.Time) {
	return MinHistoryDate, DateOnly(now).AddDate(0, 0, -1)
}

// ValidateHistoryDate checks date against HistoryDateBounds(now).
func ValidateHistoryDate(date, now time.Time) error {
	minDate, maxDate := HistoryDateBounds(now)
	d := DateOnly(date)
	if d.Before(minDate) {
		return fmt.Errorf("%w: history date %s is before %s",
			apperrors.ErrValidation, d.Format(ProviderDateLayout), minDate.Format(ProviderDateLayout))
	}
	if d.After(maxDate) {
		return fmt.Errorf("%w: history date %s is after %s",
			apperrors.ErrValidation, d.Format(ProviderDateLayout), maxDate.Format(ProviderDateLayout))
	}
	return nil
}
