package dto

import (
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExchangeRateRequest defines the structure for creating a new exchange rate.
// Base and Target are currency codes. A missing or zero Rate is fetched from the provider.
type CreateExchangeRateRequest struct {
	Base        string          `json:"base" binding:"required,max=128"`
	Target      string          `json:"target" binding:"required,max=128"`
	HistoryDate string          `json:"history_date" binding:"required,datetime=2006-01-02"`
	Rate        decimal.Decimal `json:"rate"`
}

// ListExchangeRatesParams are the query parameters of the admin rate listing.
type ListExchangeRatesParams struct {
	Base      string `form:"base"`
	Target    string `form:"target"`
	DateFrom  string `form:"date_from" binding:"omitempty,datetime=2006-01-02"`
	DateTo    string `form:"date_to" binding:"omitempty,datetime=2006-01-02"`
	Search    string `form:"search"`
	PageToken string `form:"page_token"`
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	ID             int64     `json:"id"`
	CurrencyBase   string    `json:"currency_base"`
	CurrencyTarget string    `json:"currency_target"`
	Rate           float64   `json:"rate"`
	HistoryDate    string    `json:"history_date"`
	CreatedAt      time.Time `json:"created_at"`
	CreatedBy      string    `json:"created_by"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to ExchangeRateResponse DTO.
// dateFormat is a Go time layout.
func ToExchangeRateResponse(rate *domain.ExchangeRate, dateFormat string) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:             rate.ID,
		CurrencyBase:   rate.Base.Code,
		CurrencyTarget: rate.Target.Code,
		Rate:           rate.Rate.InexactFloat64(),
		HistoryDate:    rate.HistoryDate.Format(dateFormat),
		CreatedAt:      rate.CreatedAt,
		CreatedBy:      rate.CreatedBy,
	}
}

// ListExchangeRatesResponse wraps one page of the admin rate listing.
type ListExchangeRatesResponse struct {
	ExchangeRates []ExchangeRateResponse `json:"exchange_rates"`
	NextPageToken string                 `json:"next_page_token,omitempty"`
}

// ToListExchangeRateResponse converts a slice of domain.ExchangeRate to response DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRate, dateFormat string) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToExchangeRateResponse(&rate, dateFormat)
	}
	return responses
}

// CurrencyChoice is one selectable option of the exchange rate form.
type CurrencyChoice struct {
	ID   int64  `json:"id"`
	Code string `json:"code"`
}

// ExchangeRateFormResponse describes the constrained exchange rate creation form.
type ExchangeRateFormResponse struct {
	Currencies []CurrencyChoice `json:"currencies"`
	MinDate    string           `json:"min_date"`
	MaxDate    string           `json:"max_date"`
}
