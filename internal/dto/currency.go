package dto

import (
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
)

// ListCurrenciesParams are the query parameters of the public list endpoint.
type ListCurrenciesParams struct {
	CurrencyName   string `form:"currency_name"`
	CurrencySymbol string `form:"currency_symbol"`
	CurrencyCode   string `form:"currency_code"`
	Search         string `form:"search"`
	Ordering       string `form:"ordering"`
}

// ToCurrencyQuery translates the query parameters into typed query options.
func (p ListCurrenciesParams) ToCurrencyQuery() domain.CurrencyQuery {
	return domain.CurrencyQuery{
		Name:     p.CurrencyName,
		Symbol:   p.CurrencySymbol,
		Code:     p.CurrencyCode,
		Search:   p.Search,
		Ordering: domain.ParseCurrencyOrdering(p.Ordering),
	}
}

// CurrencyResponse is the public serialization of a currency.
type CurrencyResponse struct {
	ID             int64  `json:"id"`
	CurrencyName   string `json:"currency_name"`
	CurrencySymbol string `json:"currency_symbol"`
	CurrencyCode   string `json:"currency_code"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:             curr.ID,
		CurrencyName:   curr.Name,
		CurrencySymbol: curr.Symbol,
		CurrencyCode:   curr.Code,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs.
// The result is never nil so an empty catalog encodes as [].
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}

// AdminListCurrenciesParams are the query parameters of the admin currency listing.
type AdminListCurrenciesParams struct {
	CurrencyName   string `form:"currency_name"`
	CurrencySymbol string `form:"currency_symbol"`
	CurrencyCode   string `form:"currency_code"`
	Search         string `form:"search"`
	PageToken      string `form:"page_token"`
}

// AdminCurrencyResponse is the administrative view of a currency, audit fields included.
type AdminCurrencyResponse struct {
	CurrencyResponse
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     string    `json:"created_by"`
	LastUpdatedAt time.Time `json:"last_updated_at"`
	LastUpdatedBy string    `json:"last_updated_by"`
}

// ToAdminCurrencyResponse converts a domain.Currency to AdminCurrencyResponse DTO
func ToAdminCurrencyResponse(curr *domain.Currency) AdminCurrencyResponse {
	return AdminCurrencyResponse{
		CurrencyResponse: ToCurrencyResponse(curr),
		CreatedAt:        curr.CreatedAt,
		CreatedBy:        curr.CreatedBy,
		LastUpdatedAt:    curr.LastUpdatedAt,
		LastUpdatedBy:    curr.LastUpdatedBy,
	}
}

// AdminListCurrenciesResponse wraps one page of the admin currency listing.
type AdminListCurrenciesResponse struct {
	Currencies    []AdminCurrencyResponse `json:"currencies"`
	NextPageToken string                  `json:"next_page_token,omitempty"`
}

// ImportReportResponse is returned by the admin import trigger.
type ImportReportResponse struct {
	Created  int                  `json:"created"`
	Existing int                  `json:"existing"`
	Invalid  int                  `json:"invalid"`
	Failed   int                  `json:"failed"`
	Entries  []domain.ImportEntry `json:"entries"`
	Failure  string               `json:"failure,omitempty"`
}

// ToImportReportResponse converts a domain.ImportReport to ImportReportResponse DTO
func ToImportReportResponse(r *domain.ImportReport) ImportReportResponse {
	entries := r.Entries
	if entries == nil {
		entries = []domain.ImportEntry{}
	}
	return ImportReportResponse{
		Created:  r.Count(domain.ImportCreated),
		Existing: r.Count(domain.ImportExists),
		Invalid:  r.Count(domain.ImportInvalid),
		Failed:   r.Count(domain.ImportFailed),
		Entries:  entries,
		Failure:  r.Failure,
	}
}
