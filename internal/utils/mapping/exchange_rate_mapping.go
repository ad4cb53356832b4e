package mapping

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/models"
)

// ToModelExchangeRate converts a domain ExchangeRate to a model ExchangeRate
func ToModelExchangeRate(d domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ID:               d.ID,
		BaseCurrencyID:   d.Base.ID,
		TargetCurrencyID: d.Target.ID,
		Rate:             d.Rate,
		HistoryDate:      domain.DateOnly(d.HistoryDate),
		AuditFields:      ToModelAuditFields(d.AuditFields),
		BaseCurrency:     ToModelCurrency(d.Base),
		TargetCurrency:   ToModelCurrency(d.Target),
	}
}

// ToDomainExchangeRate converts a model ExchangeRate to a domain ExchangeRate
func ToDomainExchangeRate(m models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ID:          m.ID,
		Base:        ToDomainCurrency(m.BaseCurrency),
		Target:      ToDomainCurrency(m.TargetCurrency),
		Rate:        m.Rate,
		HistoryDate: domain.DateOnly(m.HistoryDate),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainExchangeRateSlice converts a slice of model ExchangeRates to domain ExchangeRates
func ToDomainExchangeRateSlice(ms []models.ExchangeRate) []domain.ExchangeRate {
	ds := make([]domain.ExchangeRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRate(m)
	}
	return ds
}
