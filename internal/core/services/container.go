package services

import (
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, api providers.CurrencyAPI) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:       NewCurrencyService(repos.CurrencyRepo),
		CurrencyImport: NewCurrencyImportService(api, repos.CurrencyRepo),
		ExchangeRate: NewExchangeRateService(
			repos.ExchangeRateRepo,
			repos.CurrencyRepo,
			NewRateFetcher(api),
		),
	}
}
