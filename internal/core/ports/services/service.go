package services

// ServiceContainer holds instances of all the application services.
// It is handed to the HTTP layer when routes are registered.
type ServiceContainer struct {
	Currency       CurrencySvcFacade
	CurrencyImport CurrencyImportSvc
	ExchangeRate   ExchangeRateSvcFacade
}
