package models

// Currency is a row of the currencies table.
type Currency struct {
	ID             int64
	CurrencyName   string
	CurrencySymbol string
	CurrencyCode   string
	AuditFields
}
