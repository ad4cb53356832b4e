package domain

import "time"

// ExchangeRateQuery holds the optional predicates for the administrative rate listing.
type ExchangeRateQuery struct {
	BaseCode   string // exact, case-insensitive
	TargetCode string // exact, case-insensitive
	DateFrom   *time.Time
	DateTo     *time.Time
	Search     string // substring over base and target codes

	AfterID int64
	Limit   int
}

// SearchTerms splits Search on whitespace and commas.
func (q ExchangeRateQuery) SearchTerms() []string {
	return splitSearchTerms(q.Search)
}
