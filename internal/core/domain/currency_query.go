package domain

import (
	"strings"
	"unicode"
)

// Orderable currency fields, named as they appear on the wire.
const (
	CurrencyFieldID     = "id"
	CurrencyFieldName   = "currency_name"
	CurrencyFieldSymbol = "currency_symbol"
	CurrencyFieldCode   = "currency_code"
)

var orderableCurrencyFields = map[string]bool{
	CurrencyFieldID:     true,
	CurrencyFieldName:   true,
	CurrencyFieldSymbol: true,
	CurrencyFieldCode:   true,
}

// DefaultCurrencyOrdering is applied when no valid ordering is requested.
var DefaultCurrencyOrdering = []OrderField{{Field: CurrencyFieldCode}}

// OrderField is a single ordering term.
type OrderField struct {
	Field      string
	Descending bool
}

// CurrencyQuery holds the optional predicates for listing currencies.
// Empty strings mean "not applied".
type CurrencyQuery struct {
	Name   string // case-insensitive substring
	Symbol string // case-insensitive substring
	Code   string // case-insensitive substring
	Search string // free text over name, symbol and code
	// Ordering falls back to DefaultCurrencyOrdering when empty.
	Ordering []OrderField

	// Keyset paging, zero values disable it.
	AfterID int64
	Limit   int
}

// SearchTerms splits Search on whitespace and commas.
func (q CurrencyQuery) SearchTerms() []string {
	return splitSearchTerms(q.Search)
}

// EffectiveOrdering returns the ordering to apply.
func (q CurrencyQuery) EffectiveOrdering() []OrderField {
	if len(q.Ordering) == 0 {
		return DefaultCurrencyOrdering
	}
	return q.Ordering
}

// ParseCurrencyOrdering parses a comma separated ordering parameter such as
// "-currency_name,currency_code". Unknown fields are dropped.
func ParseCurrencyOrdering(raw string) []OrderField {
	var fields []OrderField
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		desc := strings.HasPrefix(part, "-")
		name := strings.TrimPrefix(part, "-")
		if !orderableCurrencyFields[name] {
			continue
		}
		fields = append(fields, OrderField{Field: name, Descending: desc})
	}
	return fields
}

func splitSearchTerms(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
}
