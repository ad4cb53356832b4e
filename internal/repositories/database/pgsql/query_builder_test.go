package pgsql

import (
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `100\%`, escapeLike("100%"))
	assert.Equal(t, `a\_b`, escapeLike("a_b"))
	assert.Equal(t, `c:\\x`, escapeLike(`c:\x`))
	assert.Equal(t, "%eur%", containsPattern("eur"))
}

func TestBuildCurrencyListQuery(t *testing.T) {
	tests := []struct {
		name         string
		query        domain.CurrencyQuery
		wantContains []string
		wantArgs     []any
	}{
		{
			name:         "no predicates uses default ordering",
			query:        domain.CurrencyQuery{},
			wantContains: []string{"WHERE 1=1 ORDER BY currency_code ASC, id ASC"},
			wantArgs:     []any{},
		},
		{
			name:  "field filters are ANDed",
			query: domain.CurrencyQuery{Name: "dollar", Code: "us"},
			wantContains: []string{
				"AND currency_name ILIKE $1",
				"AND currency_code ILIKE $2",
			},
			wantArgs: []any{"%dollar%", "%us%"},
		},
		{
			name:  "each search term matches any field",
			query: domain.CurrencyQuery{Search: "euro, $"},
			wantContains: []string{
				"AND (currency_name ILIKE $1 OR currency_symbol ILIKE $1 OR currency_code ILIKE $1)",
				"AND (currency_name ILIKE $2 OR currency_symbol ILIKE $2 OR currency_code ILIKE $2)",
			},
			wantArgs: []any{"%euro%", "%$%"},
		},
		{
			name: "explicit ordering keeps id tiebreaker",
			query: domain.CurrencyQuery{
				Ordering: domain.ParseCurrencyOrdering("-currency_name,bogus,currency_symbol"),
			},
			wantContains: []string{"ORDER BY currency_name DESC, currency_symbol ASC, id ASC"},
			wantArgs:     []any{},
		},
		{
			name: "ordering by id is not duplicated",
			query: domain.CurrencyQuery{
				Ordering: []domain.OrderField{{Field: domain.CurrencyFieldID, Descending: true}},
			},
			wantContains: []string{"ORDER BY id DESC"},
			wantArgs:     []any{},
		},
		{
			name: "keyset paging",
			query: domain.CurrencyQuery{
				Symbol:   "%",
				Ordering: []domain.OrderField{{Field: domain.CurrencyFieldID}},
				AfterID:  40,
				Limit:    10,
			},
			wantContains: []string{
				"AND currency_symbol ILIKE $1",
				"AND id > $2",
				"ORDER BY id ASC LIMIT $3",
			},
			wantArgs: []any{`%\%%`, int64(40), 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args := buildCurrencyListQuery(tt.query)
			for _, want := range tt.wantContains {
				assert.Contains(t, query, want)
			}
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestBuildCurrencyListQuery_NoDuplicateIDTiebreaker(t *testing.T) {
	query, _ := buildCurrencyListQuery(domain.CurrencyQuery{
		Ordering: []domain.OrderField{{Field: domain.CurrencyFieldID}},
	})
	assert.NotContains(t, query, "id ASC, id ASC")
}

func TestBuildExchangeRateListQuery(t *testing.T) {
	from := time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2020, time.December, 31, 0, 0, 0, 0, time.UTC)

	query, args := buildExchangeRateListQuery(domain.ExchangeRateQuery{
		BaseCode:   "usd",
		TargetCode: "EUR",
		DateFrom:   &from,
		DateTo:     &to,
		Search:     "us",
		AfterID:    5,
		Limit:      10,
	})

	assert.Contains(t, query, "AND UPPER(b.currency_code) = UPPER($1)")
	assert.Contains(t, query, "AND UPPER(t.currency_code) = UPPER($2)")
	assert.Contains(t, query, "AND er.history_date >= $3")
	assert.Contains(t, query, "AND er.history_date <= $4")
	assert.Contains(t, query, "AND (b.currency_code ILIKE $5 OR t.currency_code ILIKE $5)")
	assert.Contains(t, query, "AND er.id > $6")
	assert.Contains(t, query, "ORDER BY er.id ASC LIMIT $7")
	assert.Equal(t, []any{"usd", "EUR", from, to, "%us%", int64(5), 10}, args)
}
