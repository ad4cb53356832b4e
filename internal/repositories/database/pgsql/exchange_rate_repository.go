package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	"github.com/SscSPs/currency_exchange_app/internal/models"
	"github.com/SscSPs/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const exchangeRateSelect = `
	SELECT er.id, er.base_currency_id, er.target_currency_id, er.rate, er.history_date,
		er.created_at, er.created_by, er.last_updated_at, er.last_updated_by,
		b.currency_name, b.currency_symbol, b.currency_code,
		t.currency_name, t.currency_symbol, t.currency_code
	FROM exchange_rates er
	JOIN currencies b ON b.id = er.base_currency_id
	JOIN currencies t ON t.id = er.target_currency_id`

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryWithTx {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateRepositoryWithTx = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (models.ExchangeRate, error) {
	var er models.ExchangeRate
	err := row.Scan(
		&er.ID,
		&er.BaseCurrencyID,
		&er.TargetCurrencyID,
		&er.Rate,
		&er.HistoryDate,
		&er.CreatedAt,
		&er.CreatedBy,
		&er.LastUpdatedAt,
		&er.LastUpdatedBy,
		&er.BaseCurrency.CurrencyName,
		&er.BaseCurrency.CurrencySymbol,
		&er.BaseCurrency.CurrencyCode,
		&er.TargetCurrency.CurrencyName,
		&er.TargetCurrency.CurrencySymbol,
		&er.TargetCurrency.CurrencyCode,
	)
	er.BaseCurrency.ID = er.BaseCurrencyID
	er.TargetCurrency.ID = er.TargetCurrencyID
	return er, err
}

// SaveExchangeRate inserts a new exchange rate. Both currencies must already exist.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) (*domain.ExchangeRate, error) {
	modelRate := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (base_currency_id, target_currency_id, rate, history_date, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id;
	`
	err := r.Pool.QueryRow(ctx, query,
		modelRate.BaseCurrencyID,
		modelRate.TargetCurrencyID,
		modelRate.Rate,
		modelRate.HistoryDate,
		modelRate.CreatedAt,
		modelRate.CreatedBy,
		modelRate.LastUpdatedAt,
		modelRate.LastUpdatedBy,
	).Scan(&modelRate.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to save exchange rate %s->%s: %w",
			modelRate.BaseCurrency.CurrencyCode, modelRate.TargetCurrency.CurrencyCode, err)
	}

	saved := mapping.ToDomainExchangeRate(modelRate)
	return &saved, nil
}

// FindExchangeRateByID retrieves a single exchange rate with both currencies.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error) {
	query := exchangeRateSelect + ` WHERE er.id = $1;`
	modelRate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find exchange rate by id %d: %w", id, err)
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// buildExchangeRateListQuery translates q into SQL and positional arguments.
func buildExchangeRateListQuery(q domain.ExchangeRateQuery) (string, []any) {
	var sb strings.Builder
	sb.WriteString(exchangeRateSelect)
	sb.WriteString(" WHERE 1=1")

	args := []any{}
	argNum := 1

	if q.BaseCode != "" {
		sb.WriteString(fmt.Sprintf(" AND UPPER(b.currency_code) = UPPER($%d)", argNum))
		args = append(args, q.BaseCode)
		argNum++
	}
	if q.TargetCode != "" {
		sb.WriteString(fmt.Sprintf(" AND UPPER(t.currency_code) = UPPER($%d)", argNum))
		args = append(args, q.TargetCode)
		argNum++
	}
	if q.DateFrom != nil {
		sb.WriteString(fmt.Sprintf(" AND er.history_date >= $%d", argNum))
		args = append(args, domain.DateOnly(*q.DateFrom))
		argNum++
	}
	if q.DateTo != nil {
		sb.WriteString(fmt.Sprintf(" AND er.history_date <= $%d", argNum))
		args = append(args, domain.DateOnly(*q.DateTo))
		argNum++
	}
	for _, term := range q.SearchTerms() {
		sb.WriteString(fmt.Sprintf(" AND (b.currency_code ILIKE $%[1]d OR t.currency_code ILIKE $%[1]d)", argNum))
		args = append(args, containsPattern(term))
		argNum++
	}
	if q.AfterID > 0 {
		sb.WriteString(fmt.Sprintf(" AND er.id > $%d", argNum))
		args = append(args, q.AfterID)
		argNum++
	}

	sb.WriteString(" ORDER BY er.id ASC")

	if q.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argNum))
		args = append(args, q.Limit)
	}

	return sb.String(), args
}

// ListExchangeRates retrieves exchange rates matching q ordered by id.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context, q domain.ExchangeRateQuery) ([]domain.ExchangeRate, error) {
	query, args := buildExchangeRateListQuery(q)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		return scanExchangeRate(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}
