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

const currencyColumns = `id, currency_name, currency_symbol, currency_code, created_at, created_by, last_updated_at, last_updated_by`

// currencyOrderColumns maps orderable wire fields to SQL columns.
var currencyOrderColumns = map[string]string{
	domain.CurrencyFieldID:     "id",
	domain.CurrencyFieldName:   "currency_name",
	domain.CurrencyFieldSymbol: "currency_symbol",
	domain.CurrencyFieldCode:   "currency_code",
}

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryWithTx {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryWithTx = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.ID,
		&c.CurrencyName,
		&c.CurrencySymbol,
		&c.CurrencyCode,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

// FindCurrencyByID retrieves a currency by its id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE id = $1;`
	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by id %d: %w", id, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByCode retrieves a currency by its code. Duplicate codes resolve to the lowest id.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1 ORDER BY id LIMIT 1;`
	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency by code %s: %w", code, err)
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// buildCurrencyListQuery translates q into SQL and positional arguments.
func buildCurrencyListQuery(q domain.CurrencyQuery) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + currencyColumns + ` FROM currencies WHERE 1=1`)

	args := []any{}
	argNum := 1

	for _, f := range []struct{ column, value string }{
		{"currency_name", q.Name},
		{"currency_symbol", q.Symbol},
		{"currency_code", q.Code},
	} {
		if f.value == "" {
			continue
		}
		sb.WriteString(fmt.Sprintf(" AND %s ILIKE $%d", f.column, argNum))
		args = append(args, containsPattern(f.value))
		argNum++
	}

	// every term has to hit one of the three columns
	for _, term := range q.SearchTerms() {
		sb.WriteString(fmt.Sprintf(
			" AND (currency_name ILIKE $%[1]d OR currency_symbol ILIKE $%[1]d OR currency_code ILIKE $%[1]d)", argNum))
		args = append(args, containsPattern(term))
		argNum++
	}

	if q.AfterID > 0 {
		sb.WriteString(fmt.Sprintf(" AND id > $%d", argNum))
		args = append(args, q.AfterID)
		argNum++
	}

	sb.WriteString(" ORDER BY ")
	sb.WriteString(currencyOrderClause(q.EffectiveOrdering()))

	if q.Limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT $%d", argNum))
		args = append(args, q.Limit)
	}

	return sb.String(), args
}

// currencyOrderClause renders ordering as SQL, skipping unknown fields and ending with id.
func currencyOrderClause(ordering []domain.OrderField) string {
	parts := make([]string, 0, len(ordering)+1)
	hasID := false
	for _, of := range ordering {
		col, ok := currencyOrderColumns[of.Field]
		if !ok {
			continue
		}
		dir := "ASC"
		if of.Descending {
			dir = "DESC"
		}
		parts = append(parts, col+" "+dir)
		hasID = hasID || col == "id"
	}
	if !hasID {
		parts = append(parts, "id ASC")
	}
	return strings.Join(parts, ", ")
}

// ListCurrencies retrieves the currencies matching q.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, q domain.CurrencyQuery) ([]domain.Currency, error) {
	query, args := buildCurrencyListQuery(q)
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// GetOrCreateCurrency returns the currency with currency.Code, inserting currency when none exists.
// A transaction-scoped advisory lock on the code serialises concurrent imports.
func (r *PgxCurrencyRepository) GetOrCreateCurrency(ctx context.Context, currency domain.Currency) (*domain.Currency, bool, error) {
	modelCurr := mapping.ToModelCurrency(currency)

	tx, err := r.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, modelCurr.CurrencyCode); err != nil {
		return nil, false, fmt.Errorf("failed to lock currency code %s: %w", modelCurr.CurrencyCode, err)
	}

	selectQuery := `SELECT ` + currencyColumns + ` FROM currencies WHERE currency_code = $1 ORDER BY id LIMIT 1;`
	existing, err := scanCurrency(tx.QueryRow(ctx, selectQuery, modelCurr.CurrencyCode))
	if err == nil {
		if err := r.Commit(ctx, tx); err != nil {
			return nil, false, err
		}
		domainCurr := mapping.ToDomainCurrency(existing)
		return &domainCurr, false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("failed to look up currency %s: %w", modelCurr.CurrencyCode, err)
	}

	insertQuery := `
		INSERT INTO currencies (currency_name, currency_symbol, currency_code, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id;
	`
	err = tx.QueryRow(ctx, insertQuery,
		modelCurr.CurrencyName,
		modelCurr.CurrencySymbol,
		modelCurr.CurrencyCode,
		modelCurr.CreatedAt,
		modelCurr.CreatedBy,
		modelCurr.LastUpdatedAt,
		modelCurr.LastUpdatedBy,
	).Scan(&modelCurr.ID)
	if err != nil {
		return nil, false, fmt.Errorf("failed to insert currency %s: %w", modelCurr.CurrencyCode, err)
	}

	if err := r.Commit(ctx, tx); err != nil {
		return nil, false, err
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, true, nil
}

// DeleteCurrency removes the currency and every exchange rate that references it in one transaction.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, id int64) (int64, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	tag, err := tx.Exec(ctx, `DELETE FROM exchange_rates WHERE base_currency_id = $1 OR target_currency_id = $1;`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete exchange rates of currency %d: %w", id, err)
	}
	removedRates := tag.RowsAffected()

	tag, err = tx.Exec(ctx, `DELETE FROM currencies WHERE id = $1;`, id)
	if err != nil {
		return 0, fmt.Errorf("failed to delete currency %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return 0, apperrors.ErrNotFound
	}

	if err := r.Commit(ctx, tx); err != nil {
		return 0, err
	}
	return removedRates, nil
}
