package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sort"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/platform/metrics"
)

// ImportActor is recorded as created_by on currencies created by an import run.
const ImportActor = "pull_currencies"

type currencyImportService struct {
	BaseService
	provider     providers.CurrencyListProvider
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyImportService creates the one-shot catalog import job.
func NewCurrencyImportService(provider providers.CurrencyListProvider, repo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencyImportSvc {
	return &currencyImportService{
		provider:     provider,
		currencyRepo: repo,
	}
}

var _ portssvc.CurrencyImportSvc = (*currencyImportService)(nil)

// ImportCurrencies fetches the provider catalog and get-or-creates every entry by code.
// When the catalog cannot be fetched nothing is written; the report carries the
// failure line and an error is returned alongside it.
func (s *currencyImportService) ImportCurrencies(ctx context.Context) (*domain.ImportReport, error) {
	catalog, err := s.provider.ListCurrencies(ctx)
	if err != nil {
		failure := fmt.Sprintf("Failed to fetch data from the API: %v", err)
		var fetchErr *apperrors.ExternalFetchError
		if errors.As(err, &fetchErr) {
			failure = fmt.Sprintf("Failed to fetch data from the API. Status code: %d", fetchErr.StatusCode)
		}
		s.LogError(ctx, err, "Currency import aborted")
		return &domain.ImportReport{Failure: failure},
			apperrors.NewAppError(http.StatusBadGateway, "Failed to fetch data from the API", err)
	}

	codes := make([]string, 0, len(catalog))
	for code := range catalog {
		codes = append(codes, code)
	}
	sort.Strings(codes)

	report := &domain.ImportReport{Entries: make([]domain.ImportEntry, 0, len(codes))}
	for _, code := range codes {
		entry := s.importOne(ctx, code, catalog[code])
		metrics.RecordImportEntry(string(entry.Outcome))
		report.Entries = append(report.Entries, entry)
	}

	s.LogInfo(ctx, "Currency import finished",
		slog.Int("created", report.Count(domain.ImportCreated)),
		slog.Int("existing", report.Count(domain.ImportExists)),
		slog.Int("invalid", report.Count(domain.ImportInvalid)),
		slog.Int("failed", report.Count(domain.ImportFailed)))
	return report, nil
}

func (s *currencyImportService) importOne(ctx context.Context, code string, pc domain.ProviderCurrency) domain.ImportEntry {
	if pc.Name == "" {
		return domain.ImportEntry{
			Code:    code,
			Outcome: domain.ImportInvalid,
			Message: fmt.Sprintf("Invalid currency name for code %s", code),
		}
	}

	// Existing codes are reported as is, whatever the provider now sends for them.
	existing, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	switch {
	case err == nil:
		return existsEntry(code, existing)
	case !errors.Is(err, apperrors.ErrNotFound):
		return s.failedEntry(ctx, code, err)
	}

	currency := domain.Currency{
		Name:        pc.Name,
		Symbol:      pc.Symbol,
		Code:        code,
		AuditFields: domain.NewAuditFields(ImportActor, s.Now()),
	}
	if err := currency.Validate(); err != nil {
		return domain.ImportEntry{
			Code:    code,
			Outcome: domain.ImportInvalid,
			Message: fmt.Sprintf("Invalid currency data for code %s: %v", code, err),
		}
	}

	stored, created, err := s.currencyRepo.GetOrCreateCurrency(ctx, currency)
	if err != nil {
		return s.failedEntry(ctx, code, err)
	}
	if !created {
		// another import won the race for this code
		return existsEntry(code, stored)
	}
	return domain.ImportEntry{
		Code:    code,
		Outcome: domain.ImportCreated,
		Message: fmt.Sprintf("Successfully created Currency: %s", stored.Name),
	}
}

func existsEntry(code string, stored *domain.Currency) domain.ImportEntry {
	return domain.ImportEntry{
		Code:    code,
		Outcome: domain.ImportExists,
		Message: fmt.Sprintf("Currency already exists: %s", stored.Name),
	}
}

func (s *currencyImportService) failedEntry(ctx context.Context, code string, err error) domain.ImportEntry {
	s.LogError(ctx, err, "Failed to import currency", slog.String("currency_code", code))
	return domain.ImportEntry{
		Code:    code,
		Outcome: domain.ImportFailed,
		Message: fmt.Sprintf("Failed to save currency %s: %v", code, err),
	}
}
