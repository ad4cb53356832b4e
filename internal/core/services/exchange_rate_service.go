package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/platform/metrics"
)

// exchangeRateService provides business logic for exchange rates.
type exchangeRateService struct {
	BaseService
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
	fetcher      portssvc.RateFetcherSvc
}

// ExchangeRateServiceOption is a functional option for configuring the exchange rate service
type ExchangeRateServiceOption func(*exchangeRateService)

// WithClock replaces the wall clock used for the history date upper bound and audit stamps.
func WithClock(now func() time.Time) ExchangeRateServiceOption {
	return func(s *exchangeRateService) {
		s.clock = now
	}
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	currencyRepo portsrepo.CurrencyReader,
	fetcher portssvc.RateFetcherSvc,
	options ...ExchangeRateServiceOption,
) portssvc.ExchangeRateSvcFacade {
	svc := &exchangeRateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
		fetcher:      fetcher,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate validates the request, fetches the rate when it is missing and persists the row.
// Nothing is written when any step fails.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	historyDate, err := time.Parse(domain.ProviderDateLayout, req.HistoryDate)
	if err != nil {
		return nil, apperrors.NewValidationError(fmt.Sprintf("invalid history date '%s', expected YYYY-MM-DD", req.HistoryDate))
	}

	now := s.Now()
	if err := domain.ValidateHistoryDate(historyDate, now); err != nil {
		return nil, err
	}

	base, err := s.lookupCurrency(ctx, "base", req.Base)
	if err != nil {
		return nil, err
	}
	target, err := s.lookupCurrency(ctx, "target", req.Target)
	if err != nil {
		return nil, err
	}

	pending := domain.PendingExchangeRate{
		Base:        *base,
		Target:      *target,
		Rate:        req.Rate,
		HistoryDate: domain.DateOnly(historyDate),
	}
	fetched := pending.NeedsFetch()

	resolved, err := s.fetcher.ResolveRate(ctx, pending)
	if err != nil {
		return nil, err
	}

	rate := domain.ExchangeRate{
		Base:        resolved.Base,
		Target:      resolved.Target,
		Rate:        resolved.Rate,
		HistoryDate: resolved.HistoryDate,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}

	saved, err := s.rateRepo.SaveExchangeRate(ctx, rate)
	if err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate",
			slog.String("base", base.Code),
			slog.String("target", target.Code))
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}

	metrics.RecordExchangeRateCreated(fetched)
	s.LogInfo(ctx, "Exchange rate created",
		slog.Int64("exchange_rate_id", saved.ID),
		slog.String("base", base.Code),
		slog.String("target", target.Code),
		slog.String("rate", saved.Rate.String()),
		slog.Bool("fetched", fetched))
	return saved, nil
}

func (s *exchangeRateService) lookupCurrency(ctx context.Context, role, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError(fmt.Sprintf("%s currency code '%s' not found", role, code))
		}
		s.LogError(ctx, err, "Failed to look up currency", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to look up %s currency '%s': %w", role, code, err)
	}
	return currency, nil
}

// GetExchangeRateByID retrieves a single exchange rate.
func (s *exchangeRateService) GetExchangeRateByID(ctx context.Context, id int64) (*domain.ExchangeRate, error) {
	rate, err := s.rateRepo.FindExchangeRateByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("exchange rate %d: %w", id, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to get exchange rate", slog.Int64("exchange_rate_id", id))
		return nil, fmt.Errorf("failed to get exchange rate %d: %w", id, err)
	}
	return rate, nil
}

// ListExchangeRates retrieves the exchange rates matching q.
func (s *exchangeRateService) ListExchangeRates(ctx context.Context, q domain.ExchangeRateQuery) ([]domain.ExchangeRate, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx, q)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rates")
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}
	if rates == nil {
		rates = []domain.ExchangeRate{}
	}
	return rates, nil
}

// HistoryDateBounds returns the accepted history date range as of now.
func (s *exchangeRateService) HistoryDateBounds() (time.Time, time.Time) {
	return domain.HistoryDateBounds(s.Now())
}
