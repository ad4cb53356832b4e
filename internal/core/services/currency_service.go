package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/SscSPs/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
)

// currencyService provides read access to the currency catalog.
type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(repo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo: repo,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// GetCurrencyByID retrieves a currency by its id.
func (s *currencyService) GetCurrencyByID(ctx context.Context, id int64) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("currency %d: %w", id, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to get currency by id", slog.Int64("currency_id", id))
		return nil, fmt.Errorf("failed to get currency %d: %w", id, err)
	}
	return currency, nil
}

// GetCurrencyByCode retrieves a currency by its code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, code string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("currency code '%s': %w", code, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to get currency by code", slog.String("currency_code", code))
		return nil, fmt.Errorf("failed to get currency %s: %w", code, err)
	}
	return currency, nil
}

// ListCurrencies retrieves the currencies matching q. No match is an empty slice.
func (s *currencyService) ListCurrencies(ctx context.Context, q domain.CurrencyQuery) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, q)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return currencies, nil
}

// DeleteCurrency removes a currency together with every exchange rate referencing it.
func (s *currencyService) DeleteCurrency(ctx context.Context, id int64) error {
	removedRates, err := s.currencyRepo.DeleteCurrency(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return fmt.Errorf("currency %d: %w", id, apperrors.ErrNotFound)
		}
		s.LogError(ctx, err, "Failed to delete currency", slog.Int64("currency_id", id))
		return fmt.Errorf("failed to delete currency %d: %w", id, err)
	}
	s.LogInfo(ctx, "Currency deleted",
		slog.Int64("currency_id", id),
		slog.Int64("removed_exchange_rates", removedRates))
	return nil
}
