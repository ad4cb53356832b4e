package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	"github.com/SscSPs/currency_exchange_app/internal/core/ports/providers"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
)

const rateFetchFailedMsg = "Failed to fetch currency exchange rate"

type rateFetcher struct {
	BaseService
	provider providers.HistoricalRateProvider
}

// NewRateFetcher creates the pre-persistence step that fills in missing rates.
func NewRateFetcher(provider providers.HistoricalRateProvider) portssvc.RateFetcherSvc {
	return &rateFetcher{provider: provider}
}

var _ portssvc.RateFetcherSvc = (*rateFetcher)(nil)

// ResolveRate returns pending unchanged when it already carries a non-zero rate,
// otherwise it asks the provider once. Failures are validation errors.
func (f *rateFetcher) ResolveRate(ctx context.Context, pending domain.PendingExchangeRate) (domain.PendingExchangeRate, error) {
	if !pending.NeedsFetch() {
		return pending, nil
	}

	rate, err := f.provider.HistoricalRate(ctx, pending.Base.Code, pending.Target.Code, pending.HistoryDate)
	if err != nil {
		f.LogError(ctx, err, "Historical rate lookup failed",
			slog.String("base", pending.Base.Code),
			slog.String("target", pending.Target.Code),
			slog.String("history_date", pending.HistoryDate.Format(domain.ProviderDateLayout)))
		if errors.Is(err, apperrors.ErrRateUnprocessable) {
			return pending, apperrors.NewValidationErrorWithCause(rateFetchFailedMsg, apperrors.ErrRateUnprocessable)
		}
		return pending, apperrors.NewValidationErrorWithCause(rateFetchFailedMsg, err)
	}

	pending.Rate = rate
	return pending, nil
}
