package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/core/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	mockAPI          *MockCurrencyAPI
	service          portssvc.ExchangeRateSvcFacade
	now              time.Time
	usd              *domain.Currency
	eur              *domain.Currency
}

func (suite *ExchangeRateServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.mockAPI = new(MockCurrencyAPI)
	suite.now = time.Date(2024, time.May, 10, 12, 30, 0, 0, time.UTC)
	suite.service = services.NewExchangeRateService(
		suite.mockRateRepo,
		suite.mockCurrencyRepo,
		services.NewRateFetcher(suite.mockAPI),
		services.WithClock(func() time.Time { return suite.now }),
	)
	suite.usd = &domain.Currency{ID: 1, Code: "USD", Name: "US Dollar", Symbol: "$"}
	suite.eur = &domain.Currency{ID: 2, Code: "EUR", Name: "Euro", Symbol: "€"}
}

func (suite *ExchangeRateServiceTestSuite) expectCurrencies(ctx context.Context) {
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usd, nil)
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil)
}

func (suite *ExchangeRateServiceTestSuite) TestCreate_SuppliedRateNeverCallsProvider() {
	ctx := context.Background()
	creator := uuid.NewString()
	suite.expectCurrencies(ctx)
	req := dto.CreateExchangeRateRequest{
		Base:        "USD",
		Target:      "EUR",
		HistoryDate: "2024-05-09",
		Rate:        decimal.RequireFromString("0.93"),
	}

	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.Base.ID == 1 && r.Target.ID == 2 &&
			r.Rate.Equal(decimal.RequireFromString("0.93")) &&
			r.HistoryDate.Equal(time.Date(2024, time.May, 9, 0, 0, 0, 0, time.UTC)) &&
			r.CreatedBy == creator
	})).Return(func(_ context.Context, r domain.ExchangeRate) *domain.ExchangeRate {
		r.ID = 10
		return &r
	}, nil).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, req, creator)

	suite.Require().NoError(err)
	suite.Equal(int64(10), rate.ID)
	suite.mockAPI.AssertNotCalled(suite.T(), "HistoricalRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreate_MissingRateIsFetchedBeforeSave() {
	ctx := context.Background()
	suite.expectCurrencies(ctx)
	day := time.Date(2015, time.January, 2, 0, 0, 0, 0, time.UTC)

	suite.mockAPI.On("HistoricalRate", ctx, "USD", "EUR", day).
		Return(decimal.RequireFromString("0.8312"), nil).Once()
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.Rate.Equal(decimal.RequireFromString("0.8312"))
	})).Return(&domain.ExchangeRate{ID: 3, Rate: decimal.RequireFromString("0.8312")}, nil).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, dto.CreateExchangeRateRequest{
		Base: "USD", Target: "EUR", HistoryDate: "2015-01-02",
	}, "admin")

	suite.Require().NoError(err)
	suite.Equal(int64(3), rate.ID)
	suite.mockAPI.AssertExpectations(suite.T())
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ExchangeRateServiceTestSuite) TestCreate_UnprocessableFetchPersistsNothing() {
	ctx := context.Background()
	suite.expectCurrencies(ctx)

	suite.mockAPI.On("HistoricalRate", ctx, "USD", "EUR", mock.Anything).
		Return(decimal.Zero, apperrors.ErrRateUnprocessable).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, dto.CreateExchangeRateRequest{
		Base: "USD", Target: "EUR", HistoryDate: "2020-01-01", Rate: decimal.Zero,
	}, "admin")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.Equal("Failed to fetch currency exchange rate: Unprocessable Entity", err.Error())
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreate_HistoryDateBounds() {
	tests := []struct {
		name    string
		date    string
		wantErr bool
	}{
		{"day before minimum", "2010-05-31", true},
		{"minimum", "2010-06-01", false},
		{"yesterday", "2024-05-09", false},
		{"today", "2024-05-10", true},
		{"future", "2030-01-01", true},
		{"malformed", "10/05/2024", true},
	}

	for _, tt := range tests {
		suite.Run(tt.name, func() {
			suite.SetupTest()
			ctx := context.Background()
			suite.expectCurrencies(ctx)
			suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).
				Return(&domain.ExchangeRate{ID: 1}, nil).Maybe()

			_, err := suite.service.CreateExchangeRate(ctx, dto.CreateExchangeRateRequest{
				Base: "USD", Target: "EUR", HistoryDate: tt.date, Rate: decimal.NewFromInt(1),
			}, "admin")

			if tt.wantErr {
				suite.Require().Error(err)
				suite.ErrorIs(err, apperrors.ErrValidation)
				suite.mockRateRepo.AssertNotCalled(suite.T(), "SaveExchangeRate", mock.Anything, mock.Anything)
			} else {
				suite.NoError(err)
			}
		})
	}
}

func (suite *ExchangeRateServiceTestSuite) TestCreate_UnknownCurrency() {
	ctx := context.Background()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usd, nil)
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "ZZZ").Return(nil, apperrors.ErrNotFound)

	_, err := suite.service.CreateExchangeRate(ctx, dto.CreateExchangeRateRequest{
		Base: "USD", Target: "ZZZ", HistoryDate: "2020-01-01",
	}, "admin")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Contains(err.Error(), "target currency code 'ZZZ' not found")
	suite.mockAPI.AssertNotCalled(suite.T(), "HistoricalRate", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ExchangeRateServiceTestSuite) TestCreate_SameBaseAndTargetAllowed() {
	ctx := context.Background()
	suite.expectCurrencies(ctx)
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).
		Return(&domain.ExchangeRate{ID: 5}, nil).Once()

	_, err := suite.service.CreateExchangeRate(ctx, dto.CreateExchangeRateRequest{
		Base: "USD", Target: "USD", HistoryDate: "2020-01-01", Rate: decimal.NewFromInt(1),
	}, "admin")

	suite.NoError(err)
}

func (suite *ExchangeRateServiceTestSuite) TestCreate_SaveError() {
	ctx := context.Background()
	suite.expectCurrencies(ctx)
	suite.mockRateRepo.On("SaveExchangeRate", ctx, mock.AnythingOfType("domain.ExchangeRate")).
		Return(nil, assert.AnError).Once()

	rate, err := suite.service.CreateExchangeRate(ctx, dto.CreateExchangeRateRequest{
		Base: "USD", Target: "EUR", HistoryDate: "2020-01-01", Rate: decimal.NewFromInt(2),
	}, "admin")

	suite.Require().Error(err)
	suite.Nil(rate)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *ExchangeRateServiceTestSuite) TestHistoryDateBounds() {
	minDate, maxDate := suite.service.HistoryDateBounds()
	suite.Equal(domain.MinHistoryDate, minDate)
	suite.Equal(time.Date(2024, time.May, 9, 0, 0, 0, 0, time.UTC), maxDate)
}

func (suite *ExchangeRateServiceTestSuite) TestGetExchangeRateByID_NotFound() {
	ctx := context.Background()
	suite.mockRateRepo.On("FindExchangeRateByID", ctx, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetExchangeRateByID(ctx, 99)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ExchangeRateServiceTestSuite) TestListExchangeRates_Empty() {
	ctx := context.Background()
	q := domain.ExchangeRateQuery{BaseCode: "USD"}
	suite.mockRateRepo.On("ListExchangeRates", ctx, q).Return([]domain.ExchangeRate{}, nil).Once()

	rates, err := suite.service.ListExchangeRates(ctx, q)

	suite.Require().NoError(err)
	suite.NotNil(rates)
	suite.Empty(rates)
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
