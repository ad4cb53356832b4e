package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/SscSPs/currency_exchange_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// exchangeRateHandler handles the administrative exchange rate routes.
// Existing rates cannot be edited or deleted.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
	currencyService     portssvc.CurrencyReaderSvc
	dateFormat          string
	pageSize            int
}

func registerAdminExchangeRateRoutes(
	rg *gin.RouterGroup,
	exchangeRateService portssvc.ExchangeRateSvcFacade,
	currencyService portssvc.CurrencyReaderSvc,
	dateFormat string,
	pageSize int,
) {
	h := &exchangeRateHandler{
		exchangeRateService: exchangeRateService,
		currencyService:     currencyService,
		dateFormat:          dateFormat,
		pageSize:            pageSize,
	}

	rates := rg.Group("/exchange-rates")
	{
		rates.GET("", h.listExchangeRates)
		rates.POST("", h.createExchangeRate)
		rates.GET("/form", h.exchangeRateForm)
		rates.GET("/:id", h.getExchangeRate)
	}
}

// createExchangeRate godoc
// @Summary Create an exchange rate
// @Description Records a historical rate. When rate is omitted or zero it is fetched from the provider first.
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   exchangeRate body dto.CreateExchangeRateRequest true "Exchange rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid input or rate fetch failure"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create exchange rate"
// @Security BearerAuth
// @Router /admin/exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			logger.Warn("Exchange rate rejected", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create exchange rate in service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create exchange rate"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(rate, h.dateFormat))
}

// getExchangeRate godoc
// @Summary Get an exchange rate
// @Tags admin
// @Produce  json
// @Param   id path int true "Exchange rate ID"
// @Success 200 {object} dto.ExchangeRateResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Exchange rate not found"
// @Failure 500 {object} map[string]string "Failed to retrieve exchange rate"
// @Security BearerAuth
// @Router /admin/exchange-rates/{id} [get]
func (h *exchangeRateHandler) getExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Exchange rate id must be a positive integer"})
		return
	}

	rate, err := h.exchangeRateService.GetExchangeRateByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Exchange rate not found"})
		} else {
			logger.Error("Failed to get exchange rate from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve exchange rate"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToExchangeRateResponse(rate, h.dateFormat))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Tags admin
// @Produce  json
// @Param   base       query string false "Base currency code"
// @Param   target     query string false "Target currency code"
// @Param   date_from  query string false "Earliest history date (YYYY-MM-DD)"
// @Param   date_to    query string false "Latest history date (YYYY-MM-DD)"
// @Param   search     query string false "Terms matched against base and target codes"
// @Param   page_token query string false "Token from a previous page"
// @Success 200 {object} dto.ListExchangeRatesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 500 {object} map[string]string "Failed to list exchange rates"
// @Security BearerAuth
// @Router /admin/exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListExchangeRatesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	afterID, err := pagination.DecodeIDToken(params.PageToken)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := domain.ExchangeRateQuery{
		BaseCode:   params.Base,
		TargetCode: params.Target,
		DateFrom:   parseOptionalDate(params.DateFrom),
		DateTo:     parseOptionalDate(params.DateTo),
		Search:     params.Search,
		AfterID:    afterID,
		Limit:      h.pageSize,
	}
	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), q)
	if err != nil {
		logger.Error("Failed to list exchange rates from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list exchange rates"})
		return
	}

	resp := dto.ListExchangeRatesResponse{
		ExchangeRates: dto.ToListExchangeRateResponse(rates, h.dateFormat),
	}
	if n := len(rates); n > 0 {
		resp.NextPageToken = pagination.NextIDToken(n, h.pageSize, rates[n-1].ID)
	}
	c.JSON(http.StatusOK, resp)
}

// exchangeRateForm godoc
// @Summary Exchange rate form metadata
// @Description Selectable currencies and the accepted history date range for a new rate.
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.ExchangeRateFormResponse
// @Failure 500 {object} map[string]string "Failed to load form"
// @Security BearerAuth
// @Router /admin/exchange-rates/form [get]
func (h *exchangeRateHandler) exchangeRateForm(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), domain.CurrencyQuery{})
	if err != nil {
		logger.Error("Failed to list currencies for form", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load form"})
		return
	}

	minDate, maxDate := h.exchangeRateService.HistoryDateBounds()
	resp := dto.ExchangeRateFormResponse{
		Currencies: make([]dto.CurrencyChoice, len(currencies)),
		MinDate:    minDate.Format(domain.ProviderDateLayout),
		MaxDate:    maxDate.Format(domain.ProviderDateLayout),
	}
	for i, curr := range currencies {
		resp.Currencies[i] = dto.CurrencyChoice{ID: curr.ID, Code: curr.Code}
	}
	c.JSON(http.StatusOK, resp)
}

// parseOptionalDate parses a date already checked by the binding tags.
func parseOptionalDate(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse(domain.ProviderDateLayout, s)
	if err != nil {
		return nil
	}
	return &t
}
