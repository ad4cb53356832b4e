package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/SscSPs/currency_exchange_app/internal/apperrors"
	"github.com/SscSPs/currency_exchange_app/internal/core/domain"
	portssvc "github.com/SscSPs/currency_exchange_app/internal/core/ports/services"
	"github.com/SscSPs/currency_exchange_app/internal/dto"
	"github.com/SscSPs/currency_exchange_app/internal/middleware"
	"github.com/SscSPs/currency_exchange_app/internal/utils/pagination"
	"github.com/gin-gonic/gin"
)

// adminCurrencyHandler exposes the read-only administrative currency view.
// Creating, editing and deleting currencies is not routed.
type adminCurrencyHandler struct {
	currencyService portssvc.CurrencyReaderSvc
	importService   portssvc.CurrencyImportSvc
	pageSize        int
}

func registerAdminCurrencyRoutes(
	rg *gin.RouterGroup,
	currencyService portssvc.CurrencyReaderSvc,
	importService portssvc.CurrencyImportSvc,
	pageSize int,
) {
	h := &adminCurrencyHandler{
		currencyService: currencyService,
		importService:   importService,
		pageSize:        pageSize,
	}

	currencies := rg.Group("/currencies")
	{
		currencies.GET("", h.listCurrencies)
		currencies.GET("/:id", h.getCurrency)
		currencies.POST("/import", h.importCurrencies)
	}
}

// listCurrencies godoc
// @Summary List currencies (admin)
// @Description Paged administrative listing with audit fields.
// @Tags admin
// @Produce  json
// @Param   currency_name   query string false "Name contains"
// @Param   currency_symbol query string false "Symbol contains"
// @Param   currency_code   query string false "Code contains"
// @Param   search          query string false "Terms matched against name, symbol and code"
// @Param   page_token      query string false "Token from a previous page"
// @Success 200 {object} dto.AdminListCurrenciesResponse
// @Failure 400 {object} map[string]string "Invalid query"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list currencies"
// @Security BearerAuth
// @Router /admin/currencies [get]
func (h *adminCurrencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.AdminListCurrenciesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	afterID, err := pagination.DecodeIDToken(params.PageToken)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	q := domain.CurrencyQuery{
		Name:     params.CurrencyName,
		Symbol:   params.CurrencySymbol,
		Code:     params.CurrencyCode,
		Search:   params.Search,
		Ordering: []domain.OrderField{{Field: domain.CurrencyFieldID}},
		AfterID:  afterID,
		Limit:    h.pageSize,
	}
	currencies, err := h.currencyService.ListCurrencies(c.Request.Context(), q)
	if err != nil {
		logger.Error("Failed to list currencies from service", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list currencies"})
		return
	}

	resp := dto.AdminListCurrenciesResponse{
		Currencies: make([]dto.AdminCurrencyResponse, len(currencies)),
	}
	for i := range currencies {
		resp.Currencies[i] = dto.ToAdminCurrencyResponse(&currencies[i])
	}
	if n := len(currencies); n > 0 {
		resp.NextPageToken = pagination.NextIDToken(n, h.pageSize, currencies[n-1].ID)
	}
	c.JSON(http.StatusOK, resp)
}

// getCurrency godoc
// @Summary Get a currency (admin)
// @Tags admin
// @Produce  json
// @Param   id path int true "Currency ID"
// @Success 200 {object} dto.AdminCurrencyResponse
// @Failure 400 {object} map[string]string "Invalid id"
// @Failure 404 {object} map[string]string "Currency not found"
// @Failure 500 {object} map[string]string "Failed to retrieve currency"
// @Security BearerAuth
// @Router /admin/currencies/{id} [get]
func (h *adminCurrencyHandler) getCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Currency id must be a positive integer"})
		return
	}

	currency, err := h.currencyService.GetCurrencyByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Currency not found"})
		} else {
			logger.Error("Failed to get currency from service", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve currency"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToAdminCurrencyResponse(currency))
}

// importCurrencies godoc
// @Summary Import the provider currency catalog
// @Description Get-or-creates every currency offered by the provider and returns a per-code report.
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.ImportReportResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Provider unavailable"
// @Failure 500 {object} map[string]string "Import failed"
// @Security BearerAuth
// @Router /admin/currencies/import [post]
func (h *adminCurrencyHandler) importCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	logger.Info("Received request to import currencies")

	report, err := h.importService.ImportCurrencies(c.Request.Context())
	if err != nil {
		if report != nil && report.Failure != "" {
			c.JSON(http.StatusBadGateway, gin.H{"error": report.Failure})
			return
		}
		logger.Error("Currency import failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Currency import failed"})
		return
	}

	c.JSON(http.StatusOK, dto.ToImportReportResponse(report))
}
