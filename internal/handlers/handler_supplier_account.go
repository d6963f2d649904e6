package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/supplier_ledger/internal/apperrors"
	"github.com/SscSPs/supplier_ledger/internal/core/ledger"
	portssvc "github.com/SscSPs/supplier_ledger/internal/core/ports/services"
	"github.com/SscSPs/supplier_ledger/internal/dto"
	"github.com/SscSPs/supplier_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/tidwall/gjson"
)

// supplierAccountHandler handles HTTP requests for supplier statements and balances
type supplierAccountHandler struct {
	supplierAccountService portssvc.SupplierAccountSvcFacade
	rebaseByDefault        bool
}

// newSupplierAccountHandler creates a new supplierAccountHandler
func newSupplierAccountHandler(svc portssvc.SupplierAccountSvcFacade, rebaseByDefault bool) *supplierAccountHandler {
	return &supplierAccountHandler{
		supplierAccountService: svc,
		rebaseByDefault:        rebaseByDefault,
	}
}

// registerSupplierAccountRoutes registers routes related to supplier accounts
func registerSupplierAccountRoutes(rg *gin.RouterGroup, svc portssvc.SupplierAccountSvcFacade, rebaseByDefault bool) {
	h := newSupplierAccountHandler(svc, rebaseByDefault)

	suppliers := rg.Group("/suppliers")
	{
		suppliers.GET("/balances", h.listSupplierBalances)
		suppliers.GET("/:supplierID/statement", h.getSupplierStatement)
	}

	rg.POST("/statements", h.computeStatement)
}

// getSupplierStatement godoc
// @Summary Get supplier statement
// @Description Builds the chronological ledger of a supplier with running balances and a summary
// @Tags suppliers
// @Produce json
// @Param supplierID path string true "Supplier ID"
// @Param fromDate query string false "Start date (YYYY-MM-DD)"
// @Param toDate query string false "End date (YYYY-MM-DD)"
// @Param rebase query bool false "Carry the balance before fromDate into the opening row"
// @Param branchID query string false "Only include transactions of this branch"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Supplier not found"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Router /suppliers/{supplierID}/statement [get]
func (h *supplierAccountHandler) getSupplierStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	supplierID := c.Param("supplierID")
	if supplierID == "" {
		logger.Error("Supplier ID missing from path for getSupplierStatement")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Supplier ID required in path"})
		return
	}

	var query dto.StatementQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		logger.Warn("Invalid statement query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters. Dates must use YYYY-MM-DD"})
		return
	}

	period, err := query.Period()
	if err != nil {
		logger.Warn("Invalid statement period",
			slog.String("fromDate", query.FromDate),
			slog.String("toDate", query.ToDate),
			slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": periodErrorMessage(err)})
		return
	}

	opts := ledger.StatementOptions{
		Period:             period,
		RebaseToRangeStart: query.RebaseOr(h.rebaseByDefault),
		BranchID:           query.BranchID,
	}

	logger = logger.With(
		slog.String("supplier_id", supplierID),
		slog.String("fromDate", query.FromDate),
		slog.String("toDate", query.ToDate),
		slog.Bool("rebase", opts.RebaseToRangeStart),
	)
	logger.Info("Received request to generate supplier statement")

	stmt, err := h.supplierAccountService.GetStatement(c.Request.Context(), supplierID, opts)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			logger.Warn("Supplier not found")
			c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		} else {
			logger.Error("Failed to generate supplier statement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate supplier statement"})
		}
		return
	}

	logger.Info("Supplier statement generated successfully", slog.Int("entry_count", len(stmt.Entries)))
	c.JSON(http.StatusOK, dto.ToStatementResponse(*stmt))
}

// listSupplierBalances godoc
// @Summary List supplier balances
// @Description Projects opening, debit, credit and current balance for every supplier
// @Tags suppliers
// @Produce json
// @Param branchID query string false "Only count transactions of this branch"
// @Success 200 {object} dto.SupplierBalancesResponse
// @Failure 500 {object} map[string]string "Failed to list balances"
// @Router /suppliers/balances [get]
func (h *supplierAccountHandler) listSupplierBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	branchID := c.Query("branchID")

	logger = logger.With(slog.String("branch_id", branchID))
	logger.Info("Received request to list supplier balances")

	rows, err := h.supplierAccountService.ListBalances(c.Request.Context(), branchID)
	if err != nil {
		logger.Error("Failed to list supplier balances", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list supplier balances"})
		return
	}

	logger.Info("Supplier balances listed successfully", slog.Int("row_count", len(rows)))
	c.JSON(http.StatusOK, dto.ToSupplierBalancesResponse(rows, branchID))
}

// computeStatement godoc
// @Summary Compute a statement from supplied records
// @Description Builds a statement over the supplier, purchases and vouchers in the request body without reading storage. Field names may use any supported spelling.
// @Tags statements
// @Accept json
// @Produce json
// @Param request body dto.ComputeStatementRequest true "Supplier, purchases, vouchers and statement options"
// @Success 200 {object} dto.StatementResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 500 {object} map[string]string "Failed to generate statement"
// @Router /statements [post]
func (h *supplierAccountHandler) computeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	body, err := c.GetRawData()
	if err != nil || !gjson.ValidBytes(body) {
		logger.Warn("Invalid compute statement body")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Request body must be valid JSON"})
		return
	}

	input, err := decodeComputeStatementRequest(body, h.rebaseByDefault)
	if err != nil {
		logger.Warn("Invalid compute statement request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": periodErrorMessage(err)})
		return
	}

	logger = logger.With(
		slog.String("supplier_id", input.supplier.SupplierID),
		slog.Int("purchase_count", len(input.purchases)),
		slog.Int("voucher_count", len(input.vouchers)),
	)
	logger.Info("Received request to compute supplier statement")

	stmt, err := h.supplierAccountService.ComputeStatement(c.Request.Context(), input.supplier, input.purchases, input.vouchers, input.opts)
	if err != nil {
		logger.Error("Failed to compute supplier statement", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute supplier statement"})
		return
	}

	c.JSON(http.StatusOK, dto.ToStatementResponse(*stmt))
}

// periodErrorMessage keeps client-facing messages for known input errors.
func periodErrorMessage(err error) string {
	switch {
	case errors.Is(err, apperrors.ErrInvalidDateRange):
		return apperrors.ErrInvalidDateRange.Error()
	case errors.Is(err, apperrors.ErrValidation):
		return err.Error()
	default:
		return "Invalid input"
	}
}
