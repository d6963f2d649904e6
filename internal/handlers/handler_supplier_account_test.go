package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/supplier_ledger/internal/apperrors"
	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/core/ledger"
	portssvc "github.com/SscSPs/supplier_ledger/internal/core/ports/services"
	"github.com/SscSPs/supplier_ledger/internal/dto"
	"github.com/SscSPs/supplier_ledger/internal/handlers"
	"github.com/SscSPs/supplier_ledger/internal/middleware"
	"github.com/SscSPs/supplier_ledger/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock SupplierAccountService ---
type MockSupplierAccountService struct {
	mock.Mock
}

func (m *MockSupplierAccountService) GetStatement(ctx context.Context, supplierID string, opts ledger.StatementOptions) (*domain.Statement, error) {
	args := m.Called(ctx, supplierID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

func (m *MockSupplierAccountService) ComputeStatement(
	ctx context.Context,
	supplier domain.Supplier,
	purchases []domain.RawPurchase,
	vouchers []domain.RawPaymentVoucher,
	opts ledger.StatementOptions,
) (*domain.Statement, error) {
	args := m.Called(ctx, supplier, purchases, vouchers, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Statement), args.Error(1)
}

func (m *MockSupplierAccountService) ListBalances(ctx context.Context, branchID string) ([]domain.AccountBalance, error) {
	args := m.Called(ctx, branchID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AccountBalance), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.SupplierAccountSvcFacade = (*MockSupplierAccountService)(nil)

func day(d int) time.Time {
	return time.Date(2024, time.March, d, 0, 0, 0, 0, time.UTC)
}

func amount(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func sampleStatement(opts ledger.StatementOptions) *domain.Statement {
	supplier := domain.Supplier{SupplierID: "sup-1", Name: "Acme Traders", OpeningBalance: decimal.NewFromInt(1000)}
	purchases := []domain.RawPurchase{
		{PurchaseID: "p1", SupplierID: "sup-1", InvoiceNumber: "INV-1", Date: day(2), Total: amount("400")},
		{PurchaseID: "p2", SupplierID: "sup-1", InvoiceNumber: "INV-2", Date: day(7), Total: amount("100")},
	}
	vouchers := []domain.RawPaymentVoucher{
		{VoucherID: "v1", SupplierID: "sup-1", VoucherNumber: "PV-1", Date: day(12), Amount: amount("250")},
	}
	stmt := ledger.BuildStatement(supplier, purchases, vouchers, opts)
	return &stmt
}

// --- Test Suite Setup ---

type SupplierAccountHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockService *MockSupplierAccountService
}

func (suite *SupplierAccountHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.mockService = new(MockSupplierAccountService)

	cfg := &config.Config{IsProduction: true, RateLimit: "1000-M"}
	container := &portssvc.ServiceContainer{SupplierAccount: suite.mockService}

	suite.router = gin.New()
	suite.router.Use(middleware.StructuredLoggingMiddleware(slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))))
	suite.Require().NoError(handlers.RegisterRoutes(suite.router, cfg, container))
}

func (suite *SupplierAccountHandlerTestSuite) serve(method, url string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req, _ = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req, _ = http.NewRequest(method, url, nil)
	}
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *SupplierAccountHandlerTestSuite) errorMessage(w *httptest.ResponseRecorder) string {
	var body map[string]string
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &body))
	return body["error"]
}

// --- Test Cases ---

func (suite *SupplierAccountHandlerTestSuite) TestHealth() {
	w := suite.serve(http.MethodGet, "/health", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.Equal("OK", w.Body.String())
}

func (suite *SupplierAccountHandlerTestSuite) TestGetStatement_Success() {
	suite.mockService.On("GetStatement", mock.Anything, "sup-1", ledger.StatementOptions{}).
		Return(sampleStatement(ledger.StatementOptions{}), nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/suppliers/sup-1/statement", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.StatementResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("sup-1", resp.Supplier.SupplierID)
	suite.Require().Len(resp.Entries, 4)
	suite.Equal("OPENING_BALANCE", resp.Entries[0].Kind)
	suite.Equal("2024-03-02", resp.Entries[1].Date)
	suite.True(decimal.NewFromInt(1250).Equal(resp.Summary.ClosingBalance))
	suite.Equal("PAYABLE", resp.Summary.Status)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SupplierAccountHandlerTestSuite) TestGetStatement_PassesWindowAndRebase() {
	suite.mockService.On("GetStatement", mock.Anything, "sup-1", mock.MatchedBy(func(opts ledger.StatementOptions) bool {
		return opts.Period.From != nil && opts.Period.From.Equal(day(5)) &&
			opts.Period.To != nil && opts.Period.To.Equal(day(31)) &&
			opts.RebaseToRangeStart && opts.BranchID == "north"
	})).Return(sampleStatement(ledger.StatementOptions{}), nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/suppliers/sup-1/statement?fromDate=2024-03-05&toDate=2024-03-31&rebase=true&branchID=north", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SupplierAccountHandlerTestSuite) TestGetStatement_InvalidDate() {
	w := suite.serve(http.MethodGet, "/api/v1/suppliers/sup-1/statement?fromDate=05-03-2024", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockService.AssertNotCalled(suite.T(), "GetStatement", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SupplierAccountHandlerTestSuite) TestGetStatement_InvertedRange() {
	w := suite.serve(http.MethodGet, "/api/v1/suppliers/sup-1/statement?fromDate=2024-03-10&toDate=2024-03-01", nil)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("fromDate must be before or equal to toDate", suite.errorMessage(w))
	suite.mockService.AssertNotCalled(suite.T(), "GetStatement", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *SupplierAccountHandlerTestSuite) TestGetStatement_NotFound() {
	suite.mockService.On("GetStatement", mock.Anything, "missing", mock.Anything).
		Return(nil, errors.Join(errors.New("failed to find supplier missing"), apperrors.ErrNotFound)).Once()

	w := suite.serve(http.MethodGet, "/api/v1/suppliers/missing/statement", nil)

	suite.Equal(http.StatusNotFound, w.Code)
	suite.Equal("Supplier not found", suite.errorMessage(w))
}

func (suite *SupplierAccountHandlerTestSuite) TestGetStatement_ServiceError() {
	suite.mockService.On("GetStatement", mock.Anything, "sup-1", mock.Anything).
		Return(nil, errors.New("db down")).Once()

	w := suite.serve(http.MethodGet, "/api/v1/suppliers/sup-1/statement", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *SupplierAccountHandlerTestSuite) TestListBalances_Success() {
	rows := []domain.AccountBalance{
		{SupplierID: "sup-1", SupplierName: "Acme", OpeningBalance: decimal.NewFromInt(1000), TotalDebit: decimal.NewFromInt(500), TotalCredit: decimal.NewFromInt(250), CurrentBalance: decimal.NewFromInt(1250), Status: domain.Payable},
		{SupplierID: "sup-2", SupplierName: "Beta", OpeningBalance: decimal.Zero, TotalDebit: decimal.Zero, TotalCredit: decimal.NewFromInt(40), CurrentBalance: decimal.NewFromInt(-40), Status: domain.Overpaid},
	}
	suite.mockService.On("ListBalances", mock.Anything, "north").Return(rows, nil).Once()

	w := suite.serve(http.MethodGet, "/api/v1/suppliers/balances?branchID=north", nil)

	suite.Equal(http.StatusOK, w.Code)
	var resp dto.SupplierBalancesResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal("north", resp.BranchID)
	suite.Require().Len(resp.Rows, 2)
	suite.Equal("sup-2", resp.Rows[1].SupplierID)
	suite.True(decimal.NewFromInt(1210).Equal(resp.Totals.CurrentBalance))
}

func (suite *SupplierAccountHandlerTestSuite) TestListBalances_ServiceError() {
	suite.mockService.On("ListBalances", mock.Anything, "").Return(nil, errors.New("db down")).Once()

	w := suite.serve(http.MethodGet, "/api/v1/suppliers/balances", nil)

	suite.Equal(http.StatusInternalServerError, w.Code)
}

func (suite *SupplierAccountHandlerTestSuite) TestComputeStatement_DecodesAliases() {
	body := []byte(`{
		"supplier": {"supplier_id": "sup-1", "supplierName": "Acme Traders", "opening_balance": "1000"},
		"purchases": [
			{"purchase_id": "p1", "supplierId": "sup-1", "invoice_no": "INV-1", "purchaseDate": "2024-03-02", "totalAmount": 400},
			{"id": "p2", "supplier_id": "sup-1", "date": "2024-03-07T10:00:00Z", "total": "100"}
		],
		"payments": [
			{"voucherId": "v1", "supplierID": "sup-1", "payment_date": "2024-03-12", "paidAmount": -250}
		],
		"fromDate": "2024-03-05",
		"rebase": true
	}`)

	suite.mockService.On("ComputeStatement", mock.Anything,
		mock.MatchedBy(func(s domain.Supplier) bool {
			return s.SupplierID == "sup-1" && s.Name == "Acme Traders" && s.OpeningBalance.Equal(decimal.NewFromInt(1000))
		}),
		mock.MatchedBy(func(p []domain.RawPurchase) bool {
			return len(p) == 2 && p[0].InvoiceNumber == "INV-1" && p[1].PurchaseID == "p2"
		}),
		mock.MatchedBy(func(v []domain.RawPaymentVoucher) bool {
			return len(v) == 1 && v[0].VoucherID == "v1" && v[0].Date.Equal(day(12))
		}),
		mock.MatchedBy(func(opts ledger.StatementOptions) bool {
			return opts.RebaseToRangeStart && opts.Period.From != nil && opts.Period.From.Equal(day(5)) && opts.Period.To == nil
		}),
	).Return(sampleStatement(ledger.StatementOptions{}), nil).Once()

	w := suite.serve(http.MethodPost, "/api/v1/statements", body)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockService.AssertExpectations(suite.T())
}

func (suite *SupplierAccountHandlerTestSuite) TestComputeStatement_MissingSupplier() {
	w := suite.serve(http.MethodPost, "/api/v1/statements", []byte(`{"purchases": []}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "supplier is required")
}

func (suite *SupplierAccountHandlerTestSuite) TestComputeStatement_InvalidJSON() {
	w := suite.serve(http.MethodPost, "/api/v1/statements", []byte(`{"supplier": `))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Request body must be valid JSON", suite.errorMessage(w))
}

func (suite *SupplierAccountHandlerTestSuite) TestComputeStatement_PurchasesNotArray() {
	w := suite.serve(http.MethodPost, "/api/v1/statements", []byte(`{"supplier": {"id": "s"}, "purchases": {"id": "p1"}}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Contains(suite.errorMessage(w), "purchases payload must be a JSON array")
}

func (suite *SupplierAccountHandlerTestSuite) TestComputeStatement_InvertedRange() {
	w := suite.serve(http.MethodPost, "/api/v1/statements",
		[]byte(`{"supplier": {"id": "s"}, "fromDate": "2024-03-10", "toDate": "2024-03-01"}`))

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("fromDate must be before or equal to toDate", suite.errorMessage(w))
}

// --- Run Test Suite ---
func TestSupplierAccountHandler(t *testing.T) {
	suite.Run(t, new(SupplierAccountHandlerTestSuite))
}
