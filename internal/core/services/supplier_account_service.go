package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/core/ledger"
	portsrepo "github.com/SscSPs/supplier_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/supplier_ledger/internal/core/ports/services"
	"github.com/SscSPs/supplier_ledger/internal/utils/accounting"
)

// supplierAccountService implements the SupplierAccountSvcFacade interface
type supplierAccountService struct {
	BaseService
	supplierRepo portsrepo.SupplierReader
	purchaseRepo portsrepo.PurchaseReader
	voucherRepo  portsrepo.PaymentVoucherReader
	cache        portsrepo.StatementCache
}

// SupplierAccountServiceOption is a functional option for configuring the supplier account service
type SupplierAccountServiceOption func(*supplierAccountService)

// WithStatementCache memoises statements in cache. A nil cache leaves memoisation off.
func WithStatementCache(cache portsrepo.StatementCache) SupplierAccountServiceOption {
	return func(s *supplierAccountService) {
		s.cache = cache
	}
}

// NewSupplierAccountService creates a new supplier account service with the provided options
func NewSupplierAccountService(
	supplierRepo portsrepo.SupplierReader,
	purchaseRepo portsrepo.PurchaseReader,
	voucherRepo portsrepo.PaymentVoucherReader,
	options ...SupplierAccountServiceOption,
) portssvc.SupplierAccountSvcFacade {
	svc := &supplierAccountService{
		supplierRepo: supplierRepo,
		purchaseRepo: purchaseRepo,
		voucherRepo:  voucherRepo,
	}

	for _, option := range options {
		option(svc)
	}

	return svc
}

var _ portssvc.SupplierAccountSvcFacade = (*supplierAccountService)(nil)

// GetStatement loads a supplier with its purchases and vouchers and builds its statement.
func (s *supplierAccountService) GetStatement(ctx context.Context, supplierID string, opts ledger.StatementOptions) (*domain.Statement, error) {
	supplier, err := s.supplierRepo.FindSupplierByID(ctx, supplierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to find supplier", slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to find supplier %s: %w", supplierID, err)
	}

	cacheKey := s.cacheKey(ctx, *supplier, opts)
	if cacheKey != "" {
		cached, err := s.cache.GetStatement(ctx, cacheKey)
		if err != nil {
			s.LogWarn(ctx, err, "Statement cache read failed", slog.String("supplier_id", supplierID))
		} else if cached != nil {
			s.LogDebug(ctx, "Statement served from cache", slog.String("supplier_id", supplierID))
			return cached, nil
		}
	}

	purchases, err := s.purchaseRepo.ListPurchasesBySupplier(ctx, supplierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases", slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to list purchases for supplier %s: %w", supplierID, err)
	}

	vouchers, err := s.voucherRepo.ListPaymentVouchersBySupplier(ctx, supplierID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment vouchers", slog.String("supplier_id", supplierID))
		return nil, fmt.Errorf("failed to list payment vouchers for supplier %s: %w", supplierID, err)
	}

	stmt, err := s.ComputeStatement(ctx, *supplier, purchases, vouchers, opts)
	if err != nil {
		return nil, err
	}

	if cacheKey != "" {
		if err := s.cache.SetStatement(ctx, cacheKey, *stmt); err != nil {
			s.LogWarn(ctx, err, "Statement cache write failed", slog.String("supplier_id", supplierID))
		}
	}

	return stmt, nil
}

// ComputeStatement builds and verifies a statement over the given records.
func (s *supplierAccountService) ComputeStatement(
	ctx context.Context,
	supplier domain.Supplier,
	purchases []domain.RawPurchase,
	vouchers []domain.RawPaymentVoucher,
	opts ledger.StatementOptions,
) (*domain.Statement, error) {
	stmt := ledger.BuildStatement(supplier, purchases, vouchers, opts)

	if err := accounting.ValidateStatementBalance(stmt); err != nil {
		s.LogError(ctx, err, "Statement failed verification",
			slog.String("supplier_id", supplier.SupplierID))
		return nil, fmt.Errorf("statement for supplier %s failed verification: %w", supplier.SupplierID, err)
	}

	s.LogInfo(ctx, "Supplier statement generated successfully",
		slog.String("supplier_id", supplier.SupplierID),
		slog.Int("entry_count", len(stmt.Entries)),
		slog.Bool("rebased", stmt.Rebased),
		slog.String("closing_balance", stmt.Summary.ClosingBalance.String()))
	return &stmt, nil
}

// ListBalances projects the current balance of every supplier.
func (s *supplierAccountService) ListBalances(ctx context.Context, branchID string) ([]domain.AccountBalance, error) {
	suppliers, err := s.supplierRepo.ListSuppliers(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list suppliers")
		return nil, fmt.Errorf("failed to list suppliers: %w", err)
	}

	purchases, err := s.purchaseRepo.ListPurchases(ctx, branchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchases", slog.String("branch_id", branchID))
		return nil, fmt.Errorf("failed to list purchases: %w", err)
	}

	vouchers, err := s.voucherRepo.ListPaymentVouchers(ctx, branchID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payment vouchers", slog.String("branch_id", branchID))
		return nil, fmt.Errorf("failed to list payment vouchers: %w", err)
	}

	balances := ledger.ProjectBalances(suppliers, purchases, vouchers, ledger.ProjectOptions{BranchID: branchID})
	rows := ledger.OrderedBalances(suppliers, balances)

	s.LogInfo(ctx, "Supplier balances projected successfully",
		slog.String("branch_id", branchID),
		slog.Int("row_count", len(rows)))
	return rows, nil
}

// cacheKey returns "" when memoisation is off or the version tokens cannot be read.
func (s *supplierAccountService) cacheKey(ctx context.Context, supplier domain.Supplier, opts ledger.StatementOptions) string {
	if s.cache == nil {
		return ""
	}

	purchasesVersion, err := s.purchaseRepo.PurchasesVersion(ctx, supplier.SupplierID)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to read purchases version, skipping cache",
			slog.String("supplier_id", supplier.SupplierID))
		return ""
	}

	vouchersVersion, err := s.voucherRepo.PaymentVouchersVersion(ctx, supplier.SupplierID)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to read payment vouchers version, skipping cache",
			slog.String("supplier_id", supplier.SupplierID))
		return ""
	}

	return statementCacheKey(supplier, purchasesVersion, vouchersVersion, opts)
}
