package services

import (
	"context"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/core/ledger"
)

// SupplierStatementSvc defines statement operations backed by storage
type SupplierStatementSvc interface {
	// GetStatement builds the statement of a stored supplier.
	GetStatement(ctx context.Context, supplierID string, opts ledger.StatementOptions) (*domain.Statement, error)

	// ComputeStatement builds a statement over caller-supplied records.
	ComputeStatement(
		ctx context.Context,
		supplier domain.Supplier,
		purchases []domain.RawPurchase,
		vouchers []domain.RawPaymentVoucher,
		opts ledger.StatementOptions,
	) (*domain.Statement, error)
}

// SupplierBalanceSvc defines list-view balance operations
type SupplierBalanceSvc interface {
	// ListBalances returns one balance row per supplier, in supplier order.
	ListBalances(ctx context.Context, branchID string) ([]domain.AccountBalance, error)
}

// SupplierAccountSvcFacade combines all supplier account service interfaces
type SupplierAccountSvcFacade interface {
	SupplierStatementSvc
	SupplierBalanceSvc
}
