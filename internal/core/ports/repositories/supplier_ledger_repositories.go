package repositories

import (
	"context"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
)

// SupplierReader defines read operations for supplier data
type SupplierReader interface {
	// FindSupplierByID retrieves a supplier by its identifier.
	FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error)

	// ListSuppliers retrieves all suppliers ordered by name.
	ListSuppliers(ctx context.Context) ([]domain.Supplier, error)
}

// PurchaseReader defines read operations for purchase invoices
type PurchaseReader interface {
	// ListPurchasesBySupplier retrieves every purchase recorded against a supplier.
	ListPurchasesBySupplier(ctx context.Context, supplierID string) ([]domain.RawPurchase, error)

	// ListPurchases retrieves all purchases, optionally restricted to a branch.
	ListPurchases(ctx context.Context, branchID string) ([]domain.RawPurchase, error)

	// PurchasesVersion returns a token that changes whenever the supplier's purchases change.
	PurchasesVersion(ctx context.Context, supplierID string) (string, error)
}

// PaymentVoucherReader defines read operations for payment vouchers
type PaymentVoucherReader interface {
	// ListPaymentVouchersBySupplier retrieves every voucher paid to a supplier.
	ListPaymentVouchersBySupplier(ctx context.Context, supplierID string) ([]domain.RawPaymentVoucher, error)

	// ListPaymentVouchers retrieves all vouchers, optionally restricted to a branch.
	ListPaymentVouchers(ctx context.Context, branchID string) ([]domain.RawPaymentVoucher, error)

	// PaymentVouchersVersion returns a token that changes whenever the supplier's vouchers change.
	PaymentVouchersVersion(ctx context.Context, supplierID string) (string, error)
}

// StatementCache stores computed statements keyed by their inputs.
type StatementCache interface {
	// GetStatement returns nil and no error on a miss.
	GetStatement(ctx context.Context, key string) (*domain.Statement, error)

	SetStatement(ctx context.Context, key string, stmt domain.Statement) error
}
