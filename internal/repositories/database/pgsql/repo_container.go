package pgsql

import (
	portsrepo "github.com/SscSPs/supplier_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires the read-only PostgreSQL repositories. The
// statement cache is left to the caller.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		SupplierRepo:       newPgxSupplierRepository(dbPool),
		PurchaseRepo:       newPgxPurchaseRepository(dbPool),
		PaymentVoucherRepo: newPgxPaymentVoucherRepository(dbPool),
	}
}
