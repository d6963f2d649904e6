package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/supplier_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/supplier_ledger/internal/models"
	"github.com/SscSPs/supplier_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

const purchaseColumns = `purchase_id, supplier_id, branch_id, invoice_number, purchase_date, total, notes`

type PgxPurchaseRepository struct {
	BaseRepository
}

// newPgxPurchaseRepository creates a new repository for purchase invoices.
func newPgxPurchaseRepository(pool *pgxpool.Pool) portsrepo.PurchaseReader {
	return &PgxPurchaseRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PurchaseReader = (*PgxPurchaseRepository)(nil)

// ListPurchasesBySupplier retrieves every purchase recorded against a supplier.
func (r *PgxPurchaseRepository) ListPurchasesBySupplier(ctx context.Context, supplierID string) ([]domain.RawPurchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE supplier_id = $1 ORDER BY purchase_date, purchase_id;`
	return r.list(ctx, query, supplierID)
}

// ListPurchases retrieves all purchases, restricted to branchID when it is set.
func (r *PgxPurchaseRepository) ListPurchases(ctx context.Context, branchID string) ([]domain.RawPurchase, error) {
	if branchID == "" {
		return r.list(ctx, `SELECT `+purchaseColumns+` FROM purchases ORDER BY purchase_date, purchase_id;`)
	}
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE branch_id = $1 ORDER BY purchase_date, purchase_id;`
	return r.list(ctx, query, branchID)
}

// PurchasesVersion returns the version token of a supplier's purchases.
func (r *PgxPurchaseRepository) PurchasesVersion(ctx context.Context, supplierID string) (string, error) {
	return r.versionToken(ctx,
		`SELECT count(*), max(last_updated_at) FROM purchases WHERE supplier_id = $1;`, supplierID)
}

func (r *PgxPurchaseRepository) list(ctx context.Context, query string, args ...any) ([]domain.RawPurchase, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases: %w", err)
	}
	defer rows.Close()

	purchases := []domain.RawPurchase{}
	for rows.Next() {
		var m models.Purchase
		if err := rows.Scan(
			&m.PurchaseID,
			&m.SupplierID,
			&m.BranchID,
			&m.InvoiceNumber,
			&m.PurchaseDate,
			&m.Total,
			&m.Notes,
		); err != nil {
			return nil, fmt.Errorf("failed to scan purchase row: %w", err)
		}
		purchases = append(purchases, mapping.ToDomainPurchase(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating purchase rows: %w", err)
	}
	return purchases, nil
}
