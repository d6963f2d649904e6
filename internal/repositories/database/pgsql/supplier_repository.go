package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/supplier_ledger/internal/apperrors"
	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/supplier_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/supplier_ledger/internal/models"
	"github.com/SscSPs/supplier_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const supplierColumns = `supplier_id, branch_id, name, phone, address, opening_balance, credit_limit,
	payment_terms, created_at, created_by, last_updated_at, last_updated_by`

type PgxSupplierRepository struct {
	BaseRepository
}

// newPgxSupplierRepository creates a new repository for supplier data.
func newPgxSupplierRepository(pool *pgxpool.Pool) portsrepo.SupplierReader {
	return &PgxSupplierRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.SupplierReader = (*PgxSupplierRepository)(nil)

func scanSupplier(row pgx.Row) (models.Supplier, error) {
	var m models.Supplier
	err := row.Scan(
		&m.SupplierID,
		&m.BranchID,
		&m.Name,
		&m.Phone,
		&m.Address,
		&m.OpeningBalance,
		&m.CreditLimit,
		&m.PaymentTerms,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindSupplierByID retrieves a supplier by its ID.
func (r *PgxSupplierRepository) FindSupplierByID(ctx context.Context, supplierID string) (*domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers WHERE supplier_id = $1;`

	m, err := scanSupplier(r.Pool.QueryRow(ctx, query, supplierID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: supplier %s", apperrors.ErrNotFound, supplierID)
		}
		return nil, fmt.Errorf("failed to find supplier by ID %s: %w", supplierID, err)
	}

	supplier := mapping.ToDomainSupplier(m)
	return &supplier, nil
}

// ListSuppliers retrieves all suppliers ordered by name.
func (r *PgxSupplierRepository) ListSuppliers(ctx context.Context) ([]domain.Supplier, error) {
	query := `SELECT ` + supplierColumns + ` FROM suppliers ORDER BY name, supplier_id;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query suppliers: %w", err)
	}
	defer rows.Close()

	suppliers := []domain.Supplier{}
	for rows.Next() {
		m, err := scanSupplier(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan supplier row: %w", err)
		}
		suppliers = append(suppliers, mapping.ToDomainSupplier(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating supplier rows: %w", err)
	}
	return suppliers, nil
}
