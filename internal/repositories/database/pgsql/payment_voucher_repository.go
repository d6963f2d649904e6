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

const voucherColumns = `voucher_id, supplier_id, branch_id, voucher_number, payment_date, amount, payment_method, description`

type PgxPaymentVoucherRepository struct {
	BaseRepository
}

// newPgxPaymentVoucherRepository creates a new repository for payment vouchers.
func newPgxPaymentVoucherRepository(pool *pgxpool.Pool) portsrepo.PaymentVoucherReader {
	return &PgxPaymentVoucherRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentVoucherReader = (*PgxPaymentVoucherRepository)(nil)

// ListPaymentVouchersBySupplier retrieves every voucher paid to a supplier.
func (r *PgxPaymentVoucherRepository) ListPaymentVouchersBySupplier(ctx context.Context, supplierID string) ([]domain.RawPaymentVoucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM payment_vouchers WHERE supplier_id = $1 ORDER BY payment_date, voucher_id;`
	return r.list(ctx, query, supplierID)
}

// ListPaymentVouchers retrieves all vouchers, restricted to branchID when it is set.
func (r *PgxPaymentVoucherRepository) ListPaymentVouchers(ctx context.Context, branchID string) ([]domain.RawPaymentVoucher, error) {
	if branchID == "" {
		return r.list(ctx, `SELECT `+voucherColumns+` FROM payment_vouchers ORDER BY payment_date, voucher_id;`)
	}
	query := `SELECT ` + voucherColumns + ` FROM payment_vouchers WHERE branch_id = $1 ORDER BY payment_date, voucher_id;`
	return r.list(ctx, query, branchID)
}

// PaymentVouchersVersion returns the version token of a supplier's vouchers.
func (r *PgxPaymentVoucherRepository) PaymentVouchersVersion(ctx context.Context, supplierID string) (string, error) {
	return r.versionToken(ctx,
		`SELECT count(*), max(last_updated_at) FROM payment_vouchers WHERE supplier_id = $1;`, supplierID)
}

func (r *PgxPaymentVoucherRepository) list(ctx context.Context, query string, args ...any) ([]domain.RawPaymentVoucher, error) {
	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payment vouchers: %w", err)
	}
	defer rows.Close()

	vouchers := []domain.RawPaymentVoucher{}
	for rows.Next() {
		var m models.PaymentVoucher
		if err := rows.Scan(
			&m.VoucherID,
			&m.SupplierID,
			&m.BranchID,
			&m.VoucherNumber,
			&m.PaymentDate,
			&m.Amount,
			&m.PaymentMethod,
			&m.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan payment voucher row: %w", err)
		}
		vouchers = append(vouchers, mapping.ToDomainPaymentVoucher(m))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment voucher rows: %w", err)
	}
	return vouchers, nil
}
