package ledger

import (
	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/utils/accounting"
)

// StatementOptions narrows the transactions that make up a statement.
type StatementOptions struct {
	// Period restricts the listed transactions to an inclusive date window.
	Period domain.DateRange
	// RebaseToRangeStart carries the balance accumulated before Period.From into
	// the opening row. When false the supplier's static opening balance is used.
	// It has no effect without Period.From.
	RebaseToRangeStart bool
	// BranchID keeps only the transactions recorded against one branch.
	BranchID string
}

// BuildStatement produces the statement of one supplier.
func BuildStatement(
	supplier domain.Supplier,
	purchases []domain.RawPurchase,
	vouchers []domain.RawPaymentVoucher,
	opts StatementOptions,
) domain.Statement {
	txns := FilterBranch(Normalize(supplier.SupplierID, purchases, vouchers), opts.BranchID)

	opening := supplier.OpeningBalance
	rebased := opts.RebaseToRangeStart && opts.Period.From != nil
	if rebased {
		opening = opening.Add(accounting.NetMovement(transactionsBefore(txns, opts.Period)))
	}

	entries := BuildLedger(opening, FilterPeriod(txns, opts.Period))
	if rebased {
		entries[0].Date = *opts.Period.From
	}

	stmt := AssembleStatement(supplier, entries)
	stmt.Period = opts.Period
	stmt.Rebased = rebased
	return stmt
}
