package accounting

import (
	"fmt"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SignedAmount applies the supplier-ledger sign convention to a transaction amount.
// This is the only place the convention is encoded; builders and projectors call it
// instead of deciding the sign themselves.
func SignedAmount(kind domain.TransactionKind, amount decimal.Decimal) decimal.Decimal {
	// DEBIT  (purchase) -> Positive (+), the business owes more
	// CREDIT (payment)  -> Negative (-), the business owes less
	// OPENING_BALANCE carries no movement of its own
	switch kind {
	case domain.Debit:
		return amount
	case domain.Credit:
		return amount.Neg()
	default:
		return decimal.Zero
	}
}

// NetMovement sums the signed amounts of txns.
func NetMovement(txns []domain.Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, txn := range txns {
		sum = sum.Add(SignedAmount(txn.Kind, txn.Amount))
	}
	return sum
}

// Magnitude turns an optional raw amount into a non-negative ledger amount.
// Missing amounts count as zero so the row still shows up on the statement.
func Magnitude(amount *decimal.Decimal) decimal.Decimal {
	if amount == nil {
		return decimal.Zero
	}
	return amount.Abs()
}

// ValidateStatementBalance checks that a statement's running balances and summary agree.
func ValidateStatementBalance(stmt domain.Statement) error {
	if len(stmt.Entries) == 0 {
		return fmt.Errorf("statement for supplier %s has no opening entry", stmt.Supplier.SupplierID)
	}

	opening := stmt.Entries[0]
	if opening.Kind != domain.Opening {
		return fmt.Errorf("first entry of statement for supplier %s is %s, expected %s",
			stmt.Supplier.SupplierID, opening.Kind, domain.Opening)
	}
	if !opening.RunningBalance.Equal(stmt.Summary.OpeningBalance) {
		return fmt.Errorf("opening entry balance %s does not match summary opening balance %s",
			opening.RunningBalance.String(), stmt.Summary.OpeningBalance.String())
	}

	balance := opening.RunningBalance
	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for i, entry := range stmt.Entries[1:] {
		if (entry.Debit == nil) == (entry.Credit == nil) {
			return fmt.Errorf("entry %d (%s) must carry exactly one of debit or credit", i+1, entry.Reference)
		}
		totalDebit = totalDebit.Add(entry.DebitOrZero())
		totalCredit = totalCredit.Add(entry.CreditOrZero())
		balance = balance.Add(entry.DebitOrZero()).Sub(entry.CreditOrZero())
		if !balance.Equal(entry.RunningBalance) {
			return fmt.Errorf("entry %d (%s) running balance is %s, expected %s",
				i+1, entry.Reference, entry.RunningBalance.String(), balance.String())
		}
	}

	if !totalDebit.Equal(stmt.Summary.TotalDebit) || !totalCredit.Equal(stmt.Summary.TotalCredit) {
		return fmt.Errorf("summary totals debit=%s credit=%s do not match entries debit=%s credit=%s",
			stmt.Summary.TotalDebit.String(), stmt.Summary.TotalCredit.String(), totalDebit.String(), totalCredit.String())
	}

	expectedClosing := stmt.Summary.OpeningBalance.Add(stmt.Summary.TotalDebit).Sub(stmt.Summary.TotalCredit)
	if !expectedClosing.Equal(stmt.Summary.ClosingBalance) {
		return fmt.Errorf("closing balance %s does not equal opening + debit - credit (%s)",
			stmt.Summary.ClosingBalance.String(), expectedClosing.String())
	}

	return nil
}
