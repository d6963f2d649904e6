package ledger

import (
	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AssembleStatement packages entries produced by BuildLedger into a statement.
// It only aggregates: the closing balance is the last running balance.
func AssembleStatement(supplier domain.Supplier, entries []domain.LedgerEntry) domain.Statement {
	opening := supplier.OpeningBalance
	if len(entries) > 0 && entries[0].Kind == domain.Opening {
		opening = entries[0].RunningBalance
	}

	totalDebit := decimal.Zero
	totalCredit := decimal.Zero
	for _, entry := range entries {
		totalDebit = totalDebit.Add(entry.DebitOrZero())
		totalCredit = totalCredit.Add(entry.CreditOrZero())
	}

	closing := opening
	if len(entries) > 0 {
		closing = entries[len(entries)-1].RunningBalance
	}

	return domain.Statement{
		Supplier: supplier,
		Entries:  entries,
		Summary: domain.StatementSummary{
			OpeningBalance: opening,
			TotalDebit:     totalDebit,
			TotalCredit:    totalCredit,
			ClosingBalance: closing,
			Status:         domain.StatusOf(closing),
		},
	}
}
