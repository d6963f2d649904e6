package ledger

import (
	"slices"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// OpeningReference is the reference shown on the synthetic opening row.
const OpeningReference = "OPENING"

// BuildLedger orders txns chronologically and computes the running balance
// starting from openingBalance. The first entry is always the opening row.
// Rows sharing a date keep their input order. txns itself is left untouched.
func BuildLedger(openingBalance decimal.Decimal, txns []domain.Transaction) []domain.LedgerEntry {
	sorted := slices.Clone(txns)
	slices.SortStableFunc(sorted, func(a, b domain.Transaction) int {
		return a.Date.Compare(b.Date)
	})

	entries := make([]domain.LedgerEntry, 0, len(sorted)+1)
	entries = append(entries, domain.LedgerEntry{
		Kind:           domain.Opening,
		Reference:      OpeningReference,
		Description:    "Opening balance",
		RunningBalance: openingBalance,
	})

	balance := openingBalance
	for _, txn := range sorted {
		amount := txn.Amount
		entry := domain.LedgerEntry{
			Date:        txn.Date,
			Kind:        txn.Kind,
			Reference:   txn.Reference,
			Description: txn.Description,
		}
		switch txn.Kind {
		case domain.Debit:
			entry.Debit = &amount
		case domain.Credit:
			entry.Credit = &amount
		default:
			// Only purchases and payments move the balance.
			continue
		}
		balance = balance.Add(accounting.SignedAmount(txn.Kind, amount))
		entry.RunningBalance = balance
		entries = append(entries, entry)
	}
	return entries
}
