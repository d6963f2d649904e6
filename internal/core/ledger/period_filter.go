package ledger

import "github.com/SscSPs/supplier_ledger/internal/core/domain"

// FilterPeriod keeps the transactions whose date falls inside period.
// An open period returns txns unchanged; an inverted one returns an empty slice.
func FilterPeriod(txns []domain.Transaction, period domain.DateRange) []domain.Transaction {
	if period.IsZero() {
		return txns
	}

	filtered := make([]domain.Transaction, 0, len(txns))
	if period.IsInverted() {
		return filtered
	}
	for _, txn := range txns {
		if period.Contains(txn.Date) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// transactionsBefore returns the transactions dated before the period starts.
func transactionsBefore(txns []domain.Transaction, period domain.DateRange) []domain.Transaction {
	var before []domain.Transaction
	for _, txn := range txns {
		if period.Before(txn.Date) {
			before = append(before, txn)
		}
	}
	return before
}
