package domain

import (
	"github.com/shopspring/decimal"
)

// BalanceStatus describes who owes whom once all transactions are applied.
type BalanceStatus string

const (
	Payable  BalanceStatus = "PAYABLE"  // The business still owes the supplier
	Settled  BalanceStatus = "SETTLED"  // Nothing outstanding
	Overpaid BalanceStatus = "OVERPAID" // The business holds a credit with the supplier
)

// StatusOf classifies a supplier balance.
func StatusOf(balance decimal.Decimal) BalanceStatus {
	switch balance.Sign() {
	case 1:
		return Payable
	case -1:
		return Overpaid
	default:
		return Settled
	}
}

// StatementSummary holds the totals of a statement.
type StatementSummary struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Status         BalanceStatus   `json:"status"`
}

// Statement is the chronological ledger of one supplier plus its summary.
type Statement struct {
	Supplier Supplier         `json:"supplier"`
	Period   DateRange        `json:"period"`
	Rebased  bool             `json:"rebased"` // Opening balance carried forward to Period.From
	Entries  []LedgerEntry    `json:"entries"` // Oldest first; Entries[0] is the opening row
	Summary  StatementSummary `json:"summary"`
}

// AccountBalance is the per-supplier summary row used by list views.
type AccountBalance struct {
	SupplierID      string          `json:"supplierID"`
	SupplierName    string          `json:"supplierName"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	Status          BalanceStatus   `json:"status"`
	OverCreditLimit bool            `json:"overCreditLimit"`
}
