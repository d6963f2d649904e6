package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionKind indicates how a ledger line affects the supplier balance.
type TransactionKind string

const (
	Opening TransactionKind = "OPENING_BALANCE"
	Debit   TransactionKind = "DEBIT"  // Purchase; increases the amount owed
	Credit  TransactionKind = "CREDIT" // Payment; decreases the amount owed
)

// Transaction is the normalized shape of a purchase or payment voucher.
type Transaction struct {
	Date        time.Time       `json:"date"`
	Kind        TransactionKind `json:"kind"`
	Amount      decimal.Decimal `json:"amount"` // Never negative; the effect comes from Kind
	Reference   string          `json:"reference"`
	Description string          `json:"description"`
	SourceID    string          `json:"sourceID"` // PurchaseID or VoucherID
	BranchID    string          `json:"branchID,omitempty"`
}

// LedgerEntry is one row of a supplier statement.
// Exactly one of Debit and Credit is set, except on the opening row where neither is.
type LedgerEntry struct {
	Date           time.Time        `json:"date"`
	Kind           TransactionKind  `json:"kind"`
	Reference      string           `json:"reference"`
	Description    string           `json:"description"`
	Debit          *decimal.Decimal `json:"debit"`
	Credit         *decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal  `json:"runningBalance"`
}

// DebitOrZero returns the debit amount, or zero when the entry is not a debit.
func (e LedgerEntry) DebitOrZero() decimal.Decimal {
	if e.Debit == nil {
		return decimal.Zero
	}
	return *e.Debit
}

// CreditOrZero returns the credit amount, or zero when the entry is not a credit.
func (e LedgerEntry) CreditOrZero() decimal.Decimal {
	if e.Credit == nil {
		return decimal.Zero
	}
	return *e.Credit
}
