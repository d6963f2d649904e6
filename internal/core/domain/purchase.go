package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RawPurchase is a purchase invoice as fetched from upstream storage.
// It always contributes a debit to the supplier's ledger.
type RawPurchase struct {
	PurchaseID    string           `json:"purchaseID"`
	SupplierID    string           `json:"supplierID"`
	BranchID      string           `json:"branchID,omitempty"`
	InvoiceNumber string           `json:"invoiceNumber,omitempty"`
	Date          time.Time        `json:"date"`
	Total         *decimal.Decimal `json:"total,omitempty"` // Nil when upstream had no total
	Description   string           `json:"description,omitempty"`
}

// RawPaymentVoucher is a payment made to a supplier as fetched from upstream storage.
// It always contributes a credit to the supplier's ledger.
type RawPaymentVoucher struct {
	VoucherID     string           `json:"voucherID"`
	SupplierID    string           `json:"supplierID"`
	BranchID      string           `json:"branchID,omitempty"`
	VoucherNumber string           `json:"voucherNumber,omitempty"`
	Date          time.Time        `json:"date"`
	Amount        *decimal.Decimal `json:"amount,omitempty"` // Nil when upstream had no amount
	PaymentMethod string           `json:"paymentMethod,omitempty"`
	Description   string           `json:"description,omitempty"`
}
