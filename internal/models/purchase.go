package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Purchase represents a row of the purchases table.
type Purchase struct {
	PurchaseID    string              `db:"purchase_id"`
	SupplierID    string              `db:"supplier_id"`
	BranchID      sql.NullString      `db:"branch_id"`
	InvoiceNumber sql.NullString      `db:"invoice_number"`
	PurchaseDate  sql.NullTime        `db:"purchase_date"`
	Total         decimal.NullDecimal `db:"total"`
	Notes         sql.NullString      `db:"notes"`
}

// PaymentVoucher represents a row of the payment_vouchers table.
type PaymentVoucher struct {
	VoucherID     string              `db:"voucher_id"`
	SupplierID    string              `db:"supplier_id"`
	BranchID      sql.NullString      `db:"branch_id"`
	VoucherNumber sql.NullString      `db:"voucher_number"`
	PaymentDate   sql.NullTime        `db:"payment_date"`
	Amount        decimal.NullDecimal `db:"amount"`
	PaymentMethod sql.NullString      `db:"payment_method"`
	Description   sql.NullString      `db:"description"`
}
