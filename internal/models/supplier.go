package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Supplier represents a row of the suppliers table.
type Supplier struct {
	SupplierID     string              `db:"supplier_id"`
	BranchID       sql.NullString      `db:"branch_id"`
	Name           string              `db:"name"`
	Phone          sql.NullString      `db:"phone"`
	Address        sql.NullString      `db:"address"`
	OpeningBalance decimal.NullDecimal `db:"opening_balance"` // NULL counts as zero
	CreditLimit    decimal.NullDecimal `db:"credit_limit"`
	PaymentTerms   sql.NullInt32       `db:"payment_terms"`
	AuditFields
}
