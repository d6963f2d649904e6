package domain

import "github.com/shopspring/decimal"

// Supplier holds the identity and static terms of a supplier.
// It is read-only from the ledger's point of view.
type Supplier struct {
	SupplierID     string           `json:"supplierID"`
	BranchID       string           `json:"branchID,omitempty"` // Branch the supplier is registered under, if any
	Name           string           `json:"name"`
	Phone          string           `json:"phone"`
	Address        string           `json:"address"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"` // Signed; positive = owed to the supplier
	CreditLimit    *decimal.Decimal `json:"creditLimit,omitempty"`
	PaymentTerms   int              `json:"paymentTerms"` // Days
	AuditFields
}

// ExceedsCreditLimit reports whether balance is above the supplier's credit limit.
// Suppliers without a limit never exceed it.
func (s Supplier) ExceedsCreditLimit(balance decimal.Decimal) bool {
	if s.CreditLimit == nil {
		return false
	}
	return balance.GreaterThan(*s.CreditLimit)
}
