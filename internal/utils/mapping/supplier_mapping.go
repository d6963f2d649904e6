package mapping

import (
	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ToDomainSupplier converts a model Supplier to a domain Supplier.
// A NULL opening balance reads as zero.
func ToDomainSupplier(m models.Supplier) domain.Supplier {
	opening := decimal.Zero
	if m.OpeningBalance.Valid {
		opening = m.OpeningBalance.Decimal
	}
	return domain.Supplier{
		SupplierID:     m.SupplierID,
		BranchID:       m.BranchID.String,
		Name:           m.Name,
		Phone:          m.Phone.String,
		Address:        m.Address.String,
		OpeningBalance: opening,
		CreditLimit:    nullableAmount(m.CreditLimit),
		PaymentTerms:   int(m.PaymentTerms.Int32),
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

