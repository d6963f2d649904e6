package mapping

import (
	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/models"
)

// ToDomainPurchase converts a model Purchase to a raw domain purchase.
func ToDomainPurchase(m models.Purchase) domain.RawPurchase {
	return domain.RawPurchase{
		PurchaseID:    m.PurchaseID,
		SupplierID:    m.SupplierID,
		BranchID:      m.BranchID.String,
		InvoiceNumber: m.InvoiceNumber.String,
		Date:          m.PurchaseDate.Time, // Zero when NULL
		Total:         nullableAmount(m.Total),
		Description:   m.Notes.String,
	}
}

// ToDomainPaymentVoucher converts a model PaymentVoucher to a raw domain voucher.
func ToDomainPaymentVoucher(m models.PaymentVoucher) domain.RawPaymentVoucher {
	return domain.RawPaymentVoucher{
		VoucherID:     m.VoucherID,
		SupplierID:    m.SupplierID,
		BranchID:      m.BranchID.String,
		VoucherNumber: m.VoucherNumber.String,
		Date:          m.PaymentDate.Time,
		Amount:        nullableAmount(m.Amount),
		PaymentMethod: m.PaymentMethod.String,
		Description:   m.Description.String,
	}
}
