package ledger

import (
	"fmt"
	"strings"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/utils/accounting"
)

// Normalize converts the purchases and payment vouchers belonging to supplierID
// into transactions. Purchases come first, then vouchers, each in input order;
// the builder relies on that order to break ties between same-day rows.
func Normalize(supplierID string, purchases []domain.RawPurchase, vouchers []domain.RawPaymentVoucher) []domain.Transaction {
	txns := make([]domain.Transaction, 0, len(purchases)+len(vouchers))
	for _, p := range purchases {
		if p.SupplierID != supplierID {
			continue
		}
		txns = append(txns, purchaseTransaction(p))
	}
	for _, v := range vouchers {
		if v.SupplierID != supplierID {
			continue
		}
		txns = append(txns, voucherTransaction(v))
	}
	return txns
}

// FilterBranch keeps the transactions recorded against branchID.
// An empty branchID keeps everything.
func FilterBranch(txns []domain.Transaction, branchID string) []domain.Transaction {
	if branchID == "" {
		return txns
	}
	filtered := make([]domain.Transaction, 0, len(txns))
	for _, txn := range txns {
		if txn.BranchID == branchID {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

func purchaseTransaction(p domain.RawPurchase) domain.Transaction {
	return domain.Transaction{
		Date:        p.Date,
		Kind:        domain.Debit,
		Amount:      accounting.Magnitude(p.Total),
		Reference:   orDefault(p.InvoiceNumber, "PUR-"+p.PurchaseID),
		Description: orDefault(p.Description, fmt.Sprintf("Purchase invoice #%s", p.PurchaseID)),
		SourceID:    p.PurchaseID,
		BranchID:    p.BranchID,
	}
}

func voucherTransaction(v domain.RawPaymentVoucher) domain.Transaction {
	return domain.Transaction{
		Date:        v.Date,
		Kind:        domain.Credit,
		Amount:      accounting.Magnitude(v.Amount),
		Reference:   orDefault(v.VoucherNumber, "PAY-"+v.VoucherID),
		Description: orDefault(v.Description, fmt.Sprintf("Payment voucher #%s", v.VoucherID)),
		SourceID:    v.VoucherID,
		BranchID:    v.BranchID,
	}
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}
