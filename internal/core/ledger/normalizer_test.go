package ledger_test

import (
	"testing"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/core/ledger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_MatchesSupplierAndKeepsOrder(t *testing.T) {
	purchases := []domain.RawPurchase{
		{PurchaseID: "1", SupplierID: "S1", Date: day(3), Total: decPtr("100")},
		{PurchaseID: "2", SupplierID: "S2", Date: day(1), Total: decPtr("999")},
		{PurchaseID: "3", SupplierID: "S1", Date: day(1), Total: decPtr("50.5")},
	}
	vouchers := []domain.RawPaymentVoucher{
		{VoucherID: "7", SupplierID: "S1", Date: day(2), Amount: decPtr("20")},
		{VoucherID: "8", SupplierID: "S3", Date: day(2), Amount: decPtr("20")},
	}

	txns := ledger.Normalize("S1", purchases, vouchers)

	require.Len(t, txns, 3)
	assert.Equal(t, "1", txns[0].SourceID)
	assert.Equal(t, "3", txns[1].SourceID)
	assert.Equal(t, "7", txns[2].SourceID)
	assert.Equal(t, domain.Debit, txns[0].Kind)
	assert.Equal(t, domain.Debit, txns[1].Kind)
	assert.Equal(t, domain.Credit, txns[2].Kind)
	assert.True(t, txns[1].Amount.Equal(dec("50.5")))
}

func TestNormalize_Defaults(t *testing.T) {
	purchases := []domain.RawPurchase{
		{PurchaseID: "11", SupplierID: "S1", Date: day(1)},
		{PurchaseID: "12", SupplierID: "S1", Date: day(1), InvoiceNumber: "INV-2024-12", Description: "Flour", Total: decPtr("10")},
	}
	vouchers := []domain.RawPaymentVoucher{
		{VoucherID: "21", SupplierID: "S1", Date: day(2), PaymentMethod: "cash"},
		{VoucherID: "22", SupplierID: "S1", Date: day(2), VoucherNumber: "PV-9", Description: "Bank transfer", Amount: decPtr("5")},
	}

	txns := ledger.Normalize("S1", purchases, vouchers)

	require.Len(t, txns, 4)

	assert.True(t, txns[0].Amount.IsZero(), "missing total is coerced to zero")
	assert.Equal(t, "PUR-11", txns[0].Reference)
	assert.Equal(t, "Purchase invoice #11", txns[0].Description)

	assert.Equal(t, "INV-2024-12", txns[1].Reference)
	assert.Equal(t, "Flour", txns[1].Description)

	assert.True(t, txns[2].Amount.IsZero(), "missing amount is coerced to zero")
	assert.Equal(t, "PAY-21", txns[2].Reference)
	assert.Equal(t, "Payment voucher #21", txns[2].Description)

	assert.Equal(t, "PV-9", txns[3].Reference)
	assert.Equal(t, "Bank transfer", txns[3].Description)
}

func TestNormalize_NegativeMagnitudeKeepsKindSign(t *testing.T) {
	purchases := []domain.RawPurchase{{PurchaseID: "1", SupplierID: "S1", Total: decPtr("-80")}}

	txns := ledger.Normalize("S1", purchases, nil)

	require.Len(t, txns, 1)
	assert.True(t, txns[0].Amount.Equal(dec("80")))
	assert.Equal(t, domain.Debit, txns[0].Kind)
}

func TestNormalize_Empty(t *testing.T) {
	txns := ledger.Normalize("S1", nil, nil)
	assert.NotNil(t, txns)
	assert.Empty(t, txns)
}

func TestFilterBranch(t *testing.T) {
	txns := []domain.Transaction{
		{SourceID: "a", BranchID: "north"},
		{SourceID: "b", BranchID: "south"},
		{SourceID: "c", BranchID: "north"},
	}

	assert.Equal(t, txns, ledger.FilterBranch(txns, ""))

	north := ledger.FilterBranch(txns, "north")
	require.Len(t, north, 2)
	assert.Equal(t, "a", north[0].SourceID)
	assert.Equal(t, "c", north[1].SourceID)

	assert.Empty(t, ledger.FilterBranch(txns, "east"))
}
