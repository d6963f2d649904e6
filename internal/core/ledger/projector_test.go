package ledger_test

import (
	"math/rand/v2"
	"testing"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/core/ledger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectBalances(t *testing.T) {
	limit := dec("500")
	suppliers := []domain.Supplier{
		{SupplierID: "S1", Name: "Acme", OpeningBalance: dec("1000")},
		{SupplierID: "S2", Name: "Globex", OpeningBalance: dec("-50"), CreditLimit: &limit},
		{SupplierID: "S3", Name: "Idle", OpeningBalance: dec("0")},
	}
	purchases := []domain.RawPurchase{
		{PurchaseID: "1", SupplierID: "S1", Total: decPtr("500")},
		{PurchaseID: "2", SupplierID: "S2", Total: decPtr("700")},
		{PurchaseID: "3", SupplierID: "S2"},
		{PurchaseID: "4", SupplierID: "ghost", Total: decPtr("9999")},
	}
	vouchers := []domain.RawPaymentVoucher{
		{VoucherID: "1", SupplierID: "S1", Amount: decPtr("300")},
		{VoucherID: "2", SupplierID: "S2", Amount: decPtr("100")},
	}

	balances := ledger.ProjectBalances(suppliers, purchases, vouchers, ledger.ProjectOptions{})

	require.Len(t, balances, 3)

	s1 := balances["S1"]
	assert.Equal(t, "Acme", s1.SupplierName)
	assert.True(t, s1.TotalDebit.Equal(dec("500")))
	assert.True(t, s1.TotalCredit.Equal(dec("300")))
	assert.True(t, s1.CurrentBalance.Equal(dec("1200")))
	assert.Equal(t, domain.Payable, s1.Status)
	assert.False(t, s1.OverCreditLimit)

	s2 := balances["S2"]
	assert.True(t, s2.CurrentBalance.Equal(dec("550")))
	assert.True(t, s2.OverCreditLimit)

	s3 := balances["S3"]
	assert.True(t, s3.TotalDebit.IsZero())
	assert.True(t, s3.CurrentBalance.IsZero())
	assert.Equal(t, domain.Settled, s3.Status)
}

func TestProjectBalances_DuplicateSupplierKeepsFirst(t *testing.T) {
	suppliers := []domain.Supplier{
		{SupplierID: "S1", Name: "First", OpeningBalance: dec("10")},
		{SupplierID: "S1", Name: "Second", OpeningBalance: dec("20")},
	}

	balances := ledger.ProjectBalances(suppliers, nil, nil, ledger.ProjectOptions{})
	rows := ledger.OrderedBalances(suppliers, balances)

	require.Len(t, rows, 1)
	assert.Equal(t, "First", rows[0].SupplierName)
	assert.True(t, rows[0].CurrentBalance.Equal(dec("10")))
}

func TestOrderedBalances_FollowsSupplierOrder(t *testing.T) {
	suppliers := []domain.Supplier{{SupplierID: "b"}, {SupplierID: "a"}, {SupplierID: "c"}}

	rows := ledger.OrderedBalances(suppliers, ledger.ProjectBalances(suppliers, nil, nil, ledger.ProjectOptions{}))

	require.Len(t, rows, 3)
	assert.Equal(t, "b", rows[0].SupplierID)
	assert.Equal(t, "a", rows[1].SupplierID)
	assert.Equal(t, "c", rows[2].SupplierID)
}

func TestProjectBalances_AgreesWithStatements(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 5))
	supplierIDs := []string{"S1", "S2", "S3", "unknown"}
	branches := []string{"", "north", "south"}

	for i := 0; i < 100; i++ {
		suppliers := []domain.Supplier{
			{SupplierID: "S1", OpeningBalance: decimal.New(r.Int64N(100_000), -2)},
			{SupplierID: "S2", OpeningBalance: decimal.New(-r.Int64N(100_000), -2)},
			{SupplierID: "S3"},
		}
		purchases, vouchers := randomLedgerInput(r, supplierIDs)
		for j := range purchases {
			purchases[j].BranchID = branches[1+r.IntN(2)]
		}
		for j := range vouchers {
			vouchers[j].BranchID = branches[1+r.IntN(2)]
		}
		branch := branches[r.IntN(len(branches))]

		balances := ledger.ProjectBalances(suppliers, purchases, vouchers, ledger.ProjectOptions{BranchID: branch})

		for _, s := range suppliers {
			stmt := ledger.BuildStatement(s, purchases, vouchers, ledger.StatementOptions{BranchID: branch})
			b := balances[s.SupplierID]
			assert.True(t, b.OpeningBalance.Equal(stmt.Summary.OpeningBalance), "iteration %d supplier %s", i, s.SupplierID)
			assert.True(t, b.TotalDebit.Equal(stmt.Summary.TotalDebit), "iteration %d supplier %s", i, s.SupplierID)
			assert.True(t, b.TotalCredit.Equal(stmt.Summary.TotalCredit), "iteration %d supplier %s", i, s.SupplierID)
			assert.True(t, b.CurrentBalance.Equal(stmt.Summary.ClosingBalance), "iteration %d supplier %s", i, s.SupplierID)
			assert.Equal(t, stmt.Summary.Status, b.Status)
		}
	}
}
