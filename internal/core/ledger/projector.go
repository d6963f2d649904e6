package ledger

import (
	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

// ProjectOptions narrows the transactions counted by ProjectBalances.
type ProjectOptions struct {
	BranchID string
}

// ProjectBalances computes opening, debit, credit and current balance for every
// supplier in one pass over purchases and vouchers, without building ledgers.
// The figures match what BuildStatement reports over an open period.
// Records of suppliers missing from the list are ignored; for duplicated
// supplier ids the first record wins.
func ProjectBalances(
	suppliers []domain.Supplier,
	purchases []domain.RawPurchase,
	vouchers []domain.RawPaymentVoucher,
	opts ProjectOptions,
) map[string]domain.AccountBalance {
	balances := make(map[string]domain.AccountBalance, len(suppliers))
	byID := make(map[string]domain.Supplier, len(suppliers))
	for _, s := range suppliers {
		if _, seen := byID[s.SupplierID]; seen {
			continue
		}
		byID[s.SupplierID] = s
		balances[s.SupplierID] = domain.AccountBalance{
			SupplierID:     s.SupplierID,
			SupplierName:   s.Name,
			OpeningBalance: s.OpeningBalance,
			TotalDebit:     decimal.Zero,
			TotalCredit:    decimal.Zero,
		}
	}

	for _, p := range purchases {
		if !inBranch(p.BranchID, opts.BranchID) {
			continue
		}
		b, ok := balances[p.SupplierID]
		if !ok {
			continue
		}
		b.TotalDebit = b.TotalDebit.Add(accounting.Magnitude(p.Total))
		balances[p.SupplierID] = b
	}

	for _, v := range vouchers {
		if !inBranch(v.BranchID, opts.BranchID) {
			continue
		}
		b, ok := balances[v.SupplierID]
		if !ok {
			continue
		}
		b.TotalCredit = b.TotalCredit.Add(accounting.Magnitude(v.Amount))
		balances[v.SupplierID] = b
	}

	for id, b := range balances {
		b.CurrentBalance = b.OpeningBalance.
			Add(accounting.SignedAmount(domain.Debit, b.TotalDebit)).
			Add(accounting.SignedAmount(domain.Credit, b.TotalCredit))
		b.Status = domain.StatusOf(b.CurrentBalance)
		b.OverCreditLimit = byID[id].ExceedsCreditLimit(b.CurrentBalance)
		balances[id] = b
	}
	return balances
}

// OrderedBalances lists balances in the order suppliers were given, once per supplier.
func OrderedBalances(suppliers []domain.Supplier, balances map[string]domain.AccountBalance) []domain.AccountBalance {
	rows := make([]domain.AccountBalance, 0, len(balances))
	seen := make(map[string]struct{}, len(suppliers))
	for _, s := range suppliers {
		if _, ok := seen[s.SupplierID]; ok {
			continue
		}
		seen[s.SupplierID] = struct{}{}
		if b, ok := balances[s.SupplierID]; ok {
			rows = append(rows, b)
		}
	}
	return rows
}

func inBranch(recordBranch, wanted string) bool {
	return wanted == "" || recordBranch == wanted
}
