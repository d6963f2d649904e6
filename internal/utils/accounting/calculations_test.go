package accounting

import (
	"testing"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSignedAmount(t *testing.T) {
	amount := decimal.NewFromInt(250)

	assert.True(t, SignedAmount(domain.Debit, amount).Equal(decimal.NewFromInt(250)))
	assert.True(t, SignedAmount(domain.Credit, amount).Equal(decimal.NewFromInt(-250)))
	assert.True(t, SignedAmount(domain.Opening, amount).IsZero())
	assert.True(t, SignedAmount(domain.TransactionKind("REFUND"), amount).IsZero())
}

func TestNetMovement(t *testing.T) {
	txns := []domain.Transaction{
		{Kind: domain.Debit, Amount: decimal.NewFromInt(500)},
		{Kind: domain.Credit, Amount: decimal.NewFromInt(300)},
		{Kind: domain.Debit, Amount: decimal.NewFromFloat(0.25)},
	}

	assert.True(t, NetMovement(txns).Equal(decimal.NewFromFloat(200.25)))
	assert.True(t, NetMovement(nil).IsZero())
}

func TestMagnitude(t *testing.T) {
	negative := decimal.NewFromInt(-40)
	positive := decimal.NewFromInt(40)

	assert.True(t, Magnitude(nil).IsZero())
	assert.True(t, Magnitude(&negative).Equal(positive))
	assert.True(t, Magnitude(&positive).Equal(positive))
}

func TestValidateStatementBalance(t *testing.T) {
	d := func(v int64) *decimal.Decimal {
		x := decimal.NewFromInt(v)
		return &x
	}
	valid := func() domain.Statement {
		return domain.Statement{
			Supplier: domain.Supplier{SupplierID: "S1"},
			Entries: []domain.LedgerEntry{
				{Kind: domain.Opening, RunningBalance: decimal.NewFromInt(1000)},
				{Kind: domain.Debit, Reference: "PUR-1", Debit: d(500), RunningBalance: decimal.NewFromInt(1500)},
				{Kind: domain.Credit, Reference: "PAY-1", Credit: d(300), RunningBalance: decimal.NewFromInt(1200)},
			},
			Summary: domain.StatementSummary{
				OpeningBalance: decimal.NewFromInt(1000),
				TotalDebit:     decimal.NewFromInt(500),
				TotalCredit:    decimal.NewFromInt(300),
				ClosingBalance: decimal.NewFromInt(1200),
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(s *domain.Statement)
		wantErr bool
		errMsg  string
	}{
		{
			name:   "valid statement",
			mutate: func(s *domain.Statement) {},
		},
		{
			name:    "no entries",
			mutate:  func(s *domain.Statement) { s.Entries = nil },
			wantErr: true,
			errMsg:  "no opening entry",
		},
		{
			name:    "first entry is not the opening row",
			mutate:  func(s *domain.Statement) { s.Entries = s.Entries[1:] },
			wantErr: true,
			errMsg:  "expected OPENING_BALANCE",
		},
		{
			name:    "broken running balance",
			mutate:  func(s *domain.Statement) { s.Entries[2].RunningBalance = decimal.NewFromInt(1300) },
			wantErr: true,
			errMsg:  "running balance",
		},
		{
			name:    "entry with both sides",
			mutate:  func(s *domain.Statement) { s.Entries[1].Credit = d(1) },
			wantErr: true,
			errMsg:  "exactly one of debit or credit",
		},
		{
			name:    "summary totals drift",
			mutate:  func(s *domain.Statement) { s.Summary.TotalDebit = decimal.NewFromInt(499) },
			wantErr: true,
			errMsg:  "summary totals",
		},
		{
			name:    "closing identity broken",
			mutate:  func(s *domain.Statement) { s.Summary.ClosingBalance = decimal.NewFromInt(0) },
			wantErr: true,
			errMsg:  "closing balance",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmt := valid()
			tt.mutate(&stmt)
			err := ValidateStatementBalance(stmt)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
