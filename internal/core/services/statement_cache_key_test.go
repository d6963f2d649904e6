package services

import (
	"testing"
	"time"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/core/ledger"
	"github.com/stretchr/testify/assert"
)

func TestStatementCacheKey(t *testing.T) {
	updated := time.Date(2024, time.March, 1, 9, 30, 0, 0, time.UTC)
	from := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, time.March, 31, 0, 0, 0, 0, time.UTC)
	supplier := domain.Supplier{SupplierID: "sup-1", AuditFields: domain.AuditFields{LastUpdatedAt: updated}}

	base := statementCacheKey(supplier, "p1", "v1", ledger.StatementOptions{})
	assert.Equal(t, "supplier-statement:sup-1:1709285400000000000:p1:v1:-:-:false:", base)

	windowed := statementCacheKey(supplier, "p1", "v1", ledger.StatementOptions{
		Period:             domain.NewDateRange(&from, &to),
		RebaseToRangeStart: true,
		BranchID:           "north",
	})
	assert.Equal(t, "supplier-statement:sup-1:1709285400000000000:p1:v1:2024-03-05:2024-03-31:true:north", windowed)

	tests := []struct {
		name string
		key  string
	}{
		{"purchases changed", statementCacheKey(supplier, "p2", "v1", ledger.StatementOptions{})},
		{"vouchers changed", statementCacheKey(supplier, "p1", "v2", ledger.StatementOptions{})},
		{"rebase changed", statementCacheKey(supplier, "p1", "v1", ledger.StatementOptions{RebaseToRangeStart: true})},
		{"supplier edited", statementCacheKey(domain.Supplier{
			SupplierID:  "sup-1",
			AuditFields: domain.AuditFields{LastUpdatedAt: updated.Add(time.Minute)},
		}, "p1", "v1", ledger.StatementOptions{})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.key)
		})
	}
}
