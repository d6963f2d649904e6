package services

import (
	"strconv"
	"strings"
	"time"

	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/core/ledger"
)

const statementKeyPrefix = "supplier-statement"

// statementCacheKey identifies a statement by everything that can change it:
// the supplier record, both transaction streams and the statement options.
func statementCacheKey(supplier domain.Supplier, purchasesVersion, vouchersVersion string, opts ledger.StatementOptions) string {
	parts := []string{
		statementKeyPrefix,
		supplier.SupplierID,
		strconv.FormatInt(supplier.LastUpdatedAt.UnixNano(), 10),
		purchasesVersion,
		vouchersVersion,
		keyDate(opts.Period.From),
		keyDate(opts.Period.To),
		strconv.FormatBool(opts.RebaseToRangeStart),
		opts.BranchID,
	}
	return strings.Join(parts, ":")
}

func keyDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(time.DateOnly)
}
