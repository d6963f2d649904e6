package handlers

import (
	"fmt"

	"github.com/SscSPs/supplier_ledger/internal/apperrors"
	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/SscSPs/supplier_ledger/internal/core/ledger"
	"github.com/SscSPs/supplier_ledger/internal/dto"
	"github.com/tidwall/gjson"
)

// Accepted spellings of the top-level sections of a compute statement body.
var computeRequestSections = map[string][]string{
	"supplier":  {"supplier"},
	"purchases": {"purchases", "purchaseInvoices", "purchase_invoices"},
	"vouchers":  {"vouchers", "paymentVouchers", "payment_vouchers", "payments"},
	"fromDate":  {"fromDate", "from_date", "from"},
	"toDate":    {"toDate", "to_date", "to"},
	"rebase":    {"rebase", "rebaseToRangeStart"},
	"branchID":  {"branchID", "branchId", "branch_id"},
}

type computeStatementInput struct {
	supplier  domain.Supplier
	purchases []domain.RawPurchase
	vouchers  []domain.RawPaymentVoucher
	opts      ledger.StatementOptions
}

func section(body []byte, name string) gjson.Result {
	for _, path := range computeRequestSections[name] {
		if v := gjson.GetBytes(body, path); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

// decodeComputeStatementRequest reads a body shaped like dto.ComputeStatementRequest.
func decodeComputeStatementRequest(body []byte, rebaseByDefault bool) (computeStatementInput, error) {
	var input computeStatementInput

	supplierRaw := section(body, "supplier")
	if !supplierRaw.Exists() {
		return input, fmt.Errorf("%w: supplier is required", apperrors.ErrValidation)
	}
	supplier, err := ledger.DecodeSupplier([]byte(supplierRaw.Raw))
	if err != nil {
		return input, err
	}

	purchases, err := ledger.DecodePurchases([]byte(section(body, "purchases").Raw))
	if err != nil {
		return input, err
	}

	vouchers, err := ledger.DecodePaymentVouchers([]byte(section(body, "vouchers").Raw))
	if err != nil {
		return input, err
	}

	query := dto.StatementQuery{
		FromDate: section(body, "fromDate").String(),
		ToDate:   section(body, "toDate").String(),
		BranchID: section(body, "branchID").String(),
	}
	if rebase := section(body, "rebase"); rebase.Exists() {
		flag := rebase.Bool()
		query.Rebase = &flag
	}

	period, err := query.Period()
	if err != nil {
		return input, err
	}

	input.supplier = supplier
	input.purchases = purchases
	input.vouchers = vouchers
	input.opts = ledger.StatementOptions{
		Period:             period,
		RebaseToRangeStart: query.RebaseOr(rebaseByDefault),
		BranchID:           query.BranchID,
	}
	return input, nil
}
