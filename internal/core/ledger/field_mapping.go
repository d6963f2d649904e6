package ledger

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/supplier_ledger/internal/apperrors"
	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/tidwall/gjson"
)

// fieldAliases maps a canonical field to the spellings upstream screens have
// used for it, in lookup priority order. These tables are the only place that
// knows about field-name variance in raw records.
type fieldAliases map[string][]string

var supplierFields = fieldAliases{
	"id":             {"id", "supplierId", "supplier_id", "supplierID", "_id"},
	"branchId":       {"branchId", "branch_id", "branchID"},
	"name":           {"name", "supplierName", "supplier_name"},
	"phone":          {"phone", "phoneNumber", "phone_number", "mobile"},
	"address":        {"address"},
	"openingBalance": {"openingBalance", "opening_balance", "initialBalance", "initial_balance"},
	"creditLimit":    {"creditLimit", "credit_limit"},
	"paymentTerms":   {"paymentTerms", "payment_terms", "paymentTermsDays", "payment_terms_days"},
}

var purchaseFields = fieldAliases{
	"id":            {"id", "purchaseId", "purchase_id", "purchaseID", "_id"},
	"supplierId":    {"supplierId", "supplier_id", "supplierID", "supplier.id", "supplier.supplierId"},
	"branchId":      {"branchId", "branch_id", "branchID"},
	"invoiceNumber": {"invoiceNumber", "invoice_number", "invoiceNo", "invoice_no"},
	"date":          {"date", "purchaseDate", "purchase_date", "invoiceDate", "invoice_date", "createdAt", "created_at"},
	"total":         {"total", "totalAmount", "total_amount", "grandTotal", "grand_total"},
	"description":   {"description", "notes", "note"},
}

var voucherFields = fieldAliases{
	"id":            {"id", "voucherId", "voucher_id", "voucherID", "paymentId", "payment_id", "_id"},
	"supplierId":    {"supplierId", "supplier_id", "supplierID", "supplier.id", "supplier.supplierId"},
	"branchId":      {"branchId", "branch_id", "branchID"},
	"voucherNumber": {"voucherNumber", "voucher_number", "voucherNo", "voucher_no"},
	"date":          {"date", "paymentDate", "payment_date", "voucherDate", "voucher_date", "createdAt", "created_at"},
	"amount":        {"amount", "paidAmount", "paid_amount", "total"},
	"paymentMethod": {"paymentMethod", "payment_method", "method"},
	"description":   {"description", "notes", "note"},
}

// dateLayouts are tried in order for string dates.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// lookup returns the first non-null value among the aliases of field.
func (a fieldAliases) lookup(record gjson.Result, field string) gjson.Result {
	for _, path := range a[field] {
		if v := record.Get(path); v.Exists() && v.Type != gjson.Null {
			return v
		}
	}
	return gjson.Result{}
}

func (a fieldAliases) str(record gjson.Result, field string) string {
	return strings.TrimSpace(a.lookup(record, field).String())
}

// amount returns nil when the field is missing or not a number.
func (a fieldAliases) amount(record gjson.Result, field string) *decimal.Decimal {
	v := a.lookup(record, field)
	var raw string
	switch v.Type {
	case gjson.Number:
		raw = v.Raw
	case gjson.String:
		raw = strings.TrimSpace(v.Str)
	default:
		return nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil
	}
	return &d
}

// date returns the zero time when the field is missing or unparsable.
// Numbers are unix seconds, or milliseconds when large enough to be one.
// Objects of the {"seconds": n} / {"_seconds": n} shape are timestamp exports.
func (a fieldAliases) date(record gjson.Result, field string) time.Time {
	v := a.lookup(record, field)
	switch {
	case v.Type == gjson.Number:
		return unixTime(v.Int())
	case v.Type == gjson.String:
		s := strings.TrimSpace(v.Str)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t
			}
		}
	case v.IsObject():
		for _, key := range []string{"seconds", "_seconds"} {
			if secs := v.Get(key); secs.Type == gjson.Number {
				return time.Unix(secs.Int(), 0).UTC()
			}
		}
	}
	return time.Time{}
}

func unixTime(n int64) time.Time {
	const millisThreshold = 100_000_000_000 // ~1973 in ms, ~5138 in s
	if n >= millisThreshold || n <= -millisThreshold {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}

// DecodeSupplier reads one supplier object in any supported field spelling.
func DecodeSupplier(raw []byte) (domain.Supplier, error) {
	if !gjson.ValidBytes(raw) {
		return domain.Supplier{}, fmt.Errorf("%w: supplier payload is not valid JSON", apperrors.ErrValidation)
	}
	record := gjson.ParseBytes(raw)
	if !record.IsObject() {
		return domain.Supplier{}, fmt.Errorf("%w: supplier payload must be a JSON object", apperrors.ErrValidation)
	}
	return supplierFromRecord(record), nil
}

// DecodeSuppliers reads a JSON array of suppliers.
func DecodeSuppliers(raw []byte) ([]domain.Supplier, error) {
	records, err := decodeArray(raw, "suppliers")
	if err != nil {
		return nil, err
	}
	suppliers := make([]domain.Supplier, 0, len(records))
	for _, record := range records {
		suppliers = append(suppliers, supplierFromRecord(record))
	}
	return suppliers, nil
}

// DecodePurchases reads a JSON array of purchase invoices.
func DecodePurchases(raw []byte) ([]domain.RawPurchase, error) {
	records, err := decodeArray(raw, "purchases")
	if err != nil {
		return nil, err
	}
	purchases := make([]domain.RawPurchase, 0, len(records))
	for _, record := range records {
		purchases = append(purchases, domain.RawPurchase{
			PurchaseID:    purchaseFields.str(record, "id"),
			SupplierID:    purchaseFields.str(record, "supplierId"),
			BranchID:      purchaseFields.str(record, "branchId"),
			InvoiceNumber: purchaseFields.str(record, "invoiceNumber"),
			Date:          purchaseFields.date(record, "date"),
			Total:         purchaseFields.amount(record, "total"),
			Description:   purchaseFields.str(record, "description"),
		})
	}
	return purchases, nil
}

// DecodePaymentVouchers reads a JSON array of payment vouchers.
func DecodePaymentVouchers(raw []byte) ([]domain.RawPaymentVoucher, error) {
	records, err := decodeArray(raw, "payment vouchers")
	if err != nil {
		return nil, err
	}
	vouchers := make([]domain.RawPaymentVoucher, 0, len(records))
	for _, record := range records {
		vouchers = append(vouchers, domain.RawPaymentVoucher{
			VoucherID:     voucherFields.str(record, "id"),
			SupplierID:    voucherFields.str(record, "supplierId"),
			BranchID:      voucherFields.str(record, "branchId"),
			VoucherNumber: voucherFields.str(record, "voucherNumber"),
			Date:          voucherFields.date(record, "date"),
			Amount:        voucherFields.amount(record, "amount"),
			PaymentMethod: voucherFields.str(record, "paymentMethod"),
			Description:   voucherFields.str(record, "description"),
		})
	}
	return vouchers, nil
}

func supplierFromRecord(record gjson.Result) domain.Supplier {
	s := domain.Supplier{
		SupplierID:   supplierFields.str(record, "id"),
		BranchID:     supplierFields.str(record, "branchId"),
		Name:         supplierFields.str(record, "name"),
		Phone:        supplierFields.str(record, "phone"),
		Address:      supplierFields.str(record, "address"),
		CreditLimit:  supplierFields.amount(record, "creditLimit"),
		PaymentTerms: int(supplierFields.lookup(record, "paymentTerms").Int()),
	}
	if opening := supplierFields.amount(record, "openingBalance"); opening != nil {
		s.OpeningBalance = *opening
	}
	return s
}

// decodeArray parses raw as a JSON array of objects. Empty input and null are
// treated as no records; elements that are not objects are skipped.
func decodeArray(raw []byte, what string) ([]gjson.Result, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: %s payload is not valid JSON", apperrors.ErrValidation, what)
	}
	parsed := gjson.ParseBytes(raw)
	if parsed.Type == gjson.Null {
		return nil, nil
	}
	if !parsed.IsArray() {
		return nil, fmt.Errorf("%w: %s payload must be a JSON array", apperrors.ErrValidation, what)
	}

	var records []gjson.Result
	parsed.ForEach(func(_, value gjson.Result) bool {
		if value.IsObject() {
			records = append(records, value)
		}
		return true
	})
	return records, nil
}
