package dto

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/supplier_ledger/internal/apperrors"
	"github.com/SscSPs/supplier_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// DateLayout is the calendar date format used on the wire.
const DateLayout = "2006-01-02"

// StatementQuery holds the query parameters of a statement request.
type StatementQuery struct {
	FromDate string `form:"fromDate" json:"fromDate" binding:"omitempty,isodate"`
	ToDate   string `form:"toDate" json:"toDate" binding:"omitempty,isodate"`
	Rebase   *bool  `form:"rebase" json:"rebase"` // Server default applies when omitted
	BranchID string `form:"branchID" json:"branchID"`
}

// Period parses the date bounds. Both are optional; an inverted range is rejected.
func (q StatementQuery) Period() (domain.DateRange, error) {
	period, err := ParseDateRange(q.FromDate, q.ToDate)
	if err != nil {
		return domain.DateRange{}, err
	}
	if period.IsInverted() {
		return domain.DateRange{}, apperrors.ErrInvalidDateRange
	}
	return period, nil
}

// ParseDateRange parses optional YYYY-MM-DD bounds without checking their order.
func ParseDateRange(fromDate, toDate string) (domain.DateRange, error) {
	from, err := parseDate(fromDate, "fromDate")
	if err != nil {
		return domain.DateRange{}, err
	}
	to, err := parseDate(toDate, "toDate")
	if err != nil {
		return domain.DateRange{}, err
	}
	return domain.NewDateRange(from, to), nil
}

// RebaseOr returns the requested rebase flag, or fallback when none was given.
func (q StatementQuery) RebaseOr(fallback bool) bool {
	if q.Rebase == nil {
		return fallback
	}
	return *q.Rebase
}

func parseDate(value, field string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid %s %q, use YYYY-MM-DD", apperrors.ErrValidation, field, value)
	}
	return &t, nil
}

// SupplierResponse is the supplier header printed above a statement
type SupplierResponse struct {
	SupplierID     string           `json:"supplierID"`
	Name           string           `json:"name"`
	Phone          string           `json:"phone,omitempty"`
	Address        string           `json:"address,omitempty"`
	OpeningBalance decimal.Decimal  `json:"openingBalance"`
	CreditLimit    *decimal.Decimal `json:"creditLimit,omitempty"`
	PaymentTerms   int              `json:"paymentTerms"`
}

// StatementEntryResponse represents one row of a statement
type StatementEntryResponse struct {
	Date           string           `json:"date"`
	Kind           string           `json:"kind"`
	Reference      string           `json:"reference"`
	Description    string           `json:"description"`
	Debit          *decimal.Decimal `json:"debit"`
	Credit         *decimal.Decimal `json:"credit"`
	RunningBalance decimal.Decimal  `json:"runningBalance"`
}

// StatementSummaryResponse represents the totals of a statement
type StatementSummaryResponse struct {
	OpeningBalance decimal.Decimal `json:"openingBalance"`
	TotalDebit     decimal.Decimal `json:"totalDebit"`
	TotalCredit    decimal.Decimal `json:"totalCredit"`
	ClosingBalance decimal.Decimal `json:"closingBalance"`
	Status         string          `json:"status"`
}

// StatementResponse represents a supplier statement
type StatementResponse struct {
	Supplier SupplierResponse         `json:"supplier"`
	FromDate string                   `json:"fromDate,omitempty"`
	ToDate   string                   `json:"toDate,omitempty"`
	Rebased  bool                     `json:"rebased"`
	Entries  []StatementEntryResponse `json:"entries"`
	Summary  StatementSummaryResponse `json:"summary"`
}

// SupplierBalanceResponse represents one row of the supplier balances list
type SupplierBalanceResponse struct {
	SupplierID      string          `json:"supplierID"`
	SupplierName    string          `json:"supplierName"`
	OpeningBalance  decimal.Decimal `json:"openingBalance"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	CurrentBalance  decimal.Decimal `json:"currentBalance"`
	Status          string          `json:"status"`
	OverCreditLimit bool            `json:"overCreditLimit"`
}

// SupplierBalancesResponse represents the supplier balances list with its totals
type SupplierBalancesResponse struct {
	BranchID string                    `json:"branchID,omitempty"`
	Rows     []SupplierBalanceResponse `json:"rows"`
	Totals   struct {
		OpeningBalance decimal.Decimal `json:"openingBalance"`
		TotalDebit     decimal.Decimal `json:"totalDebit"`
		TotalCredit    decimal.Decimal `json:"totalCredit"`
		CurrentBalance decimal.Decimal `json:"currentBalance"`
	} `json:"totals"`
}

// ToStatementResponse converts a domain statement to its wire form.
func ToStatementResponse(stmt domain.Statement) StatementResponse {
	s := stmt.Supplier
	resp := StatementResponse{
		Supplier: SupplierResponse{
			SupplierID:     s.SupplierID,
			Name:           s.Name,
			Phone:          s.Phone,
			Address:        s.Address,
			OpeningBalance: s.OpeningBalance,
			CreditLimit:    s.CreditLimit,
			PaymentTerms:   s.PaymentTerms,
		},
		FromDate: formatDatePtr(stmt.Period.From),
		ToDate:   formatDatePtr(stmt.Period.To),
		Rebased:  stmt.Rebased,
		Entries:  make([]StatementEntryResponse, 0, len(stmt.Entries)),
		Summary: StatementSummaryResponse{
			OpeningBalance: stmt.Summary.OpeningBalance,
			TotalDebit:     stmt.Summary.TotalDebit,
			TotalCredit:    stmt.Summary.TotalCredit,
			ClosingBalance: stmt.Summary.ClosingBalance,
			Status:         string(stmt.Summary.Status),
		},
	}

	for _, e := range stmt.Entries {
		resp.Entries = append(resp.Entries, StatementEntryResponse{
			Date:           formatDate(e.Date),
			Kind:           string(e.Kind),
			Reference:      e.Reference,
			Description:    e.Description,
			Debit:          e.Debit,
			Credit:         e.Credit,
			RunningBalance: e.RunningBalance,
		})
	}
	return resp
}

// ToSupplierBalancesResponse converts balance rows and adds their totals.
func ToSupplierBalancesResponse(rows []domain.AccountBalance, branchID string) SupplierBalancesResponse {
	resp := SupplierBalancesResponse{
		BranchID: branchID,
		Rows:     make([]SupplierBalanceResponse, 0, len(rows)),
	}
	resp.Totals.OpeningBalance = decimal.Zero
	resp.Totals.TotalDebit = decimal.Zero
	resp.Totals.TotalCredit = decimal.Zero
	resp.Totals.CurrentBalance = decimal.Zero

	for _, b := range rows {
		resp.Rows = append(resp.Rows, SupplierBalanceResponse{
			SupplierID:      b.SupplierID,
			SupplierName:    b.SupplierName,
			OpeningBalance:  b.OpeningBalance,
			TotalDebit:      b.TotalDebit,
			TotalCredit:     b.TotalCredit,
			CurrentBalance:  b.CurrentBalance,
			Status:          string(b.Status),
			OverCreditLimit: b.OverCreditLimit,
		})
		resp.Totals.OpeningBalance = resp.Totals.OpeningBalance.Add(b.OpeningBalance)
		resp.Totals.TotalDebit = resp.Totals.TotalDebit.Add(b.TotalDebit)
		resp.Totals.TotalCredit = resp.Totals.TotalCredit.Add(b.TotalCredit)
		resp.Totals.CurrentBalance = resp.Totals.CurrentBalance.Add(b.CurrentBalance)
	}
	return resp
}

// formatDate renders an unknown (zero) date as "".
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func formatDatePtr(t *time.Time) string {
	if t == nil {
		return ""
	}
	return formatDate(*t)
}

// ComputeStatementRequest documents the body of POST /statements. Record
// fields may use any spelling the upstream screens produce, e.g. supplier_id,
// supplierId or supplierID.
type ComputeStatementRequest struct {
	Supplier  json.RawMessage `json:"supplier" swaggertype:"object"`
	Purchases json.RawMessage `json:"purchases" swaggertype:"array,object"`
	Vouchers  json.RawMessage `json:"vouchers" swaggertype:"array,object"`
	FromDate  string          `json:"fromDate" example:"2024-03-01"`
	ToDate    string          `json:"toDate" example:"2024-03-31"`
	Rebase    *bool           `json:"rebase"`
	BranchID  string          `json:"branchID"`
}
