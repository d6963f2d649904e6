// Package ledger computes supplier account statements and balance summaries.
//
// Everything here is a pure function of already-fetched supplier, purchase and
// payment voucher records: purchases are debits (the business owes more),
// payment vouchers are credits (the business owes less). Callers fetch the data
// and render the results.
package ledger
