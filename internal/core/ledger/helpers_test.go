package ledger_test

import (
	"time"

	"github.com/shopspring/decimal"
)

func day(d int) time.Time {
	return time.Date(2024, time.January, d, 0, 0, 0, 0, time.UTC)
}

func dayPtr(d int) *time.Time {
	t := day(d)
	return &t
}

func dec(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func decPtr(v string) *decimal.Decimal {
	d := dec(v)
	return &d
}
