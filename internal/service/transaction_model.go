package service

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction types.
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID       string
	Title    string
	Amount   decimal.Decimal
	Type     string
	Category string
	Date     time.Time
	Notes    string
}

// TransactionFilter specifies the optional list filters. All filters combine
// with logical AND; date bounds are half-open [start, end), amount bounds
// inclusive.
type TransactionFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	Category  *string
	Type      *string
	MinAmount *float64
	MaxAmount *float64
	Limit     int
}
