package service

// Summary is the aggregation result for the summary view.
//
// Balance, Income, Expense, and MonthSpend are rounded to 2 decimal places.
// Budget and Progress are deliberately left unrounded; the asymmetry is part
// of the contract.
type Summary struct {
	Balance    float64
	Income     float64
	Expense    float64
	Month      string
	MonthSpend float64
	Budget     float64
	Progress   float64
	Currency   string
	Recent     []Transaction
}
