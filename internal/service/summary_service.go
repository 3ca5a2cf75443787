package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/mongoconfig"
)

const recentLimit = 10

// SummaryService computes the balance / monthly spend / budget progress view.
type SummaryService struct {
	storage *storage.Storage
}

// NewSummaryService creates a new SummaryService.
func NewSummaryService(store *storage.Storage) *SummaryService {
	return &SummaryService{storage: store}
}

// ComputeSummary aggregates the whole transaction log plus the given month's
// spend against its budget. An empty month defaults to the current UTC
// year-month. Read-only apart from lazy creation of the profile when none
// exists yet.
func (s *SummaryService) ComputeSummary(ctx context.Context, month string) (*Summary, error) {
	month, err := NormalizeMonth(month)
	if err != nil {
		return nil, err
	}

	// All-time balance over an unbounded scan.
	all, err := s.storage.Transactions.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, tx := range all {
		switch tx.Type {
		case TypeIncome:
			income = income.Add(decimal.NewFromFloat(tx.Amount))
		case TypeExpense:
			expense = expense.Add(decimal.NewFromFloat(tx.Amount))
		}
	}
	balance := income.Sub(expense)

	start, end, err := MonthInterval(month)
	if err != nil {
		return nil, err
	}

	monthRows, err := s.storage.Transactions.List(ctx, &mongoconfig.TransactionFilter{
		StartDate: &start,
		EndDate:   &end,
	})
	if err != nil {
		return nil, err
	}

	monthSpend := decimal.Zero
	for _, tx := range monthRows {
		if tx.Type == TypeExpense {
			monthSpend = monthSpend.Add(decimal.NewFromFloat(tx.Amount))
		}
	}

	budget, err := s.storage.Budgets.FindByMonth(ctx, month)
	if err != nil {
		return nil, err
	}
	budgetAmount := 0.0
	if budget != nil {
		budgetAmount = budget.Amount
	}

	// Progress on the raw spend, 0 when no budget is set.
	progress := 0.0
	if budgetAmount != 0 {
		progress = monthSpend.InexactFloat64() / budgetAmount
	}

	recentRows, err := s.storage.Transactions.List(ctx, &mongoconfig.TransactionFilter{
		Limit: recentLimit,
	})
	if err != nil {
		return nil, err
	}
	recent := make([]Transaction, len(recentRows))
	for i, row := range recentRows {
		recent[i] = transactionFromStorage(row)
	}

	currency, err := s.currency(ctx)
	if err != nil {
		return nil, err
	}

	return &Summary{
		Balance:    balance.Round(2).InexactFloat64(),
		Income:     income.Round(2).InexactFloat64(),
		Expense:    expense.Round(2).InexactFloat64(),
		Month:      month,
		MonthSpend: monthSpend.Round(2).InexactFloat64(),
		Budget:     budgetAmount,
		Progress:   progress,
		Currency:   currency,
		Recent:     recent,
	}, nil
}

func (s *SummaryService) currency(ctx context.Context) (string, error) {
	profile, err := s.storage.Profiles.Find(ctx)
	if err != nil {
		return "", err
	}
	if profile == nil {
		profile, err = s.storage.Profiles.EnsureDefault(ctx, DefaultProfileDocument())
		if err != nil {
			return "", err
		}
	}
	return profile.Currency, nil
}
