package actions

import (
	"context"
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/mongoconfig"
)

const sampleBudgetAmount = 1200

// BootstrapSampleData seeds a small demo data set. Each step is skipped when
// data already exists, so repeated calls are no-ops.
type BootstrapSampleData struct{}

func sampleTransactions() []*mongoconfig.TransactionCreate {
	return []*mongoconfig.TransactionCreate{
		{Title: "Groceries", Amount: 42.5, Type: service.TypeExpense, Category: "Food"},
		{Title: "Salary", Amount: 1800, Type: service.TypeIncome, Category: "Other"},
		{Title: "Metro", Amount: 3.2, Type: service.TypeExpense, Category: "Transport"},
		{Title: "Electric Bill", Amount: 65, Type: service.TypeExpense, Category: "Bills"},
		{Title: "Coffee", Amount: 4.1, Type: service.TypeExpense, Category: "Food"},
	}
}

func (a *BootstrapSampleData) Perform(ctx context.Context, store *storage.Storage) error {
	transactionCount, err := store.Transactions.Count(ctx)
	if err != nil {
		return err
	}
	if transactionCount == 0 {
		for _, create := range sampleTransactions() {
			if _, err := store.Transactions.Insert(ctx, create); err != nil {
				return err
			}
		}
	}

	month := service.CurrentMonthKey()
	budgetCount, err := store.Budgets.CountByMonth(ctx, month)
	if err != nil {
		return err
	}
	if budgetCount == 0 {
		if err := store.Budgets.Upsert(ctx, month, sampleBudgetAmount, time.Now().UTC()); err != nil {
			return err
		}
	}

	profileCount, err := store.Profiles.Count(ctx)
	if err != nil {
		return err
	}
	if profileCount == 0 {
		if _, err := store.Profiles.EnsureDefault(ctx, service.DefaultProfileDocument()); err != nil {
			return err
		}
	}

	return nil
}
