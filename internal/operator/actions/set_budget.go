package actions

import (
	"context"
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
)

// SetBudget creates or fully replaces the budget for a month. Overwrites are
// destructive; no history of prior values is kept. Month must already be a
// normalized "YYYY-MM" key.
type SetBudget struct {
	Month  string
	Amount float64
}

func (a *SetBudget) Perform(ctx context.Context, store *storage.Storage) error {
	if a.Amount <= 0 {
		return service.ErrNonPositiveAmount
	}
	return store.Budgets.Upsert(ctx, a.Month, a.Amount, time.Now().UTC())
}
