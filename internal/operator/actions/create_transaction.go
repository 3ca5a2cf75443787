package actions

import (
	"context"
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/mongoconfig"
)

// CreateTransaction records one immutable transaction. The category must be
// in the active category set (the profile's, or the defaults when no profile
// exists).
type CreateTransaction struct {
	Title    string
	Amount   float64
	Type     string
	Category string
	Date     time.Time // zero means now (UTC)
	Notes    string

	// ID holds the generated document ID after a successful Perform.
	ID string
}

func (a *CreateTransaction) Perform(ctx context.Context, store *storage.Storage) error {
	profile, err := store.Profiles.Find(ctx)
	if err != nil {
		return err
	}
	var storedCategories []string
	if profile != nil {
		storedCategories = profile.Categories
	}

	err = service.ValidateNewTransaction(a.Amount, a.Type, a.Category, service.ActiveCategories(storedCategories))
	if err != nil {
		return err
	}

	id, err := store.Transactions.Insert(ctx, &mongoconfig.TransactionCreate{
		Title:    a.Title,
		Amount:   a.Amount,
		Type:     a.Type,
		Category: a.Category,
		Date:     a.Date,
		Notes:    a.Notes,
	})
	if err != nil {
		return err
	}

	a.ID = id
	return nil
}
