package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/carson-networks/finance-tracker/internal/service"
	"github.com/carson-networks/finance-tracker/internal/storage"
	"github.com/carson-networks/finance-tracker/internal/storage/mongoconfig"
)

// CompleteOnboarding sets the currency and onboarded flag on the profile,
// optionally replaces the category list, and upserts the current month's
// budget to Target.
//
// These are two writes to two collections with no cross-collection atomicity.
// If the budget write fails after the profile write succeeded, the system is
// left partially onboarded; the error names the completed step so the caller
// can see which state it is in.
type CompleteOnboarding struct {
	Currency   string
	Target     float64
	Categories []string
}

func (a *CompleteOnboarding) Perform(ctx context.Context, store *storage.Storage) error {
	if a.Target <= 0 {
		return service.ErrNonPositiveAmount
	}

	onboarded := true
	update := &mongoconfig.ProfileUpdate{
		Currency:  &a.Currency,
		Onboarded: &onboarded,
	}
	if len(a.Categories) > 0 {
		update.Categories = a.Categories
	}

	if err := store.Profiles.Update(ctx, update); err != nil {
		return err
	}

	err := store.Budgets.Upsert(ctx, service.CurrentMonthKey(), a.Target, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("profile updated but budget write failed: %w", err)
	}
	return nil
}
