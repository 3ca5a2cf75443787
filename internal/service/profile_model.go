package service

import (
	"github.com/carson-networks/finance-tracker/internal/storage/mongoconfig"
)

// Default profile values, matching the fixed six-category set.
const (
	DefaultName     = "You"
	DefaultCurrency = "$"
)

// DefaultCategories returns a fresh copy of the default category set so
// callers cannot mutate the canonical order.
func DefaultCategories() []string {
	return []string{"Food", "Bills", "Transport", "Shopping", "Savings", "Other"}
}

// Update statuses. An empty partial update is reported distinctly so callers
// can tell an accidental empty request from a real change.
const (
	StatusOK        = "ok"
	StatusNoChanges = "no_changes"
)

// Profile represents the singleton profile in the service layer.
type Profile struct {
	Name       string
	Currency   string
	DarkMode   bool
	Categories []string
	Onboarded  bool
}

// ProfileUpdate carries a partial profile update; nil fields are unchanged.
type ProfileUpdate struct {
	Name       *string
	Currency   *string
	DarkMode   *bool
	Categories []string
	Onboarded  *bool
}

// ActiveCategories applies the read-time fallback: stored categories when
// non-empty, otherwise the defaults. The substitution is never persisted.
func ActiveCategories(stored []string) []string {
	if len(stored) == 0 {
		return DefaultCategories()
	}
	return stored
}

// DefaultProfileDocument builds the stored form of a brand-new profile.
func DefaultProfileDocument() *mongoconfig.Profile {
	return &mongoconfig.Profile{
		ID:         mongoconfig.ProfileKey,
		Name:       DefaultName,
		Currency:   DefaultCurrency,
		DarkMode:   false,
		Categories: DefaultCategories(),
		Onboarded:  false,
	}
}
