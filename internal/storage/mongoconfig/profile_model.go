package mongoconfig

import (
	"context"
)

// ProfileKey is the fixed document key for the singleton profile. Keying every
// write on it keeps concurrent first-reads converging on one document instead
// of racing to create two.
const ProfileKey = "default"

// Profile represents the singleton profile document.
type Profile struct {
	ID         string   `bson:"_id"`
	Name       string   `bson:"name"`
	Currency   string   `bson:"currency"`
	DarkMode   bool     `bson:"dark_mode"`
	Categories []string `bson:"categories"`
	Onboarded  bool     `bson:"onboarded"`
}

// ProfileUpdate carries a partial update. Nil fields are left unchanged;
// Categories is only applied when non-nil.
type ProfileUpdate struct {
	Name       *string
	Currency   *string
	DarkMode   *bool
	Categories []string
	Onboarded  *bool
}

// IsEmpty reports whether the update carries no fields at all.
func (u *ProfileUpdate) IsEmpty() bool {
	return u.Name == nil &&
		u.Currency == nil &&
		u.DarkMode == nil &&
		u.Categories == nil &&
		u.Onboarded == nil
}

// IProfileCollection defines the interface for profile storage operations.
type IProfileCollection interface {
	// Find returns the singleton profile, or nil if it has not been created.
	Find(ctx context.Context) (*Profile, error)
	// EnsureDefault creates the profile with defaults if absent and returns
	// the stored document. Idempotent and safe under concurrent callers.
	EnsureDefault(ctx context.Context, defaults *Profile) (*Profile, error)
	// Update merges the provided fields into the singleton document,
	// creating it on first write.
	Update(ctx context.Context, update *ProfileUpdate) error
	Count(ctx context.Context) (int64, error)
}
