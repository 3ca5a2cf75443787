package mongoconfig

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Budget represents a monthly budget document. At most one exists per month
// key, enforced by upserting on the month field.
type Budget struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	Month     string        `bson:"month"`
	Amount    float64       `bson:"amount"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

// IBudgetCollection defines the interface for budget storage operations.
type IBudgetCollection interface {
	// FindByMonth returns the budget for a month key, or nil if none is set.
	FindByMonth(ctx context.Context, month string) (*Budget, error)
	// Upsert creates or fully replaces the budget for a month key.
	Upsert(ctx context.Context, month string, amount float64, updatedAt time.Time) error
	CountByMonth(ctx context.Context, month string) (int64, error)
}
