package mongoconfig

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Transaction represents a transaction document.
type Transaction struct {
	ID       bson.ObjectID `bson:"_id,omitempty"`
	Title    string        `bson:"title"`
	Amount   float64       `bson:"amount"`
	Type     string        `bson:"type"`
	Category string        `bson:"category"`
	Date     time.Time     `bson:"date"`
	Notes    string        `bson:"notes,omitempty"`
}

// TransactionCreate is the input for creating a new transaction.
type TransactionCreate struct {
	Title    string
	Amount   float64
	Type     string
	Category string
	Date     time.Time // defaults to now if zero
	Notes    string
}

// TransactionFilter specifies filters for listing transactions.
// All fields are optional and combine with logical AND.
type TransactionFilter struct {
	StartDate *time.Time // inclusive
	EndDate   *time.Time // exclusive
	Category  *string
	Type      *string
	MinAmount *float64 // inclusive
	MaxAmount *float64 // inclusive
	Limit     int64
}

// ITransactionCollection defines the interface for transaction storage operations.
// This abstraction allows swapping the implementation without changing callers.
type ITransactionCollection interface {
	Insert(ctx context.Context, create *TransactionCreate) (string, error)
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Count(ctx context.Context) (int64, error)
}
