package mongoconfig

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const budgetCollectionName = "budget"

var _ IBudgetCollection = (*BudgetCollection)(nil)

type BudgetCollection struct {
	coll *mongo.Collection
}

func NewBudgetCollection(db *mongo.Database) *BudgetCollection {
	return &BudgetCollection{coll: db.Collection(budgetCollectionName)}
}

func (b *BudgetCollection) FindByMonth(ctx context.Context, month string) (*Budget, error) {
	var budget Budget
	err := b.coll.FindOne(ctx, bson.M{"month": month}).Decode(&budget)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// Not found is not an error; callers default to zero.
			return nil, nil
		}
		return nil, err
	}
	return &budget, nil
}

func (b *BudgetCollection) Upsert(ctx context.Context, month string, amount float64, updatedAt time.Time) error {
	update := bson.M{"$set": bson.M{
		"month":      month,
		"amount":     amount,
		"updated_at": updatedAt,
	}}
	opts := options.UpdateOne().SetUpsert(true)

	_, err := b.coll.UpdateOne(ctx, bson.M{"month": month}, update, opts)
	return err
}

func (b *BudgetCollection) CountByMonth(ctx context.Context, month string) (int64, error) {
	return b.coll.CountDocuments(ctx, bson.M{"month": month})
}
