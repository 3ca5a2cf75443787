package mongoconfig

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const transactionCollectionName = "transaction"

var _ ITransactionCollection = (*TransactionCollection)(nil)

type TransactionCollection struct {
	coll *mongo.Collection
}

func NewTransactionCollection(db *mongo.Database) *TransactionCollection {
	return &TransactionCollection{coll: db.Collection(transactionCollectionName)}
}

// Insert creates a new transaction and returns its generated ID as a hex string.
func (t *TransactionCollection) Insert(ctx context.Context, create *TransactionCreate) (string, error) {
	doc := Transaction{
		Title:    create.Title,
		Amount:   create.Amount,
		Type:     create.Type,
		Category: create.Category,
		Date:     create.Date,
		Notes:    create.Notes,
	}
	if doc.Date.IsZero() {
		doc.Date = time.Now().UTC()
	}

	result, err := t.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}

	id, ok := result.InsertedID.(bson.ObjectID)
	if !ok {
		return "", mongo.ErrNilDocument
	}
	return id.Hex(), nil
}

// List returns transactions matching the filter, most recent date first.
// Nil filter returns the whole log.
func (t *TransactionCollection) List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error) {
	opts := options.Find().SetSort(bson.D{
		{Key: "date", Value: -1},
		{Key: "_id", Value: -1},
	})
	if filter != nil && filter.Limit > 0 {
		opts.SetLimit(filter.Limit)
	}

	cursor, err := t.coll.Find(ctx, buildTransactionQuery(filter), opts)
	if err != nil {
		return nil, err
	}

	var rows []*Transaction
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// Count returns the total number of transactions recorded.
func (t *TransactionCollection) Count(ctx context.Context) (int64, error) {
	return t.coll.CountDocuments(ctx, bson.M{})
}

// buildTransactionQuery translates a TransactionFilter into a store query.
// Date bounds are half-open [start, end); amount bounds are inclusive.
func buildTransactionQuery(filter *TransactionFilter) bson.M {
	query := bson.M{}
	if filter == nil {
		return query
	}

	dateQuery := bson.M{}
	if filter.StartDate != nil {
		dateQuery["$gte"] = *filter.StartDate
	}
	if filter.EndDate != nil {
		dateQuery["$lt"] = *filter.EndDate
	}
	if len(dateQuery) > 0 {
		query["date"] = dateQuery
	}

	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	if filter.Type != nil {
		query["type"] = *filter.Type
	}

	amountQuery := bson.M{}
	if filter.MinAmount != nil {
		amountQuery["$gte"] = *filter.MinAmount
	}
	if filter.MaxAmount != nil {
		amountQuery["$lte"] = *filter.MaxAmount
	}
	if len(amountQuery) > 0 {
		query["amount"] = amountQuery
	}

	return query
}
