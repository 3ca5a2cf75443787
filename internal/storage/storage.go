package storage

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/carson-networks/finance-tracker/internal/config"
	"github.com/carson-networks/finance-tracker/internal/storage/mongoconfig"
)

type Storage struct {
	Client   *mongo.Client
	Database *mongo.Database

	Transactions mongoconfig.ITransactionCollection
	Budgets      mongoconfig.IBudgetCollection
	Profiles     mongoconfig.IProfileCollection
}

func NewStorage(env *config.Config) (*Storage, error) {
	serverAPI := options.ServerAPI(options.ServerAPIVersion1)
	opts := options.Client().ApplyURI(env.MongoURI).SetServerAPIOptions(serverAPI)

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, err
	}

	database := client.Database(env.MongoDatabase)

	return &Storage{
		Client:       client,
		Database:     database,
		Transactions: mongoconfig.NewTransactionCollection(database),
		Budgets:      mongoconfig.NewBudgetCollection(database),
		Profiles:     mongoconfig.NewProfileCollection(database),
	}, nil
}

// Ping verifies the store is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.Client.Ping(ctx, readpref.Primary())
}

// ListCollections returns the collection names present in the database.
func (s *Storage) ListCollections(ctx context.Context) ([]string, error) {
	return s.Database.ListCollectionNames(ctx, bson.M{})
}

// Close disconnects the underlying client.
func (s *Storage) Close(ctx context.Context) error {
	return s.Client.Disconnect(ctx)
}
