package storemanager

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/groovestream/users/internal/server/repositories/users"
)

// MongoManager serves repositories backed by MongoDB. The unique email index
// is ensured on start.
type MongoManager struct {
	client *mongo.Client
	users  *users.MongoRepository
}

func NewMongoManager(ctx context.Context, dsn string, dbName string) (*MongoManager, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(dsn))
	if err != nil {
		return nil, fmt.Errorf("mongo connect error: %w", err)
	}

	repo := users.NewMongoRepository(client.Database(dbName).Collection("users"))
	if err := repo.EnsureIndexes(ctx); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}

	return &MongoManager{client: client, users: repo}, nil
}

func (m *MongoManager) Users() users.Repository {
	return m.users
}

func (m *MongoManager) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}
