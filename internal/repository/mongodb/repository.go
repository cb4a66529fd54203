// Package mongodb is the document store gateway. Collections: customers,
// deliveries, transactions, settings (singleton document) and users. No
// schema enforcement exists beyond the model shapes; pages fetch collections
// wholesale and compute in memory.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	customersColl    = "customers"
	deliveriesColl   = "deliveries"
	transactionsColl = "transactions"
	settingsColl     = "settings"
	usersColl        = "users"
)

// ErrNotFound reports a lookup that matched no document.
var ErrNotFound = errors.New("document not found")

// Repository implements the document store gateway for MongoDB.
type Repository struct {
	client *mongo.Client
	dbName string
}

// New connects to MongoDB and verifies the connection with a ping.
func New(ctx context.Context, uri string, dbName string) (*Repository, error) {
	clientOptions := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	return &Repository{client: client, dbName: dbName}, nil
}

func (r *Repository) collection(name string) *mongo.Collection {
	return r.client.Database(r.dbName).Collection(name)
}

// Close closes the MongoDB connection.
func (r *Repository) Close(ctx context.Context) error {
	return r.client.Disconnect(ctx)
}

func isNoDocuments(err error) bool {
	return errors.Is(err, mongo.ErrNoDocuments)
}
