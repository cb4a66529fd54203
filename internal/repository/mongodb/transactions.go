package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

// ListTransactions fetches the whole transactions collection. Month
// bucketing happens in memory against each row's own date field.
func (r *Repository) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	cursor, err := r.collection(transactionsColl).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	var transactions []models.Transaction
	if err := cursor.All(ctx, &transactions); err != nil {
		return nil, fmt.Errorf("decode transactions: %w", err)
	}
	return transactions, nil
}

// InsertTransaction appends one ad-hoc product sale.
func (r *Repository) InsertTransaction(ctx context.Context, transaction models.Transaction) error {
	if _, err := r.collection(transactionsColl).InsertOne(ctx, transaction); err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}
