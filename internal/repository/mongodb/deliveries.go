package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

// InsertDeliveries appends one delivery row per customer for a logged day.
// Rows are append-only; nothing ever updates or deletes them.
func (r *Repository) InsertDeliveries(ctx context.Context, deliveries []models.Delivery) error {
	if len(deliveries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(deliveries))
	for i, d := range deliveries {
		docs[i] = d
	}

	if _, err := r.collection(deliveriesColl).InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("insert deliveries: %w", err)
	}
	return nil
}

// ListDeliveriesByDate fetches the delivery rows logged for one day.
func (r *Repository) ListDeliveriesByDate(ctx context.Context, date string) ([]models.Delivery, error) {
	return r.findDeliveries(ctx, bson.M{"date": date})
}

// ListDeliveriesByMonth fetches the delivery rows whose date falls in the
// given "YYYY-MM" month.
func (r *Repository) ListDeliveriesByMonth(ctx context.Context, monthKey string) ([]models.Delivery, error) {
	return r.findDeliveries(ctx, bson.M{"date": bson.M{"$regex": "^" + monthKey}})
}

func (r *Repository) findDeliveries(ctx context.Context, filter bson.M) ([]models.Delivery, error) {
	cursor, err := r.collection(deliveriesColl).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list deliveries: %w", err)
	}

	var deliveries []models.Delivery
	if err := cursor.All(ctx, &deliveries); err != nil {
		return nil, fmt.Errorf("decode deliveries: %w", err)
	}
	return deliveries, nil
}
