package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

// ListCustomers fetches the whole customers collection.
func (r *Repository) ListCustomers(ctx context.Context) ([]models.Customer, error) {
	cursor, err := r.collection(customersColl).Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list customers: %w", err)
	}

	var customers []models.Customer
	if err := cursor.All(ctx, &customers); err != nil {
		return nil, fmt.Errorf("decode customers: %w", err)
	}
	return customers, nil
}

// GetCustomer fetches a single customer document by id.
func (r *Repository) GetCustomer(ctx context.Context, id string) (models.Customer, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.Customer{}, fmt.Errorf("invalid customer id %q: %w", id, ErrNotFound)
	}

	var customer models.Customer
	err = r.collection(customersColl).FindOne(ctx, bson.M{"_id": objectID}).Decode(&customer)
	if err != nil {
		if isNoDocuments(err) {
			return models.Customer{}, ErrNotFound
		}
		return models.Customer{}, fmt.Errorf("get customer: %w", err)
	}
	return customer, nil
}

// InsertCustomer appends a new customer document and returns its id.
func (r *Repository) InsertCustomer(ctx context.Context, customer models.Customer) (string, error) {
	result, err := r.collection(customersColl).InsertOne(ctx, customer)
	if err != nil {
		return "", fmt.Errorf("insert customer: %w", err)
	}

	objectID, _ := result.InsertedID.(primitive.ObjectID)
	return objectID.Hex(), nil
}

// DeleteCustomer removes a customer document.
func (r *Repository) DeleteCustomer(ctx context.Context, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection(customersColl).DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("delete customer: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// PauseCustomer sets the pause flag and the inclusive pause window.
func (r *Repository) PauseCustomer(ctx context.Context, id string, pauseStart, pauseEnd string) error {
	return r.updateCustomer(ctx, id, bson.M{
		"isPaused":   true,
		"pauseStart": pauseStart,
		"pauseEnd":   pauseEnd,
	})
}

// ResumeCustomer clears the pause flag and both window dates.
func (r *Repository) ResumeCustomer(ctx context.Context, id string) error {
	return r.updateCustomer(ctx, id, bson.M{
		"isPaused":   false,
		"pauseStart": "",
		"pauseEnd":   "",
	})
}

func (r *Repository) updateCustomer(ctx context.Context, id string, fields bson.M) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	result, err := r.collection(customersColl).UpdateOne(ctx, bson.M{"_id": objectID}, bson.M{"$set": fields})
	if err != nil {
		return fmt.Errorf("update customer: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
