package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

// GetUserByEmail resolves an account for login.
func (r *Repository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	var user models.User
	err := r.collection(usersColl).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if isNoDocuments(err) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("get user by email: %w", err)
	}
	return user, nil
}
