package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("milkman123")
	require.NoError(t, err)

	assert.True(t, CheckPassword("milkman123", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestTokenRoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret", time.Hour, "dairyfarm")

	user := models.User{
		ID:    primitive.NewObjectID(),
		Email: "eldho@example.com",
		Role:  models.RoleAdmin,
	}

	token, err := manager.GenerateToken(user)
	require.NoError(t, err)

	claims, err := manager.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}

func TestTokenRejectedAcrossSecrets(t *testing.T) {
	issuer := NewJWTManager("secret-a", time.Hour, "dairyfarm")
	verifier := NewJWTManager("secret-b", time.Hour, "dairyfarm")

	token, err := issuer.GenerateToken(models.User{Email: "staff@example.com", Role: models.RoleStaff})
	require.NoError(t, err)

	_, err = verifier.ValidateToken(token)
	assert.Error(t, err)
}

func TestExpiredTokenRejected(t *testing.T) {
	manager := NewJWTManager("test-secret", -time.Minute, "dairyfarm")

	token, err := manager.GenerateToken(models.User{Email: "old@example.com", Role: models.RoleAdmin})
	require.NoError(t, err)

	_, err = manager.ValidateToken(token)
	assert.Error(t, err)
}
