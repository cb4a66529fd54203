package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/eldhojacob/dairyfarm/internal/auth"
	"github.com/eldhojacob/dairyfarm/internal/domain/models"
	"github.com/eldhojacob/dairyfarm/internal/repository/mongodb"
)

// UserStore resolves accounts for login.
type UserStore interface {
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
}

// AuthHandler serves the login endpoint.
type AuthHandler struct {
	store  UserStore
	jwt    *auth.JWTManager
	logger *zap.Logger
}

// NewAuthHandler constructs the login adapter.
func NewAuthHandler(store UserStore, jwt *auth.JWTManager, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{store: store, jwt: jwt, logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login verifies credentials, resolves the account role and issues a token.
// An account without a role is refused, matching the original sign-out
// behavior for roleless users.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	user, err := h.store.GetUserByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, mongodb.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
			return
		}
		h.logger.Warn("user lookup failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	if !auth.CheckPassword(req.Password, user.PasswordHash) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	if user.Role == "" {
		c.JSON(http.StatusForbidden, gin.H{"error": "no role assigned for this user"})
		return
	}

	token, err := h.jwt.GenerateToken(user)
	if err != nil {
		h.logger.Error("token generation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create session"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"email": user.Email,
		"role":  user.Role,
	})
}
