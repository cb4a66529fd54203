// Package auth is the session/role gateway: bcrypt password verification,
// JWT issue/validate with a role claim, and the gin middleware gating routes
// by role.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eldhojacob/dairyfarm/internal/domain/models"
)

// Claims carries the authenticated identity and its role.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager issues and validates session tokens.
type JWTManager struct {
	secret   []byte
	tokenTTL time.Duration
	issuer   string
}

// NewJWTManager builds a manager from the configured secret and TTL.
func NewJWTManager(secret string, tokenTTL time.Duration, issuer string) *JWTManager {
	return &JWTManager{secret: []byte(secret), tokenTTL: tokenTTL, issuer: issuer}
}

// GenerateToken creates a signed session token for a user.
func (j *JWTManager) GenerateToken(user models.User) (string, error) {
	now := time.Now()

	claims := &Claims{
		UserID: user.ID.Hex(),
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(j.tokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    j.issuer,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secret)
}

// ValidateToken verifies a session token and returns its claims.
func (j *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return j.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
