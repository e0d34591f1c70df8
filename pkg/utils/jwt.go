package utils

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenClaims is the identity payload carried by a signed token
type TokenClaims struct {
	UserID uuid.UUID
	Role   string
}

// GenerateToken creates a signed HS256 token carrying the user ID and role
func GenerateToken(userID uuid.UUID, role, secret string, expiry time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),               // Subject (who the token is for)
		"role": role,                          // Role for stateless authorization
		"iat":  time.Now().Unix(),             // Issued At
		"exp":  time.Now().Add(expiry).Unix(), // Expiration Time
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken verifies signature and expiry, returning the embedded claims.
// Malformed, tampered and expired tokens all come back as a single error class.
func ValidateToken(tokenString, secret string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	sub, ok := claims["sub"].(string)
	if !ok {
		return nil, fmt.Errorf("missing sub claim")
	}

	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, fmt.Errorf("invalid sub claim: %w", err)
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, fmt.Errorf("missing role claim")
	}

	return &TokenClaims{UserID: userID, Role: role}, nil
}
