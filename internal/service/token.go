package service

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// MockUserID is the well-known identity attached to demo-mode requests. It is
// a valid UUID so owner-scoped queries work unchanged against it.
var MockUserID = uuid.MustParse("11111111-1111-4111-8111-111111111111")

// TokenClaims is the identity carried by a bearer token. Email and FullName
// travel in the token so a degraded demo session can be reconstructed when
// the user store is unreachable.
type TokenClaims struct {
	UserID   uuid.UUID
	Email    string
	FullName string
}

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-secret-change-in-production"
	}
	return []byte(secret)
}

// generateToken creates a signed JWT for the given identity.
// Tokens expire in 30 days.
func generateToken(userID uuid.UUID, email, fullName string) (string, error) {
	claims := jwt.MapClaims{
		"sub":  userID.String(),
		"eml":  email,
		"name": fullName,
		"exp":  time.Now().Add(time.Hour * 24 * 30).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret())
}

// GenerateTokenForTest generates a signed token for the given user ID.
func GenerateTokenForTest(userID uuid.UUID) (string, error) {
	return generateToken(userID, "test@example.com", "Test User")
}

// ValidateToken parses and validates a bearer token string.
func ValidateToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return jwtSecret(), nil
	})

	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid claims")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.New("invalid user id in token")
	}

	email, _ := claims["eml"].(string)
	fullName, _ := claims["name"].(string)

	return &TokenClaims{UserID: userID, Email: email, FullName: fullName}, nil
}
