package service

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// AuthIface defines the interface for JWT authentication used in middleware.
type AuthIface interface {
	BuildJWTString() (string, string, error)
	ParseClaims(c *http.Cookie) (*Claims, error)
}

// Claims represents the claims included in the JWT token. It embeds the
// RegisteredClaims from the JWT package and adds a custom UserID field.
type Claims struct {
	jwt.RegisteredClaims
	// UserID is a custom claim for storing the user ID.
	UserID string `json:"user_id"`
}

// TokenExp defines the expiration time of the JWT token (1 year).
const TokenExp = time.Hour * 24 * 365

// Auth provides methods for building and parsing JWT tokens.
type Auth struct {
	secret []byte
}

// NewAuth creates a new Auth instance signing with the given secret.
func NewAuth(secret string) *Auth {
	return &Auth{secret: []byte(secret)}
}

// BuildJWTString generates a JWT for a freshly minted user ID and
// returns the token string along with the ID.
func (a *Auth) BuildJWTString() (string, string, error) {
	userID := uuid.New().String()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		UserID: userID,
	})

	tokenString, err := token.SignedString(a.secret)
	if err != nil {
		return "", "", err
	}

	return tokenString, userID, nil
}

// ParseClaims parses the JWT token from the provided HTTP cookie and
// returns the claims embedded within the token.
func (a *Auth) ParseClaims(c *http.Cookie) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(c.Value, claims, func(token *jwt.Token) (interface{}, error) {
		return a.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}

	return claims, nil
}
