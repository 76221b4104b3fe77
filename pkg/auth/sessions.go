package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const AdminRole = "ADMIN"

// SessionUser is the identity carried by a session token: enough to
// authorise requests without touching persistence.
type SessionUser struct {
	ID    uint64 `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u SessionUser) IsAdmin() bool {
	return u.Role == AdminRole
}

// Claims represents application specific JWT claims.
type Claims struct {
	UserID uint64 `json:"uid"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

func (c *Claims) SessionUser() SessionUser {
	return SessionUser{
		ID:    c.UserID,
		Name:  c.Name,
		Email: c.Email,
		Role:  c.Role,
	}
}

// SessionHandler manages creation and validation of signed session tokens.
type SessionHandler struct {
	// SecretKey is used to sign tokens.
	SecretKey []byte
	// TTL defines how long generated tokens remain valid.
	TTL time.Duration
}

// MakeSessionHandler validates the provided secret and returns a configured handler.
func MakeSessionHandler(secret []byte, ttl time.Duration) (SessionHandler, error) {
	if len(secret) < 16 {
		return SessionHandler{}, errors.New("secret key too short")
	}

	if ttl <= 0 {
		return SessionHandler{}, errors.New("session ttl must be positive")
	}

	return SessionHandler{SecretKey: secret, TTL: ttl}, nil
}

// Generate creates a signed session token for the provided user.
func (h SessionHandler) Generate(user SessionUser) (string, error) {
	claims := Claims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(h.TTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(h.SecretKey)
}

// Validate parses the token string and returns the Claims if valid.
func (h SessionHandler) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return h.SecretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
