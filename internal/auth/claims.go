package auth

import (
	"errors"
	"fmt"
	"os"

	"github.com/golang-jwt/jwt/v5"
)

// Roles carried by operator tokens.
const (
	RoleOperator = "OPERATOR"
	RoleAdmin    = "ADMIN"
)

// OperatorClaims is the identity attached to authenticated requests,
// regardless of whether it came from a JWT or an API key.
type OperatorClaims interface {
	CompanyID() string
	Role() string
	Source() string
}

// TokenClaims is the JWT payload issued to charter company operators.
type TokenClaims struct {
	CompanyUUID string `json:"company_id"`
	RoleValue   string `json:"role"`
	jwt.RegisteredClaims
}

func (c *TokenClaims) CompanyID() string { return c.CompanyUUID }
func (c *TokenClaims) Role() string      { return c.RoleValue }
func (c *TokenClaims) Source() string    { return "JWT" }

// APIKeyClaims is the identity derived from a validated API key.
type APIKeyClaims struct {
	CompanyUUID string
	RoleValue   string
}

func (c *APIKeyClaims) CompanyID() string { return c.CompanyUUID }
func (c *APIKeyClaims) Role() string      { return c.RoleValue }
func (c *APIKeyClaims) Source() string    { return "API_KEY" }

// ParseToken validates a bearer token against JWT_SECRET and returns its
// claims.
func ParseToken(tokenString string) (*TokenClaims, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET environment variable is not set")
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.CompanyUUID == "" {
		return nil, errors.New("token has no company claim")
	}
	return claims, nil
}
