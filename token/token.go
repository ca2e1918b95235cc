package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrInvalid covers malformed, tampered or wrongly-signed tokens.
	ErrInvalid = errors.New("token: invalid")
	// ErrExpired covers tokens that verified but are past their expiry.
	ErrExpired = errors.New("token: expired")
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// Service issues and verifies signed bearer tokens. The secret is fixed at
// construction; rotating it invalidates every previously issued token.
type Service struct {
	secret []byte
	ttl    time.Duration
}

func NewService(secret string, ttl time.Duration) *Service {
	return &Service{secret: []byte(secret), ttl: ttl}
}

// Issue creates a token bound to userID, valid for the service TTL.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and returns the bound user id.
func (s *Service) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrExpired
		}
		return "", ErrInvalid
	}
	if !parsed.Valid || claims.UserID == "" {
		return "", ErrInvalid
	}

	return claims.UserID, nil
}
