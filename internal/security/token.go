package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken is returned for tokens that fail signature, expiry or
// subject checks
var ErrInvalidToken = errors.New("invalid learner token")

const tokenIssuer = "earthwords"

// TokenIssuer signs and verifies learner identity tokens (HS256)
type TokenIssuer struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

// NewTokenIssuer creates an issuer whose tokens expire after duration
func NewTokenIssuer(secret string, duration time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), duration: duration, now: time.Now}
}

// NewLearnerID generates a fresh anonymous learner identifier
func NewLearnerID() string {
	return uuid.New().String()
}

// Issue signs a token for learnerID and returns it with its expiry
func (i *TokenIssuer) Issue(learnerID string) (string, time.Time, error) {
	now := i.now()
	expires := now.Add(i.duration)
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   learnerID,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expires),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expires, nil
}

// Verify returns the learner id carried by token
func (i *TokenIssuer) Verify(token string) (string, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	claims := &jwt.RegisteredClaims{}
	parsed, err := parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if _, err := uuid.Parse(claims.Subject); err != nil {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
