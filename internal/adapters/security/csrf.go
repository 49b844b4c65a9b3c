// Package security provides the admin's CSRF token manager and its
// role and ACL based access checker.
package security

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

// Compile-time check that CsrfTokens implements ports.CsrfManager.
var _ ports.CsrfManager = (*CsrfTokens)(nil)

const csrfIssuer = "go-admin-workflow"

// csrfClaims binds a token to one session and one intention.
type csrfClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
	Intention string `json:"intention"`
}

// CsrfTokens issues HMAC-signed, expiring CSRF tokens. Tokens are stateless:
// any token signed with the secret for the same session and intention is
// accepted until it expires.
type CsrfTokens struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewCsrfTokens creates a token manager. The secret must not be empty.
func NewCsrfTokens(secret string, ttl time.Duration) (*CsrfTokens, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("csrf secret is required")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("csrf ttl must be positive, got %s", ttl)
	}
	return &CsrfTokens{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Token issues a token for the session and intention.
func (c *CsrfTokens) Token(_ context.Context, sessionID, intention string) (string, error) {
	now := c.now().UTC()
	claims := csrfClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    csrfIssuer,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		SessionID: sessionID,
		Intention: intention,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign csrf token: %w", err)
	}
	return signed, nil
}

// Valid reports whether token was issued for the session and intention and
// has not expired.
func (c *CsrfTokens) Valid(_ context.Context, sessionID, intention, token string) bool {
	token = strings.TrimSpace(token)
	if token == "" {
		return false
	}

	var parsed csrfClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(csrfIssuer),
		jwt.WithoutClaimsValidation(),
	)
	if err != nil {
		return false
	}

	if parsed.ID == "" || parsed.ExpiresAt == nil {
		return false
	}
	if !parsed.ExpiresAt.Time.After(c.now()) {
		return false
	}
	return parsed.SessionID == sessionID && parsed.Intention == intention
}
