package auth

import (
	"crypto/subtle"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sanchitsharma1/Bizdash/models"
)

// Gate authenticates the single configured operator and issues short-lived
// session tokens. It keeps no per-session state; a token is valid until it
// expires.
type Gate struct {
	username string
	password string
	secret   []byte
	lifespan time.Duration
}

func NewGate(username, password, secret string, lifespan time.Duration) *Gate {
	return &Gate{
		username: username,
		password: password,
		secret:   []byte(secret),
		lifespan: lifespan,
	}
}

// Authenticate checks the submitted credentials against the configured pair
// and returns a signed token with its expiry. Unconfigured credentials are a
// server-side error, distinct from a bad password.
func (g *Gate) Authenticate(username, password string) (string, time.Time, error) {
	if g.username == "" || g.password == "" {
		return "", time.Time{}, models.ErrAuthNotConfigured
	}

	// Compare both fields unconditionally so timing reveals nothing about
	// which one mismatched.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(g.username))
	passOK := subtle.ConstantTimeCompare([]byte(password), []byte(g.password))
	if userOK&passOK != 1 {
		return "", time.Time{}, models.ErrBadCredentials
	}

	now := time.Now()
	expiresAt := now.Add(g.lifespan)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
	})

	token, err := t.SignedString(g.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return token, expiresAt, nil
}

// Verify parses a session token and returns the operator username it was
// issued for. Expired or tampered tokens fail.
func (g *Gate) Verify(token string) (string, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return g.secret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse session token: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", fmt.Errorf("session token has no subject")
	}
	return claims.Subject, nil
}
