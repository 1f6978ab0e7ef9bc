package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	adminTokenExpiry = 24 * time.Hour
	adminIssuer      = "arcade-collision"
	jwtSecretKey     = "jwt_secret"
)

var errMissingToken = errors.New("missing bearer token")

// Auth signs and checks admin tokens
type Auth struct {
	secret []byte
}

// NewAuth creates an Auth using secret
func NewAuth(secret []byte) *Auth {
	return &Auth{secret: secret}
}

// LoadOrCreateSecret loads the JWT secret from the database, or generates
// and persists a new one if none exists.
func LoadOrCreateSecret(ctx context.Context, db *DB) ([]byte, error) {
	h, err := db.GetSetting(ctx, jwtSecretKey)
	if err != nil {
		return nil, fmt.Errorf("load jwt secret: %w", err)
	}
	if h != "" {
		if b, err := hex.DecodeString(h); err == nil && len(b) == 32 {
			return b, nil
		}
		Log.Warn("stored jwt secret is malformed, generating a new one")
	}
	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate jwt secret: %w", err)
	}
	if err := db.SetSetting(ctx, jwtSecretKey, hex.EncodeToString(secret)); err != nil {
		return nil, fmt.Errorf("persist jwt secret: %w", err)
	}
	return secret, nil
}

// IssueToken returns a signed admin token for subject
func (a *Auth) IssueToken(subject string, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = adminTokenExpiry
	}
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		Issuer:    adminIssuer,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// ValidateToken checks a token and returns its subject
func (a *Auth) ValidateToken(tokenStr string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		return a.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(adminIssuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return "", err
	}
	if claims.Subject == "" {
		return "", errors.New("token has no subject")
	}
	return claims.Subject, nil
}

// bearerSubject validates the request's Authorization header
func (a *Auth) bearerSubject(r *http.Request) (string, error) {
	h := r.Header.Get("Authorization")
	tok, ok := strings.CutPrefix(h, "Bearer ")
	if !ok || tok == "" {
		return "", errMissingToken
	}
	return a.ValidateToken(tok)
}
