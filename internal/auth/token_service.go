package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/goliatone/go-errors"
	"github.com/google/uuid"
)

// DefaultTokenTTL is the session lifetime used when no override is
// configured.
const DefaultTokenTTL = 15 * time.Minute

// TokenService issues and validates HS256 session tokens. It is stateless:
// a token is trusted purely on its signature and expiry, there is no
// server-side session record or revocation list.
type TokenService struct {
	signingKey []byte
	ttl        time.Duration
	issuer     string
	logger     Logger
}

// NewTokenService creates a TokenService with the given symmetric key.
// A non-positive ttl falls back to DefaultTokenTTL.
func NewTokenService(signingKey []byte, ttl time.Duration, issuer string, logger Logger) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	if logger == nil {
		logger = defLogger{}
	}
	return &TokenService{
		signingKey: signingKey,
		ttl:        ttl,
		issuer:     issuer,
		logger:     logger,
	}
}

// Issue signs a token for the given user id using the configured lifetime.
func (ts *TokenService) Issue(userID int64) (string, error) {
	return ts.IssueWithTTL(userID, ts.ttl)
}

// IssueWithTTL signs a token expiring ttl from now. Negative values produce
// an already expired token; validation will reject it.
func (ts *TokenService) IssueWithTTL(userID int64, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.NewString(),
		},
		UserID: userID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", errors.Wrap(err, errors.CategoryInternal, "failed to sign token")
	}

	return signed, nil
}

// Validate parses and verifies a token string. Every failure mode --
// malformed encoding, wrong signature, unexpected algorithm, missing or
// past expiry -- collapses to ErrInvalidToken; the underlying cause is
// logged but never surfaced to the caller.
func (ts *TokenService) Validate(tokenString string) (*Claims, error) {
	parserOptions := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if ts.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(ts.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, parserOptions...)

	if err != nil {
		ts.logger.Debug("token validation failed", "error", err)
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		ts.logger.Error("token valid but claims could not be decoded")
		return nil, ErrInvalidToken
	}

	return claims, nil
}
