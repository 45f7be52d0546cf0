package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the signed token payload. UserID shadows the embedded
// registered Subject so the wire format carries "sub" as a JSON integer,
// matching the clients this service already has.
type Claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"sub"`
}

// Expires returns the expiration instant, zero if the claim is absent.
func (c *Claims) Expires() time.Time {
	if c.ExpiresAt != nil {
		return c.ExpiresAt.Time
	}
	return time.Time{}
}

// Issued returns the issuance instant, zero if the claim is absent.
func (c *Claims) Issued() time.Time {
	if c.IssuedAt != nil {
		return c.IssuedAt.Time
	}
	return time.Time{}
}
