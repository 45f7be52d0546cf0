package auth_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/needlesync/needlesync/internal/auth"
)

func TestClaims_JSONShape(t *testing.T) {
	now := time.Now().Truncate(time.Second)
	claims := &auth.Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "needlesync",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Minute)),
		},
		UserID: 99,
	}

	raw, err := json.Marshal(claims)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(raw, &wire))

	// sub must serialize as a number, exp as integer epoch seconds.
	assert.Equal(t, float64(99), wire["sub"])
	assert.Equal(t, float64(now.Add(time.Minute).Unix()), wire["exp"])

	var decoded auth.Claims
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, int64(99), decoded.UserID)
	assert.Equal(t, claims.Expires(), decoded.Expires())
}

func TestClaims_ZeroTimes(t *testing.T) {
	claims := &auth.Claims{}
	assert.True(t, claims.Expires().IsZero())
	assert.True(t, claims.Issued().IsZero())
}
