package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// ClaimsContextKey is the fiber.Ctx locals key the guard stores validated
// claims under.
const ClaimsContextKey = "auth_claims"

const bearerScheme = "Bearer "

// Guard authenticates requests and enforces resource ownership. Ownership
// equality between the token subject and the declared resource owner is
// the only authorization rule; there are no roles.
type Guard struct {
	tokens *TokenService
	logger Logger
}

// NewGuard builds a Guard over the given token service.
func NewGuard(tokens *TokenService, logger Logger) *Guard {
	if logger == nil {
		logger = defLogger{}
	}
	return &Guard{tokens: tokens, logger: logger}
}

// ExtractBearer pulls the token out of an Authorization header value.
// Anything other than "Bearer <token>" with a non-empty token, including
// a bare "Bearer ", yields ErrMissingToken.
func ExtractBearer(authorization string) (string, error) {
	token, ok := strings.CutPrefix(authorization, bearerScheme)
	if !ok || token == "" {
		return "", ErrMissingToken
	}
	return token, nil
}

// Authorize runs the full decision for one request: extract the bearer
// token, validate it, and require the token subject to equal the claimed
// resource owner. On success it returns the authenticated user id.
func (g *Guard) Authorize(authorization string, claimedSubject int64) (int64, error) {
	claims, err := g.Authenticate(authorization)
	if err != nil {
		return 0, err
	}
	if err := g.RequireOwner(claims, claimedSubject); err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

// Authenticate extracts and validates the bearer token, returning its
// claims. It performs no ownership check.
func (g *Guard) Authenticate(authorization string) (*Claims, error) {
	token, err := ExtractBearer(authorization)
	if err != nil {
		return nil, err
	}
	return g.tokens.Validate(token)
}

// RequireOwner rejects a valid identity acting on a resource it does not
// own.
func (g *Guard) RequireOwner(claims *Claims, ownerID int64) error {
	if claims == nil {
		return ErrInvalidToken
	}
	if claims.UserID != ownerID {
		g.logger.Warn("ownership check failed", "subject", claims.UserID, "claimed_owner", ownerID)
		return ErrForbidden
	}
	return nil
}

// Protected returns fiber middleware that authenticates the request and
// stores the validated claims in the request locals. Handlers remain
// responsible for the ownership comparison against the resource they
// serve.
func (g *Guard) Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, err := g.Authenticate(c.Get(fiber.HeaderAuthorization))
		if err != nil {
			return err
		}
		c.Locals(ClaimsContextKey, claims)
		return c.Next()
	}
}

// ClaimsFromCtx returns the claims stashed by Protected, if any.
func ClaimsFromCtx(c *fiber.Ctx) (*Claims, bool) {
	claims, ok := c.Locals(ClaimsContextKey).(*Claims)
	return claims, ok
}
