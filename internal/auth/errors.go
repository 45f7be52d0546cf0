package auth

import "github.com/goliatone/go-errors"

const (
	TextCodeMissingToken       = "missing_token"
	TextCodeInvalidToken       = "invalid_token"
	TextCodeForbidden          = "forbidden"
	TextCodeInvalidCredentials = "invalid_credentials"
	TextCodeAccountExists      = "account_exists"
	TextCodeHashingFailure     = "hashing_failure"
	TextCodePersistence        = "persistence_failure"
)

// ErrMissingToken is returned when a request carries no usable bearer token.
var ErrMissingToken = errors.New("missing authentication token", errors.CategoryAuth).
	WithTextCode(TextCodeMissingToken).
	WithCode(errors.CodeUnauthorized)

// ErrInvalidToken is returned for every token validation failure. Expired,
// forged, and malformed tokens are deliberately indistinguishable to callers;
// the actual cause only reaches the server log.
var ErrInvalidToken = errors.New("invalid authentication token", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidToken).
	WithCode(errors.CodeUnauthorized)

// ErrForbidden is returned when a valid identity acts on a resource it
// does not own.
var ErrForbidden = errors.New("forbidden", errors.CategoryAuthz).
	WithTextCode(TextCodeForbidden).
	WithCode(errors.CodeForbidden)

// ErrInvalidCredentials covers both unknown identifiers and wrong passwords
// so login responses never reveal whether an account exists.
var ErrInvalidCredentials = errors.New("invalid credentials", errors.CategoryAuth).
	WithTextCode(TextCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrDuplicateAccount is returned when registration hits a uniqueness
// constraint on username or email.
var ErrDuplicateAccount = errors.New("username or email already taken", errors.CategoryConflict).
	WithTextCode(TextCodeAccountExists).
	WithCode(errors.CodeConflict)

// ErrHashingFailure is returned when the password hasher fails internally.
var ErrHashingFailure = errors.New("unable to process credentials", errors.CategoryInternal).
	WithTextCode(TextCodeHashingFailure).
	WithCode(errors.CodeInternal)

// ErrPersistence is the generic storage failure surfaced to clients. The
// underlying database error is logged, never echoed.
var ErrPersistence = errors.New("storage error", errors.CategoryInternal).
	WithTextCode(TextCodePersistence).
	WithCode(errors.CodeInternal)
