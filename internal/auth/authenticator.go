package auth

import (
	"context"
	"errors"

	"github.com/needlesync/needlesync/internal/store"
)

// UserDirectory is the slice of the account store the authenticator needs.
type UserDirectory interface {
	FindByIdentifier(ctx context.Context, identifier string) (*store.User, error)
	Create(ctx context.Context, user *store.User) (*store.User, error)
}

// Authenticator orchestrates registration and login over a user directory,
// the password hasher, and the token service.
type Authenticator struct {
	directory UserDirectory
	tokens    *TokenService
	logger    Logger
}

// NewAuthenticator builds an Authenticator.
func NewAuthenticator(directory UserDirectory, tokens *TokenService, logger Logger) *Authenticator {
	if logger == nil {
		logger = defLogger{}
	}
	return &Authenticator{
		directory: directory,
		tokens:    tokens,
		logger:    logger,
	}
}

// Login verifies the identifier/password pair and issues a session token.
// Unknown identifiers, lookup failures, and wrong passwords all come back
// as ErrInvalidCredentials so responses never reveal whether an account
// exists; the real cause is logged.
func (a *Authenticator) Login(ctx context.Context, identifier, password string) (*store.User, string, error) {
	user, err := a.directory.FindByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			a.logger.Info("login for unknown identifier", "identifier", identifier)
		} else {
			a.logger.Error("login lookup failed", "identifier", identifier, "error", err)
		}
		return nil, "", ErrInvalidCredentials
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		if !errors.Is(err, ErrPasswordMismatch) {
			a.logger.Error("stored hash could not be compared", "user_id", user.ID, "error", err)
		}
		return nil, "", ErrInvalidCredentials
	}

	token, err := a.tokens.Issue(user.ID)
	if err != nil {
		a.logger.Error("token issuance failed", "user_id", user.ID, "error", err)
		return nil, "", err
	}

	return user, token, nil
}

// Register hashes the password and inserts the account. A uniqueness
// conflict on username or email maps to ErrDuplicateAccount; any other
// persistence failure maps to ErrPersistence with the database detail
// kept out of the response.
func (a *Authenticator) Register(ctx context.Context, username, email, password string) (*store.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		if errors.Is(err, ErrEmptyPassword) {
			return nil, ErrHashingFailure
		}
		a.logger.Error("password hashing failed", "error", err)
		return nil, ErrHashingFailure
	}

	user, err := a.directory.Create(ctx, &store.User{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, store.ErrConflict) {
			return nil, ErrDuplicateAccount
		}
		a.logger.Error("user insert failed", "error", err)
		return nil, ErrPersistence
	}

	a.logger.Info("registered user", "user_id", user.ID, "username", username)
	return user, nil
}
