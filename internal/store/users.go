package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/uptrace/bun"
)

// Users persists and looks up accounts.
type Users struct {
	db *bun.DB
}

// NewUsersRepository builds the users repository over the given DB.
func NewUsersRepository(db *bun.DB) *Users {
	return &Users{db: db}
}

// FindByIdentifier looks an account up by its login identifier (email).
// A miss returns ErrNotFound.
func (r *Users) FindByIdentifier(ctx context.Context, identifier string) (*User, error) {
	user := new(User)
	err := r.db.NewSelect().
		Model(user).
		Where("usr.email = ?", identifier).
		Limit(1).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Create inserts a new account and fills in its generated id. A username
// or email collision returns ErrConflict.
func (r *Users) Create(ctx context.Context, user *User) (*User, error) {
	if _, err := r.db.NewInsert().Model(user).Returning("id").Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		return nil, err
	}
	return user, nil
}
