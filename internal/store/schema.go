package store

import (
	"context"

	"github.com/uptrace/bun"
)

// EnsureSchema creates the users and projects tables when they do not
// exist yet. Constraints live in the model tags.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	models := []any{
		(*User)(nil),
		(*Project)(nil),
	}

	for _, model := range models {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}
	return nil
}
