package store

import (
	"time"

	"github.com/uptrace/bun"
)

// User is a registered account. Username and email are both unique; the
// database enforces it and Create reports the violation as ErrConflict.
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`

	ID           int64      `bun:"id,pk,autoincrement" json:"id"`
	Username     string     `bun:"username,notnull,unique" json:"username"`
	Email        string     `bun:"email,notnull,unique" json:"email"`
	PasswordHash string     `bun:"password_hash,notnull" json:"-"`
	CreatedAt    *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}

// Project is a user-owned tracking record. Time is the accumulated minutes
// counter the UI increments.
type Project struct {
	bun.BaseModel `bun:"table:projects,alias:prj"`

	ID        int64      `bun:"id,pk,autoincrement" json:"id"`
	UserID    int64      `bun:"user_id,notnull" json:"user_id"`
	Name      string     `bun:"name,notnull" json:"name"`
	Completed bool       `bun:"completed,notnull,default:false" json:"completed"`
	Time      int        `bun:"time,notnull,default:0" json:"time"`
	CreatedAt *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
}
