package server

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// RegisterPayload is the registration request body.
type RegisterPayload struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r RegisterPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(3, 100), is.Email),
		validation.Field(&r.Username, validation.Required, validation.Length(1, 100)),
		validation.Field(&r.Password, validation.Required, validation.Length(8, 100)),
	)
}

// LoginPayload is the login request body. Identifier is the account email.
type LoginPayload struct {
	Identifier string `json:"email"`
	Password   string `json:"password"`
}

// Validate will run validation rules
func (r LoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Identifier, validation.Required),
		validation.Field(&r.Password, validation.Required),
	)
}

// ProjectPayload is the create-project request body. UserID declares the
// intended owner and must match the token subject.
type ProjectPayload struct {
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Time      int    `json:"time"`
}

// Validate will run validation rules
func (r ProjectPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Time, validation.Min(0)),
	)
}
