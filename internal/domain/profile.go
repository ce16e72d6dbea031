package domain

import (
	"net/mail"
	"strings"
	"time"
)

// Profile is a registered user of the service.
type Profile struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// RegistrationForm carries the fields submitted by the signup page.
type RegistrationForm struct {
	Username  string
	Email     string
	Password1 string
	Password2 string
}

// Validate checks the submitted registration fields. It returns a map of
// field name to message for every invalid field, empty when the form is
// clean.
func (f *RegistrationForm) Validate() map[string]string {
	errs := make(map[string]string)

	username := strings.TrimSpace(f.Username)
	if username == "" {
		errs["username"] = "username is required"
	} else if len(username) > 150 {
		errs["username"] = "username must be at most 150 characters"
	}

	if f.Email == "" {
		errs["email"] = "email is required"
	} else if _, err := mail.ParseAddress(f.Email); err != nil {
		errs["email"] = "email is not a valid address"
	}

	if len(f.Password1) < 8 {
		errs["password1"] = "password must be at least 8 characters"
	}
	if f.Password1 != f.Password2 {
		errs["password2"] = "passwords do not match"
	}

	return errs
}
