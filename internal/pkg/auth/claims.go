package auth

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

type Claims struct {
	ID    string
	Email string
	// Name is optional.
	Name string
}

// Validate requires a user id in UUID form and a non-empty email.
func (c Claims) Validate() error {
	var errs []error
	if strings.TrimSpace(c.ID) == "" {
		errs = append(errs, errors.New("id is empty"))
	} else if _, err := uuid.Parse(c.ID); err != nil {
		errs = append(errs, errors.New("id is not a user id"))
	}
	if strings.TrimSpace(c.Email) == "" {
		errs = append(errs, errors.New("email is empty"))
	}

	return errors.Join(errs...)
}
