//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "UserRepository=UserRepository"
package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

const Name = "user"

var ErrUserNotFound = errors.New("user not found")

type (
	User struct {
		ID           UserID
		Name         string
		Email        string
		PasswordHash string
		CreatedAt    time.Time
		UpdatedAt    time.Time
	}

	UserRepository interface {
		NextID() UserID
		Store(context.Context, *User) error
		Find(context.Context, FindUserSpecification) ([]User, error)
		FindOne(context.Context, FindUserSpecification) (*User, error)
	}

	// FindUserSpecification matches emails case-insensitively. An empty specification matches every user.
	FindUserSpecification struct {
		IDs    []UserID
		Emails []string
	}

	UserID struct{ uuid.UUID }
)
