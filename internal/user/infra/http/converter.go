package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/media-service/internal/user/app/service"
)

type UserOut struct {
	ID        uuid.UUID `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toHTTPUserOut(user *service.UserData) UserOut {
	return UserOut{
		ID:        user.ID.UUID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toHTTPUsersOut(users []service.UserData) []UserOut {
	result := make([]UserOut, 0, len(users))
	for i := range users {
		result = append(result, toHTTPUserOut(&users[i]))
	}

	return result
}
