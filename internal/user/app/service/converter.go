package service

import "github.com/klwxsrx/media-service/internal/user/domain"

func toUserData(user *domain.User) *UserData {
	if user == nil {
		return nil
	}

	return &UserData{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

func toUsersData(users []domain.User) []UserData {
	result := make([]UserData, 0, len(users))
	for i := range users {
		result = append(result, *toUserData(&users[i]))
	}

	return result
}
