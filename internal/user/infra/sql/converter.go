package sql

import (
	"strings"

	"github.com/klwxsrx/media-service/internal/user/domain"
)

func toDomainUser(row sqlxUser) domain.User {
	return domain.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.UTC(),
		UpdatedAt:    row.UpdatedAt.UTC(),
	}
}

func toDomainUsers(rows []sqlxUser) []domain.User {
	result := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainUser(row))
	}

	return result
}

func lowerAll(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		result = append(result, strings.ToLower(v))
	}

	return result
}
