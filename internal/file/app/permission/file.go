package permission

import (
	"github.com/klwxsrx/media-service/internal/file/domain"
	"github.com/klwxsrx/media-service/internal/pkg/auth"
)

func CanReadFile(file *domain.File) auth.Permission {
	return func(a auth.Authentication) (bool, error) {
		if a.Principal() == nil {
			return false, nil
		}

		return file.IsShared || file.IsOwnedBy(a.Principal().UserID), nil
	}
}
