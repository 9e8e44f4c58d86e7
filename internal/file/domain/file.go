//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "FileRepository=FileRepository"
package domain

import (
	"context"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
)

const Name = "file"

var ErrFileNotFound = errors.New("file not found")

const (
	FileTypeImage FileType = "image"
	FileTypeVideo FileType = "video"
)

var videoExtensions = []string{".mp4", ".avi", ".mov", ".webm", ".mkv", ".flv", ".wmv"}

type (
	File struct {
		ID         FileID
		OwnerID    uuid.UUID
		Filename   string
		Type       FileType
		URL        string
		Tags       []string
		IsShared   bool
		Priority   int
		TotalViews int64
		CreatedAt  time.Time
		UpdatedAt  time.Time
	}

	FileRepository interface {
		NextID() FileID
		Store(context.Context, *File) error
		// Find returns files ordered by priority.
		Find(context.Context, FindFileSpecification) ([]File, error)
		FindOne(context.Context, FindFileSpecification) (*File, error)
		// MaxPriority returns zero when the owner has no files.
		MaxPriority(ctx context.Context, ownerID uuid.UUID) (int, error)
		// IncrementViews returns ErrFileNotFound when no file has the id.
		IncrementViews(context.Context, FileID) error
	}

	FindFileSpecification struct {
		IDs      []FileID
		OwnerIDs []uuid.UUID
	}

	FileID   struct{ uuid.UUID }
	FileType string
)

// FileTypeByFilename treats known video extensions as video and everything else as image.
func FileTypeByFilename(filename string) FileType {
	ext := strings.ToLower(filepath.Ext(filename))
	if slices.Contains(videoExtensions, ext) {
		return FileTypeVideo
	}

	return FileTypeImage
}

func (f *File) IsOwnedBy(userID uuid.UUID) bool {
	return f.OwnerID == userID
}

func (f *File) SetPriority(priority int, now time.Time) {
	if f.Priority == priority {
		return
	}

	f.Priority = priority
	f.UpdatedAt = now
}
