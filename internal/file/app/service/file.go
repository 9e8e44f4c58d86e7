//go:generate ${TOOLS_BIN}/mockgen -source ${GOFILE} -destination mock/${GOFILE} -package mock -mock_names "File=File"
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/media-service/internal/file/app/permission"
	"github.com/klwxsrx/media-service/internal/file/app/storage"
	"github.com/klwxsrx/media-service/internal/file/domain"
	"github.com/klwxsrx/media-service/internal/pkg/auth"
	"github.com/klwxsrx/media-service/pkg/persistence"
	pkgtime "github.com/klwxsrx/media-service/pkg/time"
)

var (
	ErrFileNotFound        = errors.New("file not found")
	ErrUnsupportedFileType = errors.New("unsupported file type")
	ErrInvalidPriorities   = errors.New("invalid priorities")
)

var AllowedContentTypes = []string{
	"image/jpeg",
	"image/png",
	"image/gif",
	"video/mp4",
	"video/webm",
}

const updateFilesLockName = "update_files"

type (
	File interface {
		Upload(context.Context, UploadFileData) (*FileData, error)
		Get(context.Context, domain.FileID) (*FileData, error)
		ListOwned(context.Context) ([]FileData, error)
		UpdatePriorities(context.Context, []PriorityUpdate) error
		RegisterView(context.Context, domain.FileID) error
	}

	UploadFileData struct {
		Filename    string
		ContentType string
		Size        int64
		Content     io.Reader
		Tags        []string
	}

	PriorityUpdate struct {
		FileID   domain.FileID
		Priority int
	}

	FileData struct {
		ID         domain.FileID
		OwnerID    uuid.UUID
		Filename   string
		Type       domain.FileType
		URL        string
		Tags       []string
		IsShared   bool
		Priority   int
		TotalViews int64
		CreatedAt  time.Time
		UpdatedAt  time.Time
	}

	fileService struct {
		fileRepo    domain.FileRepository
		storage     storage.ObjectStorage
		permissions auth.PermissionService
		transaction persistence.Transaction
		clock       pkgtime.Clock
	}
)

func NewFile(
	fileRepo domain.FileRepository,
	objectStorage storage.ObjectStorage,
	permissions auth.PermissionService,
	transaction persistence.Transaction,
	clock pkgtime.Clock,
) File {
	return &fileService{
		fileRepo:    fileRepo,
		storage:     objectStorage,
		permissions: permissions,
		transaction: transaction,
		clock:       clock,
	}
}

func (s *fileService) Upload(ctx context.Context, data UploadFileData) (*FileData, error) {
	principal, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	if !slices.Contains(AllowedContentTypes, strings.ToLower(data.ContentType)) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFileType, data.ContentType)
	}

	fileID := s.fileRepo.NextID()
	key := objectKey(principal.UserID, fileID, data.Filename)
	url, err := s.storage.Put(ctx, storage.Object{
		Key:         key,
		ContentType: data.ContentType,
		Size:        data.Size,
		Body:        data.Content,
	})
	if err != nil {
		return nil, fmt.Errorf("put object: %w", err)
	}

	uploadFileImpl := func(ctx context.Context) (*FileData, error) {
		maxPriority, err := s.fileRepo.MaxPriority(ctx, principal.UserID)
		if err != nil {
			return nil, fmt.Errorf("get max priority: %w", err)
		}

		now := s.clock.Now(ctx)
		file := &domain.File{
			ID:        fileID,
			OwnerID:   principal.UserID,
			Filename:  data.Filename,
			Type:      domain.FileTypeByFilename(data.Filename),
			URL:       url,
			Tags:      normalizeTags(data.Tags),
			Priority:  maxPriority + 1,
			CreatedAt: now,
			UpdatedAt: now,
		}

		err = s.fileRepo.Store(ctx, file)
		if err != nil {
			return nil, fmt.Errorf("store file: %w", err)
		}

		return toFileData(file), nil
	}

	result, err := persistence.WithinTransactionWithResult(ctx, s.transaction, uploadFileImpl, ownerLockName(principal.UserID))
	if err != nil {
		// the stored object has no record pointing to it
		if deleteErr := s.storage.Delete(context.WithoutCancel(ctx), key); deleteErr != nil {
			err = errors.Join(err, fmt.Errorf("delete orphaned object: %w", deleteErr))
		}
		return nil, err
	}

	return result, nil
}

func (s *fileService) Get(ctx context.Context, fileID domain.FileID) (*FileData, error) {
	file, err := s.fileRepo.FindOne(ctx, domain.FindFileSpecification{IDs: []domain.FileID{fileID}})
	if errors.Is(err, domain.ErrFileNotFound) {
		return nil, ErrFileNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find file by id: %w", err)
	}

	if err = s.permissions.Check(ctx, permission.CanReadFile(file)); err != nil {
		return nil, err
	}

	return toFileData(file), nil
}

func (s *fileService) ListOwned(ctx context.Context) ([]FileData, error) {
	principal, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return nil, err
	}

	files, err := s.fileRepo.Find(ctx, domain.FindFileSpecification{OwnerIDs: []uuid.UUID{principal.UserID}})
	if err != nil {
		return nil, fmt.Errorf("find files by owner: %w", err)
	}

	return toFilesData(files), nil
}

// UpdatePriorities applies every update or none. Files of other owners are reported as not found.
func (s *fileService) UpdatePriorities(ctx context.Context, updates []PriorityUpdate) error {
	principal, err := auth.CurrentPrincipal(ctx)
	if err != nil {
		return err
	}
	if len(updates) == 0 {
		return nil
	}

	priorities := make(map[domain.FileID]int, len(updates))
	for _, update := range updates {
		if _, ok := priorities[update.FileID]; ok {
			return fmt.Errorf("%w: duplicate file %s", ErrInvalidPriorities, update.FileID)
		}
		priorities[update.FileID] = update.Priority
	}

	ids := make([]domain.FileID, 0, len(priorities))
	for id := range priorities {
		ids = append(ids, id)
	}

	return s.transaction.WithinContext(ctx, func(ctx context.Context) error {
		files, err := s.fileRepo.Find(s.transaction.WithLock(ctx), domain.FindFileSpecification{
			IDs:      ids,
			OwnerIDs: []uuid.UUID{principal.UserID},
		})
		if err != nil {
			return fmt.Errorf("find files by ids: %w", err)
		}
		if len(files) != len(ids) {
			return fmt.Errorf("%w: %d of %d files", ErrFileNotFound, len(ids)-len(files), len(ids))
		}

		now := s.clock.Now(ctx)
		for i := range files {
			file := &files[i]
			file.SetPriority(priorities[file.ID], now)

			err = s.fileRepo.Store(ctx, file)
			if err != nil {
				return fmt.Errorf("store file %s: %w", file.ID, err)
			}
		}

		return nil
	}, ownerLockName(principal.UserID))
}

func (s *fileService) RegisterView(ctx context.Context, fileID domain.FileID) error {
	err := s.fileRepo.IncrementViews(ctx, fileID)
	if errors.Is(err, domain.ErrFileNotFound) {
		return ErrFileNotFound
	}
	if err != nil {
		return fmt.Errorf("increment views: %w", err)
	}

	return nil
}

func objectKey(ownerID uuid.UUID, fileID domain.FileID, filename string) string {
	return fmt.Sprintf("%s/%s%s", ownerID, fileID, strings.ToLower(filepath.Ext(filename)))
}

func ownerLockName(ownerID uuid.UUID) string {
	return fmt.Sprintf("%s_%s", updateFilesLockName, ownerID)
}

func normalizeTags(tags []string) []string {
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || slices.Contains(result, tag) {
			continue
		}
		result = append(result, tag)
	}

	return result
}
