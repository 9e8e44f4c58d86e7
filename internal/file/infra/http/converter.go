package http

import (
	"time"

	"github.com/google/uuid"

	"github.com/klwxsrx/media-service/internal/file/app/service"
)

type (
	FileOut struct {
		ID         uuid.UUID `json:"_id"`
		Filename   string    `json:"filename"`
		FileType   string    `json:"fileType"`
		FileURL    string    `json:"fileUrl"`
		Tags       []string  `json:"tags"`
		IsShared   bool      `json:"isShared"`
		Priority   int       `json:"priority"`
		TotalViews int64     `json:"totalViews"`
		Owner      uuid.UUID `json:"owner"`
		CreatedAt  time.Time `json:"createdAt"`
		UpdatedAt  time.Time `json:"updatedAt"`
	}

	messageOut struct {
		Message string `json:"message"`
	}
)

func toHTTPFileOut(file *service.FileData) FileOut {
	tags := file.Tags
	if tags == nil {
		tags = []string{}
	}

	return FileOut{
		ID:         file.ID.UUID,
		Filename:   file.Filename,
		FileType:   string(file.Type),
		FileURL:    file.URL,
		Tags:       tags,
		IsShared:   file.IsShared,
		Priority:   file.Priority,
		TotalViews: file.TotalViews,
		Owner:      file.OwnerID,
		CreatedAt:  file.CreatedAt,
		UpdatedAt:  file.UpdatedAt,
	}
}

func toHTTPFilesOut(files []service.FileData) []FileOut {
	result := make([]FileOut, 0, len(files))
	for i := range files {
		result = append(result, toHTTPFileOut(&files[i]))
	}

	return result
}
