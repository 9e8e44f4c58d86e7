package service

import "github.com/klwxsrx/media-service/internal/file/domain"

func toFileData(file *domain.File) *FileData {
	if file == nil {
		return nil
	}

	return &FileData{
		ID:         file.ID,
		OwnerID:    file.OwnerID,
		Filename:   file.Filename,
		Type:       file.Type,
		URL:        file.URL,
		Tags:       file.Tags,
		IsShared:   file.IsShared,
		Priority:   file.Priority,
		TotalViews: file.TotalViews,
		CreatedAt:  file.CreatedAt,
		UpdatedAt:  file.UpdatedAt,
	}
}

func toFilesData(files []domain.File) []FileData {
	result := make([]FileData, 0, len(files))
	for i := range files {
		result = append(result, *toFileData(&files[i]))
	}

	return result
}
