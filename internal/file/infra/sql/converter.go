package sql

import "github.com/klwxsrx/media-service/internal/file/domain"

func toDomainFile(row sqlxFile) domain.File {
	tags := []string(row.Tags)
	if tags == nil {
		tags = []string{}
	}

	return domain.File{
		ID:         row.ID,
		OwnerID:    row.OwnerID,
		Filename:   row.Filename,
		Type:       domain.FileType(row.FileType),
		URL:        row.FileURL,
		Tags:       tags,
		IsShared:   row.IsShared,
		Priority:   row.Priority,
		TotalViews: row.TotalViews,
		CreatedAt:  row.CreatedAt.UTC(),
		UpdatedAt:  row.UpdatedAt.UTC(),
	}
}

func toDomainFiles(rows []sqlxFile) []domain.File {
	result := make([]domain.File, 0, len(rows))
	for _, row := range rows {
		result = append(result, toDomainFile(row))
	}

	return result
}
