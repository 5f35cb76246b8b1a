package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/database/models"
)

type SourceRepository struct {
	db *gorm.DB
}

func NewSourceRepository(db *gorm.DB) *SourceRepository {
	return &SourceRepository{db: db}
}

func (r *SourceRepository) CreateSource(ctx context.Context, source domain.ProjectSource) error {
	row, err := toModelSource(source)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *SourceRepository) GetSource(ctx context.Context, id string) (domain.ProjectSource, error) {
	var row models.ProjectSource
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return domain.ProjectSource{}, translateNotFound(err, "project source "+id)
	}
	return fromModelSource(row)
}

func (r *SourceRepository) ListSources(ctx context.Context, projectID string) ([]domain.ProjectSource, error) {
	var rows []models.ProjectSource
	err := r.db.WithContext(ctx).Find(&rows, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	sources := make([]domain.ProjectSource, 0, len(rows))
	for _, row := range rows {
		source, err := fromModelSource(row)
		if err != nil {
			return nil, err
		}
		sources = append(sources, source)
	}
	return sources, nil
}

func (r *SourceRepository) UpdateSource(ctx context.Context, source domain.ProjectSource) error {
	row, err := toModelSource(source)
	if err != nil {
		return err
	}
	result := r.db.WithContext(ctx).
		Model(&models.ProjectSource{}).
		Where("id = ?", source.ID).
		Updates(map[string]any{
			"type":           row.Type,
			"data_id":        row.DataID,
			"name":           row.Name,
			"meta_fields":    row.MetaFields,
			"interpretation": row.Interpretation,
			"author_id":      row.AuthorID,
			"updated":        row.Updated,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "project source " + source.ID}
	}
	return nil
}

func (r *SourceRepository) DeleteSource(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.ProjectSource{}, "id = ?", id).Error
}
