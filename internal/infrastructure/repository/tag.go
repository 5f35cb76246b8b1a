package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/database/models"
)

type TagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) *TagRepository {
	return &TagRepository{db: db}
}

func (r *TagRepository) CreateTag(ctx context.Context, tag domain.Tag) error {
	row := models.Tag{
		ID:       tag.ID,
		Name:     tag.Name,
		CommitID: tag.CommitID,
		AuthorID: tag.AuthorID,
		Added:    tag.Added,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *TagRepository) GetTag(ctx context.Context, id string) (domain.Tag, error) {
	var row models.Tag
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return domain.Tag{}, translateNotFound(err, "tag "+id)
	}
	return fromModelTag(row), nil
}

func (r *TagRepository) ListTags(ctx context.Context, repositoryID string) ([]domain.Tag, error) {
	var rows []models.Tag
	err := r.db.WithContext(ctx).
		Joins("JOIN commits ON commits.id = tags.commit_id").
		Where("commits.repository_id = ?", repositoryID).
		Order("tags.added ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	tags := make([]domain.Tag, 0, len(rows))
	for _, row := range rows {
		tags = append(tags, fromModelTag(row))
	}
	return tags, nil
}

func (r *TagRepository) UpdateTag(ctx context.Context, tag domain.Tag) error {
	result := r.db.WithContext(ctx).
		Model(&models.Tag{}).
		Where("id = ?", tag.ID).
		Updates(map[string]any{
			"name":      tag.Name,
			"commit_id": tag.CommitID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "tag " + tag.ID}
	}
	return nil
}

func (r *TagRepository) DeleteTag(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Tag{}, "id = ?", id).Error
}
