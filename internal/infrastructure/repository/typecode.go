package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/database/models"
)

type TypeCodeRepository struct {
	db *gorm.DB
}

func NewTypeCodeRepository(db *gorm.DB) *TypeCodeRepository {
	return &TypeCodeRepository{db: db}
}

func (r *TypeCodeRepository) CreateTypeCode(ctx context.Context, tc domain.TypeCode) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.TypeCode{
			ID:        tc.ID,
			Name:      tc.Name,
			ProjectID: tc.ProjectID,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}
		for _, element := range tc.Elements {
			elementRow := toModelTypeCodeElement(element)
			if err := tx.Create(&elementRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// ListTypeCodes returns project-bound taxonomies together with the
// global ones when a project filter is given.
func (r *TypeCodeRepository) ListTypeCodes(ctx context.Context, projectID *string) ([]domain.TypeCode, error) {
	query := r.db.WithContext(ctx).Preload("Elements")
	if projectID != nil {
		query = query.Where("project_id = ? OR project_id IS NULL", *projectID)
	}
	var rows []models.TypeCode
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	codes := make([]domain.TypeCode, 0, len(rows))
	for _, row := range rows {
		tc := domain.TypeCode{
			ID:        row.ID,
			Name:      row.Name,
			ProjectID: row.ProjectID,
		}
		for _, element := range row.Elements {
			tc.Elements = append(tc.Elements, fromModelTypeCodeElement(element))
		}
		codes = append(codes, tc)
	}
	return codes, nil
}

func (r *TypeCodeRepository) CreateTypeCodeElements(ctx context.Context, elements []domain.TypeCodeElement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, element := range elements {
			row := toModelTypeCodeElement(element)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"code", "name", "level", "parent_path", "type_code_id"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TypeCodeRepository) ListTypeCodeElements(ctx context.Context) ([]domain.TypeCodeElement, error) {
	var rows []models.TypeCodeElement
	err := r.db.WithContext(ctx).Order("code ASC").Find(&rows).Error
	if err != nil {
		return nil, err
	}
	elements := make([]domain.TypeCodeElement, 0, len(rows))
	for _, row := range rows {
		elements = append(elements, fromModelTypeCodeElement(row))
	}
	return elements, nil
}

func (r *TypeCodeRepository) GetTypeCodeElement(ctx context.Context, id string) (domain.TypeCodeElement, error) {
	var row models.TypeCodeElement
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return domain.TypeCodeElement{}, translateNotFound(err, "type code element "+id)
	}
	return fromModelTypeCodeElement(row), nil
}

func (r *TypeCodeRepository) UpdateTypeCodeElement(ctx context.Context, element domain.TypeCodeElement) error {
	result := r.db.WithContext(ctx).
		Model(&models.TypeCodeElement{}).
		Where("id = ?", element.ID).
		Updates(map[string]any{
			"code":        element.Code,
			"name":        element.Name,
			"level":       element.Level,
			"parent_path": element.ParentPath,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "type code element " + element.ID}
	}
	return nil
}

func (r *TypeCodeRepository) DeleteTypeCodeElement(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.TypeCodeElement{}, "id = ?", id).Error
}
