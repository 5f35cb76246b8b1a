package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/database/models"
)

type TemplateRepository struct {
	db *gorm.DB
}

func NewTemplateRepository(db *gorm.DB) *TemplateRepository {
	return &TemplateRepository{db: db}
}

func (r *TemplateRepository) CreateTemplate(ctx context.Context, template domain.SchemaTemplate, original domain.ReportingSchema, categories []domain.SchemaCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.SchemaTemplate{
			ID:         template.ID,
			Name:       template.Name,
			Domain:     template.Domain,
			OriginalID: template.OriginalID,
		}
		if err := tx.Create(&row).Error; err != nil {
			return err
		}

		schemaRow := models.ReportingSchema{
			ID:         original.ID,
			Name:       original.Name,
			ProjectID:  original.ProjectID,
			TemplateID: original.TemplateID,
		}
		if err := tx.Create(&schemaRow).Error; err != nil {
			return err
		}

		for _, category := range categories {
			categoryRow := toModelCategory(category)
			if err := tx.Create(&categoryRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TemplateRepository) GetTemplate(ctx context.Context, id string) (domain.SchemaTemplate, error) {
	var row models.SchemaTemplate
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return domain.SchemaTemplate{}, translateNotFound(err, "schema template "+id)
	}
	return domain.SchemaTemplate{
		ID:         row.ID,
		Name:       row.Name,
		Domain:     row.Domain,
		OriginalID: row.OriginalID,
	}, nil
}

func (r *TemplateRepository) ListTemplates(ctx context.Context) ([]domain.SchemaTemplate, error) {
	var rows []models.SchemaTemplate
	err := r.db.WithContext(ctx).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	templates := make([]domain.SchemaTemplate, 0, len(rows))
	for _, row := range rows {
		templates = append(templates, domain.SchemaTemplate{
			ID:         row.ID,
			Name:       row.Name,
			Domain:     row.Domain,
			OriginalID: row.OriginalID,
		})
	}
	return templates, nil
}

// UpdateTemplate renames the template and replaces the categories of its
// canonical schema. Schemas already stamped from the template keep their
// own category clones and are not touched.
func (r *TemplateRepository) UpdateTemplate(ctx context.Context, template domain.SchemaTemplate, categories []domain.SchemaCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.SchemaTemplate{}).
			Where("id = ?", template.ID).
			Updates(map[string]any{
				"name":   template.Name,
				"domain": template.Domain,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.NotFoundError{Resource: "schema template " + template.ID}
		}

		if template.OriginalID == nil {
			return nil
		}
		if err := tx.Model(&models.ReportingSchema{}).
			Where("id = ?", *template.OriginalID).
			Update("name", template.Name).Error; err != nil {
			return err
		}
		if err := tx.Delete(&models.SchemaCategory{}, "reporting_schema_id = ?", *template.OriginalID).Error; err != nil {
			return err
		}
		for _, category := range categories {
			categoryRow := toModelCategory(category)
			if err := tx.Create(&categoryRow).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *TemplateRepository) DeleteTemplate(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row models.SchemaTemplate
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			return translateNotFound(err, "schema template "+id)
		}
		if row.OriginalID != nil {
			if err := tx.Delete(&models.ReportingSchema{}, "id = ?", *row.OriginalID).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.SchemaTemplate{}, "id = ?", id).Error
	})
}
