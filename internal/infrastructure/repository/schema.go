package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/database/models"
)

type SchemaRepository struct {
	db *gorm.DB
}

func NewSchemaRepository(db *gorm.DB) *SchemaRepository {
	return &SchemaRepository{db: db}
}

func (r *SchemaRepository) CreateSchema(ctx context.Context, schema domain.ReportingSchema, categories []domain.SchemaCategory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		row := models.ReportingSchema{
			ID:         schema.ID,
			Name:       schema.Name,
			ProjectID:  schema.ProjectID,
			TemplateID: schema.TemplateID,
		}
		if err := tx.Create(&row).Error; err != nil {
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

func (r *SchemaRepository) GetSchema(ctx context.Context, id string) (domain.ReportingSchema, error) {
	var row models.ReportingSchema
	err := r.db.WithContext(ctx).
		Preload("Categories").
		Preload("Categories.TypeCodeElement").
		First(&row, "id = ?", id).Error
	if err != nil {
		return domain.ReportingSchema{}, translateNotFound(err, "reporting schema "+id)
	}

	schema := domain.ReportingSchema{
		ID:         row.ID,
		Name:       row.Name,
		ProjectID:  row.ProjectID,
		TemplateID: row.TemplateID,
	}
	for _, category := range row.Categories {
		schema.Categories = append(schema.Categories, fromModelCategory(category))
	}
	return schema, nil
}

func (r *SchemaRepository) ListSchemas(ctx context.Context, projectID string) ([]domain.ReportingSchema, error) {
	var rows []models.ReportingSchema
	err := r.db.WithContext(ctx).Find(&rows, "project_id = ?", projectID).Error
	if err != nil {
		return nil, err
	}
	schemas := make([]domain.ReportingSchema, 0, len(rows))
	for _, row := range rows {
		schemas = append(schemas, domain.ReportingSchema{
			ID:         row.ID,
			Name:       row.Name,
			ProjectID:  row.ProjectID,
			TemplateID: row.TemplateID,
		})
	}
	return schemas, nil
}

func (r *SchemaRepository) UpdateSchema(ctx context.Context, schema domain.ReportingSchema) error {
	result := r.db.WithContext(ctx).
		Model(&models.ReportingSchema{}).
		Where("id = ?", schema.ID).
		Updates(map[string]any{
			"name":        schema.Name,
			"project_id":  schema.ProjectID,
			"template_id": schema.TemplateID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "reporting schema " + schema.ID}
	}
	return nil
}

func (r *SchemaRepository) DeleteSchema(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.ReportingSchema{}, "id = ?", id).Error
}

func (r *SchemaRepository) GetCategory(ctx context.Context, id string) (domain.SchemaCategory, error) {
	var row models.SchemaCategory
	err := r.db.WithContext(ctx).Preload("TypeCodeElement").First(&row, "id = ?", id).Error
	if err != nil {
		return domain.SchemaCategory{}, translateNotFound(err, "schema category "+id)
	}
	return fromModelCategory(row), nil
}

func (r *SchemaRepository) GetElement(ctx context.Context, id string) (domain.SchemaElement, error) {
	var row models.SchemaElement
	err := r.db.WithContext(ctx).Preload("Source").First(&row, "id = ?", id).Error
	if err != nil {
		return domain.SchemaElement{}, translateNotFound(err, "schema element "+id)
	}
	return fromModelElement(row)
}

func (r *SchemaRepository) ListElementsByCategory(ctx context.Context, categoryID string) ([]domain.SchemaElement, error) {
	var rows []models.SchemaElement
	err := r.db.WithContext(ctx).Find(&rows, "schema_category_id = ?", categoryID).Error
	if err != nil {
		return nil, err
	}
	elements := make([]domain.SchemaElement, 0, len(rows))
	for _, row := range rows {
		element, err := fromModelElement(row)
		if err != nil {
			return nil, err
		}
		elements = append(elements, element)
	}
	return elements, nil
}

func (r *SchemaRepository) GetTask(ctx context.Context, id string) (domain.Task, error) {
	var row models.Task
	err := r.db.WithContext(ctx).Preload("Comments").First(&row, "id = ?", id).Error
	if err != nil {
		return domain.Task{}, translateNotFound(err, "task "+id)
	}
	return fromModelTask(row), nil
}

func (r *SchemaRepository) CreateComment(ctx context.Context, comment domain.Comment) error {
	row := models.Comment{
		ID:       comment.ID,
		Text:     comment.Text,
		TaskID:   comment.TaskID,
		AuthorID: comment.AuthorID,
		Added:    comment.Added,
	}
	return r.db.WithContext(ctx).Create(&row).Error
}

func (r *SchemaRepository) UpdateComment(ctx context.Context, comment domain.Comment) error {
	result := r.db.WithContext(ctx).
		Model(&models.Comment{}).
		Where("id = ?", comment.ID).
		Update("text", comment.Text)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.NotFoundError{Resource: "comment " + comment.ID}
	}
	return nil
}

func (r *SchemaRepository) DeleteComment(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&models.Comment{}, "id = ?", id).Error
}
