package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// CategoryInput is the validated input for creating a schema category.
type CategoryInput struct {
	ReportingSchemaID string
	Name              string
	Path              string
	Description       string
	TypeCodeElementID *string
}

// CategoryUpdate carries the mutable fields of a category; nil fields
// are left untouched.
type CategoryUpdate struct {
	Name        *string
	Path        *string
	Description *string
}

type CategoryUsecase struct {
	schemas SchemaRepository
	editor
}

func NewCategoryUsecase(schemas SchemaRepository, versioning VersioningRepository) *CategoryUsecase {
	return &CategoryUsecase{schemas: schemas, editor: editor{versioning: versioning}}
}

// Add creates a category and links it into a new head commit.
func (uc *CategoryUsecase) Add(ctx context.Context, input CategoryInput, authorID string) (domain.SchemaCategory, error) {
	if _, err := uc.schemas.GetSchema(ctx, input.ReportingSchemaID); err != nil {
		return domain.SchemaCategory{}, err
	}

	category := domain.SchemaCategory{
		ID:                uuid.NewString(),
		Name:              input.Name,
		Path:              input.Path,
		Description:       input.Description,
		ReportingSchemaID: input.ReportingSchemaID,
		TypeCodeElementID: input.TypeCodeElementID,
	}

	_, err := uc.commitEdit(ctx, input.ReportingSchemaID, authorID,
		domain.Delta{AddCategories: []string{category.ID}},
		Edit{CreateCategories: []domain.SchemaCategory{category}},
	)
	if err != nil {
		return domain.SchemaCategory{}, err
	}
	return category, nil
}

// Update rewrites a category's fields under a new head commit. The
// category keeps its identity, so commit membership is unchanged.
func (uc *CategoryUsecase) Update(ctx context.Context, id string, update CategoryUpdate, authorID string) (domain.SchemaCategory, error) {
	category, err := uc.schemas.GetCategory(ctx, id)
	if err != nil {
		return domain.SchemaCategory{}, err
	}

	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.Path != nil {
		category.Path = *update.Path
	}
	if update.Description != nil {
		category.Description = *update.Description
	}

	_, err = uc.commitEdit(ctx, category.ReportingSchemaID, authorID,
		domain.Delta{},
		Edit{UpdateCategories: []domain.SchemaCategory{category}},
	)
	if err != nil {
		return domain.SchemaCategory{}, err
	}
	return category, nil
}

// Delete unlinks and destroys a category together with all of its
// elements.
func (uc *CategoryUsecase) Delete(ctx context.Context, id string, authorID string) error {
	category, err := uc.schemas.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	elements, err := uc.schemas.ListElementsByCategory(ctx, id)
	if err != nil {
		return err
	}
	elementIDs := make([]string, 0, len(elements))
	for _, element := range elements {
		elementIDs = append(elementIDs, element.ID)
	}

	_, err = uc.commitEdit(ctx, category.ReportingSchemaID, authorID,
		domain.Delta{
			RemoveCategories: []string{id},
			RemoveElements:   elementIDs,
		},
		Edit{
			DeleteCategoryIDs: []string{id},
			DeleteElementIDs:  elementIDs,
		},
	)
	return err
}

// Get fetches one category.
func (uc *CategoryUsecase) Get(ctx context.Context, id string) (domain.SchemaCategory, error) {
	return uc.schemas.GetCategory(ctx, id)
}
