package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// ElementInput is the validated input for creating a schema element.
type ElementInput struct {
	CategoryID  string
	Name        string
	Quantity    float64
	Unit        string
	Description string
	AssemblyID  *string
	SourceID    *string
}

// ElementUpdate carries the mutable fields of an element; nil fields
// are left untouched.
type ElementUpdate struct {
	Name        *string
	Quantity    *float64
	Unit        *string
	Description *string
	AssemblyID  *string
	Result      map[string]any
}

type ElementUsecase struct {
	schemas SchemaRepository
	editor
}

func NewElementUsecase(schemas SchemaRepository, versioning VersioningRepository) *ElementUsecase {
	return &ElementUsecase{schemas: schemas, editor: editor{versioning: versioning}}
}

// Add creates an element under a category and links it into a new head
// commit. The unit must be part of the unit enumeration.
func (uc *ElementUsecase) Add(ctx context.Context, input ElementInput, authorID string) (domain.SchemaElement, error) {
	unit, err := domain.ParseUnit(input.Unit)
	if err != nil {
		return domain.SchemaElement{}, err
	}

	category, err := uc.schemas.GetCategory(ctx, input.CategoryID)
	if err != nil {
		return domain.SchemaElement{}, err
	}

	element := domain.SchemaElement{
		ID:               uuid.NewString(),
		Name:             input.Name,
		Quantity:         input.Quantity,
		Unit:             unit,
		Description:      input.Description,
		SchemaCategoryID: category.ID,
		AssemblyID:       input.AssemblyID,
		SourceID:         input.SourceID,
	}

	_, err = uc.commitEdit(ctx, category.ReportingSchemaID, authorID,
		domain.Delta{AddElements: []string{element.ID}},
		Edit{CreateElements: []domain.SchemaElement{element}},
	)
	if err != nil {
		return domain.SchemaElement{}, err
	}
	return element, nil
}

// Update rewrites an element's fields under a new head commit.
func (uc *ElementUsecase) Update(ctx context.Context, id string, update ElementUpdate, authorID string) (domain.SchemaElement, error) {
	element, err := uc.schemas.GetElement(ctx, id)
	if err != nil {
		return domain.SchemaElement{}, err
	}

	if update.Unit != nil {
		unit, err := domain.ParseUnit(*update.Unit)
		if err != nil {
			return domain.SchemaElement{}, err
		}
		element.Unit = unit
	}
	if update.Name != nil {
		element.Name = *update.Name
	}
	if update.Quantity != nil {
		element.Quantity = *update.Quantity
	}
	if update.Description != nil {
		element.Description = *update.Description
	}
	if update.AssemblyID != nil {
		element.AssemblyID = update.AssemblyID
	}
	if update.Result != nil {
		element.Result = update.Result
	}

	category, err := uc.schemas.GetCategory(ctx, element.SchemaCategoryID)
	if err != nil {
		return domain.SchemaElement{}, err
	}

	_, err = uc.commitEdit(ctx, category.ReportingSchemaID, authorID,
		domain.Delta{},
		Edit{UpdateElements: []domain.SchemaElement{element}},
	)
	if err != nil {
		return domain.SchemaElement{}, err
	}
	return element, nil
}

// Delete unlinks and destroys an element.
func (uc *ElementUsecase) Delete(ctx context.Context, id string, authorID string) error {
	element, err := uc.schemas.GetElement(ctx, id)
	if err != nil {
		return err
	}

	category, err := uc.schemas.GetCategory(ctx, element.SchemaCategoryID)
	if err != nil {
		return err
	}

	_, err = uc.commitEdit(ctx, category.ReportingSchemaID, authorID,
		domain.Delta{RemoveElements: []string{id}},
		Edit{DeleteElementIDs: []string{id}},
	)
	return err
}

// Get fetches one element.
func (uc *ElementUsecase) Get(ctx context.Context, id string) (domain.SchemaElement, error) {
	return uc.schemas.GetElement(ctx, id)
}
