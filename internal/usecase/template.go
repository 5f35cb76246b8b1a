package usecase

import (
	"context"

	"github.com/google/uuid"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// TypeCodeRef selects a type-code element for template stamping; the
// parent path carries ancestor element ids, "/" for a root.
type TypeCodeRef struct {
	ID         string
	ParentPath string
}

type TemplateUsecase struct {
	templates TemplateRepository
}

func NewTemplateUsecase(templates TemplateRepository) *TemplateUsecase {
	return &TemplateUsecase{templates: templates}
}

// Create adds a schema template together with its canonical empty
// schema. Categories are created only for type-code elements whose
// ancestors are all part of the input set; orphans are ignored.
func (uc *TemplateUsecase) Create(ctx context.Context, name string, codeDomain *string, typeCodes []TypeCodeRef) (domain.SchemaTemplate, error) {
	template := domain.SchemaTemplate{
		ID:     uuid.NewString(),
		Name:   name,
		Domain: codeDomain,
	}

	original := domain.ReportingSchema{
		ID:         uuid.NewString(),
		Name:       name,
		TemplateID: &template.ID,
	}
	template.OriginalID = &original.ID

	categories := categoriesFromTypeCodes(original.ID, typeCodes)
	if err := uc.templates.CreateTemplate(ctx, template, original, categories); err != nil {
		return domain.SchemaTemplate{}, err
	}
	return template, nil
}

// Update renames a template and replaces the categories of its
// canonical schema. Project schemas already stamped from the template
// are unaffected.
func (uc *TemplateUsecase) Update(ctx context.Context, id string, name string, codeDomain *string, typeCodes []TypeCodeRef) (domain.SchemaTemplate, error) {
	template, err := uc.templates.GetTemplate(ctx, id)
	if err != nil {
		return domain.SchemaTemplate{}, err
	}

	if name != "" {
		template.Name = name
	}
	if codeDomain != nil {
		template.Domain = codeDomain
	}

	var categories []domain.SchemaCategory
	if template.OriginalID != nil {
		categories = categoriesFromTypeCodes(*template.OriginalID, typeCodes)
	}
	if err := uc.templates.UpdateTemplate(ctx, template, categories); err != nil {
		return domain.SchemaTemplate{}, err
	}
	return template, nil
}

// Get fetches one template.
func (uc *TemplateUsecase) Get(ctx context.Context, id string) (domain.SchemaTemplate, error) {
	return uc.templates.GetTemplate(ctx, id)
}

// List fetches all templates.
func (uc *TemplateUsecase) List(ctx context.Context) ([]domain.SchemaTemplate, error) {
	return uc.templates.ListTemplates(ctx)
}

// Delete removes a template.
func (uc *TemplateUsecase) Delete(ctx context.Context, id string) error {
	return uc.templates.DeleteTemplate(ctx, id)
}

func categoriesFromTypeCodes(schemaID string, typeCodes []TypeCodeRef) []domain.SchemaCategory {
	inSet := make(map[string]struct{}, len(typeCodes))
	for _, tc := range typeCodes {
		inSet[tc.ID] = struct{}{}
	}

	var categories []domain.SchemaCategory
	for _, tc := range typeCodes {
		element := domain.TypeCodeElement{ParentPath: tc.ParentPath}
		complete := true
		for _, parentID := range element.ParentIDs() {
			if _, ok := inSet[parentID]; !ok {
				complete = false
				break
			}
		}
		if !complete {
			continue
		}
		id := tc.ID
		categories = append(categories, domain.SchemaCategory{
			ID:                uuid.NewString(),
			ReportingSchemaID: schemaID,
			TypeCodeElementID: &id,
		})
	}
	return categories
}
