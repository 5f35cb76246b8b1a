package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

type SchemaUsecase struct {
	schemas    SchemaRepository
	templates  TemplateRepository
	versioning VersioningRepository
}

func NewSchemaUsecase(schemas SchemaRepository, templates TemplateRepository, versioning VersioningRepository) *SchemaUsecase {
	return &SchemaUsecase{schemas: schemas, templates: templates, versioning: versioning}
}

// Create adds an empty reporting schema to a project, together with its
// repository and an initial commit.
func (uc *SchemaUsecase) Create(ctx context.Context, templateID, projectID, name, authorID string) (domain.ReportingSchema, error) {
	template, err := uc.templates.GetTemplate(ctx, templateID)
	if err != nil {
		return domain.ReportingSchema{}, err
	}

	schema := domain.ReportingSchema{
		ID:         uuid.NewString(),
		Name:       name,
		ProjectID:  &projectID,
		TemplateID: &template.ID,
	}
	if schema.Name == "" {
		schema.Name = template.Name
	}

	if err := uc.schemas.CreateSchema(ctx, schema, nil); err != nil {
		return domain.ReportingSchema{}, err
	}
	if err := uc.initRepository(ctx, schema.ID, authorID, nil); err != nil {
		return domain.ReportingSchema{}, err
	}
	return schema, nil
}

// CreateFromTemplate stamps a project schema from a template's canonical
// empty schema: the categories are cloned with fresh identities and the
// slash paths are remapped through the old-to-new id map. The initial
// commit links every cloned category.
func (uc *SchemaUsecase) CreateFromTemplate(ctx context.Context, templateID, projectID, name, authorID string) (domain.ReportingSchema, error) {
	template, err := uc.templates.GetTemplate(ctx, templateID)
	if err != nil {
		return domain.ReportingSchema{}, err
	}
	if template.OriginalID == nil {
		return domain.ReportingSchema{}, domain.ValidationError{
			Message: "schema template " + template.ID + " has no canonical schema to copy from",
		}
	}

	original, err := uc.schemas.GetSchema(ctx, *template.OriginalID)
	if err != nil {
		return domain.ReportingSchema{}, err
	}

	schema := domain.ReportingSchema{
		ID:         uuid.NewString(),
		Name:       name,
		ProjectID:  &projectID,
		TemplateID: &template.ID,
	}
	if schema.Name == "" {
		schema.Name = original.Name
	}

	idMap := make(map[string]string, len(original.Categories))
	for _, old := range original.Categories {
		idMap[old.ID] = uuid.NewString()
	}

	categories := make([]domain.SchemaCategory, 0, len(original.Categories))
	categoryIDs := make([]string, 0, len(original.Categories))
	for _, old := range original.Categories {
		clone := old
		clone.ID = idMap[old.ID]
		clone.Path = remapPath(old.Path, idMap)
		clone.ReportingSchemaID = schema.ID
		clone.ReportingSchema = nil
		clone.Elements = nil
		categories = append(categories, clone)
		categoryIDs = append(categoryIDs, clone.ID)
	}

	if err := uc.schemas.CreateSchema(ctx, schema, categories); err != nil {
		return domain.ReportingSchema{}, err
	}
	if err := uc.initRepository(ctx, schema.ID, authorID, categoryIDs); err != nil {
		return domain.ReportingSchema{}, err
	}
	return schema, nil
}

func (uc *SchemaUsecase) initRepository(ctx context.Context, schemaID, authorID string, categoryIDs []string) error {
	repo := domain.Repository{ID: uuid.NewString(), ReportingSchemaID: schemaID}
	commitID := uuid.NewString()
	initial := &domain.Commit{
		ID:           commitID,
		ShortID:      commitID[:8],
		RepositoryID: repo.ID,
		AuthorID:     authorID,
		Added:        time.Now(),
		CategoryIDs:  categoryIDs,
	}
	return uc.versioning.CreateRepository(ctx, repo, initial)
}

// remapPath replaces every path component that refers to a cloned
// category with the clone's id.
func remapPath(path string, idMap map[string]string) string {
	if path == "" || path == "/" {
		return path
	}
	parts := strings.Split(path, "/")
	for i, part := range parts {
		if mapped, ok := idMap[part]; ok {
			parts[i] = mapped
		}
	}
	return strings.Join(parts, "/")
}

// Get fetches one reporting schema with its categories.
func (uc *SchemaUsecase) Get(ctx context.Context, id string) (domain.ReportingSchema, error) {
	return uc.schemas.GetSchema(ctx, id)
}

// List fetches the reporting schemas of a project.
func (uc *SchemaUsecase) List(ctx context.Context, projectID string) ([]domain.ReportingSchema, error) {
	return uc.schemas.ListSchemas(ctx, projectID)
}

// Rename updates a schema's name.
func (uc *SchemaUsecase) Rename(ctx context.Context, id, name string) (domain.ReportingSchema, error) {
	schema, err := uc.schemas.GetSchema(ctx, id)
	if err != nil {
		return domain.ReportingSchema{}, err
	}
	if name != "" {
		schema.Name = name
	}
	if err := uc.schemas.UpdateSchema(ctx, schema); err != nil {
		return domain.ReportingSchema{}, err
	}
	return schema, nil
}

// Delete removes a reporting schema.
func (uc *SchemaUsecase) Delete(ctx context.Context, id string) error {
	return uc.schemas.DeleteSchema(ctx, id)
}
