package usecase

import (
	"context"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// Edit carries the entity writes that land together with a commit. The
// repository persists the commit row, its link rows and every entity
// change in one transaction.
type Edit struct {
	CreateCategories  []domain.SchemaCategory
	UpdateCategories  []domain.SchemaCategory
	DeleteCategoryIDs []string
	CreateElements    []domain.SchemaElement
	UpdateElements    []domain.SchemaElement
	DeleteElementIDs  []string
	CreateTasks       []domain.Task
	UpdateTasks       []domain.Task
	DeleteTaskIDs     []string
}

// VersioningRepository persists repositories, commits and their link
// sets.
type VersioningRepository interface {
	CreateRepository(ctx context.Context, repo domain.Repository, initial *domain.Commit) error
	RepositoryFor(ctx context.Context, reportingSchemaID string) (domain.Repository, error)
	GetRepository(ctx context.Context, id string) (domain.Repository, error)
	Head(ctx context.Context, repositoryID string) (domain.Commit, error)
	GetCommit(ctx context.Context, commitID string) (domain.Commit, error)
	ListCommits(ctx context.Context, repositoryID string) ([]domain.Commit, error)
	CommitEdit(ctx context.Context, commit *domain.Commit, edit Edit) error
	SnapshotCategories(ctx context.Context, commit domain.Commit) ([]domain.SchemaCategory, error)
	SnapshotTasks(ctx context.Context, commit domain.Commit) ([]domain.Task, error)
}

// SchemaRepository persists reporting schemas and their entities.
type SchemaRepository interface {
	CreateSchema(ctx context.Context, schema domain.ReportingSchema, categories []domain.SchemaCategory) error
	GetSchema(ctx context.Context, id string) (domain.ReportingSchema, error)
	ListSchemas(ctx context.Context, projectID string) ([]domain.ReportingSchema, error)
	UpdateSchema(ctx context.Context, schema domain.ReportingSchema) error
	DeleteSchema(ctx context.Context, id string) error

	GetCategory(ctx context.Context, id string) (domain.SchemaCategory, error)
	GetElement(ctx context.Context, id string) (domain.SchemaElement, error)
	ListElementsByCategory(ctx context.Context, categoryID string) ([]domain.SchemaElement, error)
	GetTask(ctx context.Context, id string) (domain.Task, error)
	CreateComment(ctx context.Context, comment domain.Comment) error
	UpdateComment(ctx context.Context, comment domain.Comment) error
	DeleteComment(ctx context.Context, id string) error
}

// TemplateRepository persists schema templates and the canonical empty
// schema each template stamps from.
type TemplateRepository interface {
	CreateTemplate(ctx context.Context, template domain.SchemaTemplate, original domain.ReportingSchema, categories []domain.SchemaCategory) error
	GetTemplate(ctx context.Context, id string) (domain.SchemaTemplate, error)
	ListTemplates(ctx context.Context) ([]domain.SchemaTemplate, error)
	UpdateTemplate(ctx context.Context, template domain.SchemaTemplate, categories []domain.SchemaCategory) error
	DeleteTemplate(ctx context.Context, id string) error
}

// TagRepository persists named commit pointers.
type TagRepository interface {
	CreateTag(ctx context.Context, tag domain.Tag) error
	GetTag(ctx context.Context, id string) (domain.Tag, error)
	ListTags(ctx context.Context, repositoryID string) ([]domain.Tag, error)
	UpdateTag(ctx context.Context, tag domain.Tag) error
	DeleteTag(ctx context.Context, id string) error
}

// TypeCodeRepository persists classification taxonomies.
type TypeCodeRepository interface {
	CreateTypeCode(ctx context.Context, tc domain.TypeCode) error
	ListTypeCodes(ctx context.Context, projectID *string) ([]domain.TypeCode, error)
	CreateTypeCodeElements(ctx context.Context, elements []domain.TypeCodeElement) error
	ListTypeCodeElements(ctx context.Context) ([]domain.TypeCodeElement, error)
	GetTypeCodeElement(ctx context.Context, id string) (domain.TypeCodeElement, error)
	UpdateTypeCodeElement(ctx context.Context, element domain.TypeCodeElement) error
	DeleteTypeCodeElement(ctx context.Context, id string) error
}

// SourceRepository persists project sources.
type SourceRepository interface {
	CreateSource(ctx context.Context, source domain.ProjectSource) error
	GetSource(ctx context.Context, id string) (domain.ProjectSource, error)
	ListSources(ctx context.Context, projectID string) ([]domain.ProjectSource, error)
	UpdateSource(ctx context.Context, source domain.ProjectSource) error
	DeleteSource(ctx context.Context, id string) error
}

// BlobStore stores uploaded provenance files addressed by content.
type BlobStore interface {
	Put(ctx context.Context, data []byte) (string, error)
	Get(ctx context.Context, path string) ([]byte, error)
}

// ProjectGateway resolves project metadata from the router service.
type ProjectGateway interface {
	GetProject(ctx context.Context, projectID, token string) (domain.Project, error)
}

// AssemblyGateway resolves the assembly catalog from the router service.
type AssemblyGateway interface {
	GetAssemblies(ctx context.Context, projectID, token string) ([]domain.Assembly, error)
}

// ExportCache stores finished export payloads. Payloads are keyed by
// pinned commit and format, so entries never need invalidation.
type ExportCache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, payload string) error
}
