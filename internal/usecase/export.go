package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/export"
	"github.com/lcacollect/reporting-backend/internal/export/lcabyg"
	"github.com/lcacollect/reporting-backend/internal/export/lcax"
)

var tracer = otel.Tracer("export")

// ExportUsecase turns a pinned commit into a base64 payload in one of
// the supported formats. Commits are immutable, so finished payloads
// are cached by (commit, format) and never invalidated.
type ExportUsecase struct {
	versioning VersioningRepository
	schemas    SchemaRepository
	projects   ProjectGateway
	assemblies AssemblyGateway
	cache      ExportCache
	resolvers  *lcabyg.Resolvers
}

func NewExportUsecase(
	versioning VersioningRepository,
	schemas SchemaRepository,
	projects ProjectGateway,
	assemblies AssemblyGateway,
	cache ExportCache,
	resolvers *lcabyg.Resolvers,
) *ExportUsecase {
	return &ExportUsecase{
		versioning: versioning,
		schemas:    schemas,
		projects:   projects,
		assemblies: assemblies,
		cache:      cache,
		resolvers:  resolvers,
	}
}

// Export renders the snapshot pinned by commitID in the given format.
// The token is forwarded to the router service for project and assembly
// lookups.
func (uc *ExportUsecase) Export(ctx context.Context, commitID string, format export.Format, token string) (string, error) {
	ctx, span := tracer.Start(ctx, "Export.Usecase.Export")
	defer span.End()

	key := commitID + ":" + string(format)
	if uc.cache != nil {
		if payload, err := uc.cache.Get(ctx, key); err == nil {
			return payload, nil
		} else if !errors.Is(err, domain.ErrNotFound) {
			slog.WarnContext(
				ctx, "Export cache lookup failed",
				slog.String("error", err.Error()),
				slog.String("key", key),
			)
		}
	}

	commit, err := uc.versioning.GetCommit(ctx, commitID)
	if err != nil {
		return "", err
	}

	categories, err := uc.versioning.SnapshotCategories(ctx, commit)
	if err != nil {
		span.RecordError(errors.Wrap(err, "resolve snapshot"))
		return "", err
	}

	payload, err := uc.render(ctx, commit, categories, format, token)
	if err != nil {
		span.RecordError(errors.Wrap(err, "render export"))
		return "", err
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, key, payload); err != nil {
			slog.WarnContext(
				ctx, "Export cache write failed",
				slog.String("error", err.Error()),
				slog.String("key", key),
			)
		}
	}
	return payload, nil
}

func (uc *ExportUsecase) render(
	ctx context.Context,
	commit domain.Commit,
	categories []domain.SchemaCategory,
	format export.Format,
	token string,
) (string, error) {
	switch format {
	case export.FormatCSV:
		table, err := export.ToCSV(categories)
		if err != nil {
			return "", err
		}
		return export.TabularPayload(table), nil

	case export.FormatLCAByg:
		schema, err := uc.snapshotSchema(ctx, commit)
		if err != nil {
			return "", err
		}
		_, assemblies, err := uc.externalData(ctx, schema, token, false)
		if err != nil {
			return "", err
		}
		linkSchema(categories, &schema)
		entities, err := lcabyg.Aggregate(categories, assemblies, uc.resolvers)
		if err != nil {
			return "", err
		}
		return export.GraphPayload(entities)

	case export.FormatLCAx:
		schema, err := uc.snapshotSchema(ctx, commit)
		if err != nil {
			return "", err
		}
		project, assemblies, err := uc.externalData(ctx, schema, token, true)
		if err != nil {
			return "", err
		}
		linkSchema(categories, &schema)
		doc, err := lcax.NewDocument(project, schema, categories, assemblies, time.Now())
		if err != nil {
			return "", err
		}
		return export.DocumentPayload(doc)
	}

	return "", domain.ValidationError{Message: "unknown export format " + string(format)}
}

func (uc *ExportUsecase) snapshotSchema(ctx context.Context, commit domain.Commit) (domain.ReportingSchema, error) {
	repo, err := uc.versioning.GetRepository(ctx, commit.RepositoryID)
	if err != nil {
		return domain.ReportingSchema{}, err
	}
	return uc.schemas.GetSchema(ctx, repo.ReportingSchemaID)
}

// linkSchema attaches the schema and category back references onto
// snapshot rows, which come out of storage with foreign keys only.
// Taxonomy resolution reads the schema name through these pointers.
func linkSchema(categories []domain.SchemaCategory, schema *domain.ReportingSchema) {
	for i := range categories {
		categories[i].ReportingSchema = schema
		for j := range categories[i].Elements {
			categories[i].Elements[j].SchemaCategory = &categories[i]
		}
	}
}

// externalData fetches the assembly catalog, and the project when
// needed, for the project the schema belongs to.
func (uc *ExportUsecase) externalData(ctx context.Context, schema domain.ReportingSchema, token string, withProject bool) (domain.Project, []domain.Assembly, error) {
	if schema.ProjectID == nil {
		return domain.Project{}, nil, domain.ValidationError{
			Message: "reporting schema " + schema.ID + " belongs to no project",
		}
	}

	var project domain.Project
	if withProject {
		fetched, err := uc.projects.GetProject(ctx, *schema.ProjectID, token)
		if err != nil {
			return domain.Project{}, nil, err
		}
		project = fetched
	}

	assemblies, err := uc.assemblies.GetAssemblies(ctx, *schema.ProjectID, token)
	if err != nil {
		return domain.Project{}, nil, err
	}
	return project, assemblies, nil
}
