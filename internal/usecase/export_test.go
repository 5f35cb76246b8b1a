package usecase

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/export"
	"github.com/lcacollect/reporting-backend/internal/export/lcabyg"
)

func exportFixture() (*mockVersioning, *mockSchemaRepo, *mockProjectGateway, *mockAssemblyGateway, *mockExportCache) {
	projectID := "proj-1"
	schemas := newMockSchemaRepo()
	schemas.schemas["schema-1"] = domain.ReportingSchema{ID: "schema-1", Name: "BIM7AA", ProjectID: &projectID}

	versioning := seedVersioning("schema-1")
	versioning.categories = []domain.SchemaCategory{
		{
			ID:              "cat-1",
			TypeCodeElement: &domain.TypeCodeElement{Code: "211", Name: "Foundations"},
			Name:            "211 | Foundations",
			Elements: []domain.SchemaElement{
				{ID: "el-1", Name: "Wall", Quantity: 2500, Unit: domain.UnitM3, Description: "desc"},
			},
		},
	}

	projects := &mockProjectGateway{project: domain.Project{ID: projectID, Name: "Harbour Tower", Country: "DK"}}
	assemblies := &mockAssemblyGateway{}
	cache := newMockExportCache()
	return versioning, schemas, projects, assemblies, cache
}

func newExportUsecase(v *mockVersioning, s *mockSchemaRepo, p *mockProjectGateway, a *mockAssemblyGateway, c *mockExportCache) *ExportUsecase {
	return NewExportUsecase(v, s, p, a, c, lcabyg.NewResolvers())
}

func TestExportCSV(t *testing.T) {
	versioning, schemas, projects, assemblies, cache := exportFixture()
	uc := newExportUsecase(versioning, schemas, projects, assemblies, cache)

	payload, err := uc.Export(context.Background(), "commit-0", export.FormatCSV, "token")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	if !strings.HasPrefix(string(raw), "class;name;source;quantity;unit;description;result") {
		t.Fatalf("unexpected table: %s", raw)
	}
	if !strings.Contains(string(raw), `"Foundations";"Wall";"Typed in";2500.0;"m3";"desc";`) {
		t.Fatalf("missing element row: %s", raw)
	}
	if projects.calls != 0 {
		t.Fatalf("csv export should not call the project gateway")
	}
}

func TestExportCachesByCommitAndFormat(t *testing.T) {
	versioning, schemas, projects, assemblies, cache := exportFixture()
	uc := newExportUsecase(versioning, schemas, projects, assemblies, cache)

	first, err := uc.Export(context.Background(), "commit-0", export.FormatLCAByg, "token")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if cache.sets != 1 {
		t.Fatalf("expected payload to be cached")
	}

	second, err := uc.Export(context.Background(), "commit-0", export.FormatLCAByg, "token")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if first != second {
		t.Fatalf("expected cached payload to be reused")
	}
	if assemblies.calls != 1 {
		t.Fatalf("expected a single assembly fetch, got %d", assemblies.calls)
	}
}

// Snapshot rows carry foreign keys only, so the export must attach the
// schema itself before the taxonomy of a classification can be read.
func TestExportLCABygResolvesCategories(t *testing.T) {
	versioning, schemas, projects, assemblies, cache := exportFixture()
	uc := newExportUsecase(versioning, schemas, projects, assemblies, cache)

	payload, err := uc.Export(context.Background(), "commit-0", export.FormatLCAByg, "token")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	var entities []map[string]any
	if err := json.Unmarshal(raw, &entities); err != nil {
		t.Fatalf("payload is not a graph: %v", err)
	}

	parents := map[string]string{}
	for _, entity := range entities {
		edge, ok := entity["Edge"].([]any)
		if !ok || len(edge) != 3 {
			continue
		}
		variant, ok := edge[0].(map[string]any)
		if !ok {
			continue
		}
		for name := range variant {
			parents[name], _ = edge[1].(string)
		}
	}

	// BIM7AA code 211 maps to the GenDK outer-wall category.
	const wantParent = "10a52123-48d7-466a-9622-d463511a6df0"
	if got := parents["CategoryToElement"]; got != wantParent {
		t.Fatalf("category linked to %q, want %q", got, wantParent)
	}
	if got := parents["CategoryToConstruction"]; got != wantParent {
		t.Fatalf("element linked to %q, want %q", got, wantParent)
	}
	if strings.Contains(string(raw), lcabyg.OtherCategoryID) {
		t.Fatalf("resolvable classification fell back to Other: %s", raw)
	}
}

func TestExportLCAxFetchesProject(t *testing.T) {
	versioning, schemas, projects, assemblies, cache := exportFixture()
	uc := newExportUsecase(versioning, schemas, projects, assemblies, cache)

	payload, err := uc.Export(context.Background(), "commit-0", export.FormatLCAx, "token")
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if projects.calls != 1 {
		t.Fatalf("expected one project fetch, got %d", projects.calls)
	}

	raw, _ := base64.StdEncoding.DecodeString(payload)
	if !strings.Contains(string(raw), `"lcia_method":"EN15978"`) {
		t.Fatalf("unexpected document: %s", raw)
	}
}

func TestExportUnknownCommit(t *testing.T) {
	versioning, schemas, projects, assemblies, cache := exportFixture()
	uc := newExportUsecase(versioning, schemas, projects, assemblies, cache)

	_, err := uc.Export(context.Background(), "missing", export.FormatCSV, "token")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestExportGatewayFailure(t *testing.T) {
	versioning, schemas, projects, assemblies, cache := exportFixture()
	assemblies.err = domain.MicroserviceError{Service: "router", Message: "connection refused"}
	uc := newExportUsecase(versioning, schemas, projects, assemblies, cache)

	_, err := uc.Export(context.Background(), "commit-0", export.FormatLCAByg, "token")
	if !errors.Is(err, domain.ErrMicroservice) {
		t.Fatalf("expected microservice error, got %v", err)
	}
	if cache.sets != 0 {
		t.Fatalf("expected nothing cached on failure")
	}
}
