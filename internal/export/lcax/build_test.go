package lcax

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

func testProject() domain.Project {
	return domain.Project{
		ID:      "proj-1",
		Name:    "Harbour Tower",
		Country: "NO",
		Stages: []domain.Stage{
			{Phase: "A1"}, {Phase: "A2"}, {Phase: "A3"},
			{Phase: "C3"}, {Phase: "C4"}, {Phase: "D"},
		},
	}
}

func testSnapshot() (domain.ReportingSchema, []domain.SchemaCategory, []domain.Assembly) {
	schema := domain.ReportingSchema{ID: "schema-1", Name: "BR23 - BIMTypeCode"}
	assemblyID := "asm-1"
	rsl := 60.0
	categories := []domain.SchemaCategory{
		{
			ID:   "cat-1",
			Name: "211 | Outer walls",
			Elements: []domain.SchemaElement{
				{
					ID:          "el-1",
					Name:        "Wall",
					Quantity:    2500,
					Unit:        domain.UnitM3,
					Description: "desc",
					AssemblyID:  &assemblyID,
				},
			},
		},
	}
	assemblies := []domain.Assembly{
		{
			ID: assemblyID,
			Layers: []domain.AssemblyLayer{
				{
					ID:                   "layer-1",
					Name:                 "Concrete C25/30",
					ConversionFactor:     0.3,
					ReferenceServiceLife: 80,
					Unit:                 "m3",
					TransportType:        "truck",
					TransportDistance:    45,
					TransportUnit:        "km",
					EPD: domain.EPD{
						ID:                   "epd-1",
						Name:                 "Beton C25",
						DeclaredUnit:         "m3",
						Version:              "1.0.0",
						ValidUntil:           "2025-12-24",
						PublishedDate:        "2020-12-24",
						Source:               "Ökobau",
						Location:             "DE",
						Subtype:              "Generic",
						ReferenceServiceLife: &rsl,
						Conversions:          []domain.Conversion{{To: "kg", Value: 2350}},
						GWP:                  domain.Indicators{A1A3: 291.8, C3: 7.3, C4: 1.9, D: -44.8},
					},
				},
			},
		},
	}
	return schema, categories, assemblies
}

func TestNewDocument(t *testing.T) {
	schema, categories, assemblies := testSnapshot()
	now := time.Date(2023, 4, 5, 12, 30, 0, 0, time.UTC)

	doc, err := NewDocument(testProject(), schema, categories, assemblies, now)
	if err != nil {
		t.Fatalf("document failed: %v", err)
	}

	if doc.ID != "proj-1" || doc.Location != "NO" {
		t.Fatalf("unexpected project fields: %+v", doc)
	}
	if doc.Comment != "Exported 2023-04-05 12:30:00" {
		t.Fatalf("unexpected comment %q", doc.Comment)
	}
	if doc.LCIAMethod != "EN15978" || doc.LifeSpan != 50 {
		t.Fatalf("unexpected method fields: %+v", doc)
	}
	if doc.ClassificationSystem == nil || *doc.ClassificationSystem != "BIMTypeCode" {
		t.Fatalf("expected BIMTypeCode system, got %v", doc.ClassificationSystem)
	}
	if want := []string{"a1a3", "c3", "c4", "d"}; !reflect.DeepEqual(doc.LifeCycleStages, want) {
		t.Fatalf("unexpected stages %v", doc.LifeCycleStages)
	}

	assembly, ok := doc.EmissionParts["el-1"]
	if !ok {
		t.Fatalf("missing assembly for element")
	}
	wantClass := []Classification{{System: "BIMTypeCode", Code: "211", Name: "Outer walls"}}
	if !reflect.DeepEqual(assembly.Classification, wantClass) {
		t.Fatalf("unexpected classification %v", assembly.Classification)
	}
	if assembly.Unit != UnitM3 || assembly.Quantity != 2500 {
		t.Fatalf("unexpected assembly %+v", assembly)
	}

	// No A4 stage recorded, so parts carry no transport fields.
	part, ok := assembly.Parts["layer-1"].(Part)
	if !ok {
		t.Fatalf("expected plain part, got %T", assembly.Parts["layer-1"])
	}
	if part.PartQuantity != 0.3 || part.PartUnit != UnitM3 {
		t.Fatalf("unexpected part %+v", part)
	}
	epd := part.EPDSource.EPD
	if epd.DeclaredUnit != UnitM3 || epd.Standard != "EN15804A1" {
		t.Fatalf("unexpected epd %+v", epd)
	}
	if epd.PublishedDate.Format("2006-01-02") != "2020-12-24" {
		t.Fatalf("unexpected published date %v", epd.PublishedDate)
	}
	if epd.GWP.D != -44.8 {
		t.Fatalf("unexpected gwp %+v", epd.GWP)
	}
}

func TestNewDocumentTransportVariant(t *testing.T) {
	schema, categories, assemblies := testSnapshot()
	project := testProject()
	project.Stages = append(project.Stages, domain.Stage{Phase: "A4"})

	doc, err := NewDocument(project, schema, categories, assemblies, time.Now())
	if err != nil {
		t.Fatalf("document failed: %v", err)
	}

	part, ok := doc.EmissionParts["el-1"].Parts["layer-1"].(TransportPart)
	if !ok {
		t.Fatalf("expected transport part, got %T", doc.EmissionParts["el-1"].Parts["layer-1"])
	}
	if part.TransportType != "truck" || part.TransportDistance != 45 || part.TransportUnit != UnitUnknown {
		t.Fatalf("unexpected transport fields %+v", part)
	}

	raw, err := json.Marshal(part)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}
	if !strings.Contains(string(raw), `"transport_distance":45`) {
		t.Fatalf("transport fields missing from payload: %s", raw)
	}
}

func TestNewDocumentWithoutClassificationSystem(t *testing.T) {
	schema, categories, assemblies := testSnapshot()
	schema.Name = "BIM7AA"

	doc, err := NewDocument(testProject(), schema, categories, assemblies, time.Now())
	if err != nil {
		t.Fatalf("document failed: %v", err)
	}
	if doc.ClassificationSystem != nil {
		t.Fatalf("expected no classification system for %q", schema.Name)
	}
	if len(doc.EmissionParts["el-1"].Classification) != 0 {
		t.Fatalf("expected classification block to be omitted")
	}
}

func TestNewDocumentDefaultsLocation(t *testing.T) {
	schema, categories, assemblies := testSnapshot()
	project := testProject()
	project.Country = ""

	doc, err := NewDocument(project, schema, categories, assemblies, time.Now())
	if err != nil {
		t.Fatalf("document failed: %v", err)
	}
	if doc.Location != "DK" {
		t.Fatalf("expected DK fallback, got %q", doc.Location)
	}
}

func TestConvertUnit(t *testing.T) {
	if ConvertUnit("M3") != UnitM3 {
		t.Fatalf("expected case-insensitive conversion")
	}
	if ConvertUnit("tonnes") != UnitUnknown {
		t.Fatalf("expected unknown for unsupported unit")
	}
}
