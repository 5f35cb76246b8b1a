package lcabyg

import (
	"testing"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

func TestAggregateSkipsEmptyCategories(t *testing.T) {
	populated := testCategory()
	empty := domain.SchemaCategory{
		ID:              "cat-empty",
		Name:            "311 | Dækelementer",
		ReportingSchema: populated.ReportingSchema,
	}

	entities, err := Aggregate([]domain.SchemaCategory{empty, populated}, nil, NewResolvers())
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}

	for _, entity := range entities {
		if node, ok := entity.(Node); ok && node.NodeID() == empty.ID {
			t.Fatalf("empty category leaked into the graph")
		}
		if edge, ok := entity.(*Edge); ok {
			if edge.ParentID() == empty.ID || edge.ChildID() == empty.ID {
				t.Fatalf("empty category leaked into an edge")
			}
		}
	}

	// One category node, one element node, plus three edges.
	if len(entities) != 5 {
		t.Fatalf("expected 5 entities, got %d", len(entities))
	}
}

func TestAggregateExpandsAssemblyLayers(t *testing.T) {
	category := testCategory()
	assemblyID := "asm-1"
	category.Elements[0].AssemblyID = &assemblyID
	assembly := domain.Assembly{ID: assemblyID, Layers: []domain.AssemblyLayer{testLayer()}}

	entities, err := Aggregate([]domain.SchemaCategory{category}, []domain.Assembly{assembly}, NewResolvers())
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}

	counts := map[string]int{}
	var nodes int
	for _, entity := range entities {
		if edge, ok := entity.(*Edge); ok {
			counts[edge.Name()]++
		} else {
			nodes++
		}
	}

	// Category, element, layer, four stages.
	if nodes != 7 {
		t.Fatalf("expected 7 nodes, got %d", nodes)
	}
	want := map[string]int{
		"CategoryToElement":      1,
		"CategoryToConstruction": 1,
		"ElementToConstruction":  1,
		"ConstructionToProduct":  1,
		"ProductToStage":         4,
		"CategoryToStage":        4,
	}
	for name, n := range want {
		if counts[name] != n {
			t.Fatalf("expected %d %s edges, got %d", n, name, counts[name])
		}
	}
}

func TestAggregateIgnoresUnknownAssemblies(t *testing.T) {
	category := testCategory()
	assemblyID := "asm-missing"
	category.Elements[0].AssemblyID = &assemblyID

	entities, err := Aggregate([]domain.SchemaCategory{category}, nil, NewResolvers())
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}
	if len(entities) != 5 {
		t.Fatalf("expected 5 entities, got %d", len(entities))
	}
}

func TestAggregatePropagatesUnitErrors(t *testing.T) {
	category := testCategory()
	category.Elements[0].Unit = domain.UnitTonnes

	if _, err := Aggregate([]domain.SchemaCategory{category}, nil, NewResolvers()); err == nil {
		t.Fatalf("expected validation error for unsupported unit")
	}
}
