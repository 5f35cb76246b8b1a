package export

import (
	"strings"
	"testing"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

func TestToCSV(t *testing.T) {
	categories := []domain.SchemaCategory{
		{
			ID:              "cat-1",
			TypeCodeElement: &domain.TypeCodeElement{Code: "211", Name: "Foundations"},
			Elements: []domain.SchemaElement{
				{
					ID:          "el-1",
					Name:        "Wall",
					Quantity:    2500,
					Unit:        domain.UnitM3,
					Description: "desc",
				},
			},
		},
	}

	got, err := ToCSV(categories)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	want := "class;name;source;quantity;unit;description;result\n" +
		`"Foundations";"Wall";"Typed in";2500.0;"m3";"desc";`
	if got != want {
		t.Fatalf("csv mismatch:\ngot  %q\nwant %q", got, want)
	}
}

func TestToCSVUsesSourceName(t *testing.T) {
	categories := []domain.SchemaCategory{
		{
			ID:   "cat-1",
			Name: "211 | Outer walls",
			Elements: []domain.SchemaElement{
				{
					ID:       "el-1",
					Name:     "Wall",
					Quantity: 1.5,
					Unit:     domain.UnitM2,
					Source:   &domain.ProjectSource{Name: "model.csv"},
					Result:   map[string]any{"gwp": 12.5},
				},
			},
		},
	}

	got, err := ToCSV(categories)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected header and one row, got %d lines", len(lines))
	}
	want := `"211 | Outer walls";"Wall";"model.csv";1.5;"m2";"";"{""gwp"":12.5}"`
	if lines[1] != want {
		t.Fatalf("row mismatch:\ngot  %q\nwant %q", lines[1], want)
	}
}

func TestToCSVSkipsNothingOnEmptyCategories(t *testing.T) {
	categories := []domain.SchemaCategory{
		{ID: "cat-1", Name: "211 | Outer walls"},
	}

	got, err := ToCSV(categories)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if got != "class;name;source;quantity;unit;description;result" {
		t.Fatalf("expected header only, got %q", got)
	}
}
