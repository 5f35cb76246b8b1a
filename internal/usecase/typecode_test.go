package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

func TestImportElementsResolvesParentChains(t *testing.T) {
	repo := &mockTypeCodeRepo{}
	uc := NewTypeCodeUsecase(repo)

	csv := "code,name,level\n2,Building,1\n21,Walls,2\n211,Outer walls,3\n"
	accepted, err := uc.ImportElements(context.Background(), base64.StdEncoding.EncodeToString([]byte(csv)))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(accepted) != 3 {
		t.Fatalf("expected 3 elements, got %d", len(accepted))
	}

	byCode := map[string]domain.TypeCodeElement{}
	for _, e := range accepted {
		byCode[e.Code] = e
	}
	if byCode["2"].ParentPath != "/" {
		t.Fatalf("expected root parent path, got %q", byCode["2"].ParentPath)
	}
	if byCode["21"].ParentPath != "/"+byCode["2"].ID {
		t.Fatalf("unexpected level 2 parent path %q", byCode["21"].ParentPath)
	}
	if byCode["211"].ParentPath != "/"+byCode["2"].ID+"/"+byCode["21"].ID {
		t.Fatalf("unexpected level 3 parent path %q", byCode["211"].ParentPath)
	}
}

func TestImportElementsSkipsOrphans(t *testing.T) {
	repo := &mockTypeCodeRepo{}
	uc := NewTypeCodeUsecase(repo)

	// 31 has no parent 3, neither in the batch nor persisted.
	csv := "code,name,level\n2,Building,1\n31,Decks,2\n"
	accepted, err := uc.ImportElements(context.Background(), base64.StdEncoding.EncodeToString([]byte(csv)))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(accepted) != 1 || accepted[0].Code != "2" {
		t.Fatalf("expected only the root to be accepted, got %+v", accepted)
	}
}

func TestImportElementsUsesPersistedParents(t *testing.T) {
	repo := &mockTypeCodeRepo{elements: []domain.TypeCodeElement{
		{ID: "persisted-3", Code: "3", Name: "Floors", Level: 1, ParentPath: "/"},
	}}
	uc := NewTypeCodeUsecase(repo)

	csv := "code,name,level\n31,Decks,2\n"
	accepted, err := uc.ImportElements(context.Background(), base64.StdEncoding.EncodeToString([]byte(csv)))
	if err != nil {
		t.Fatalf("import failed: %v", err)
	}
	if len(accepted) != 1 {
		t.Fatalf("expected the row to resolve against persisted parents")
	}
	if accepted[0].ParentPath != "/persisted-3" {
		t.Fatalf("unexpected parent path %q", accepted[0].ParentPath)
	}
}

func TestImportElementsRejectsBadInput(t *testing.T) {
	uc := NewTypeCodeUsecase(&mockTypeCodeRepo{})

	if _, err := uc.ImportElements(context.Background(), "not-base64!"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for bad base64, got %v", err)
	}

	missing := base64.StdEncoding.EncodeToString([]byte("code,name\n2,Building\n"))
	if _, err := uc.ImportElements(context.Background(), missing); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error for missing column, got %v", err)
	}
}
