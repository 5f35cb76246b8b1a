package usecase

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

func TestSourceAddStoresFile(t *testing.T) {
	sources := newMockSourceRepo()
	blobs := newMockBlobStore()
	uc := NewSourceUsecase(sources, blobs)

	file := base64.StdEncoding.EncodeToString([]byte("name;quantity\nWall;2500\n"))
	source, err := uc.Add(context.Background(), SourceInput{
		ProjectID: "proj-1",
		Type:      domain.SourceTypeCSV,
		Name:      "model.csv",
		File:      &file,
	}, "author-1")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if source.DataID == "" {
		t.Fatalf("expected data id from blob store")
	}

	data, err := uc.Data(context.Background(), source.ID)
	if err != nil {
		t.Fatalf("data failed: %v", err)
	}
	if len(data.Headers) != 2 || data.Headers[0] != "name" {
		t.Fatalf("unexpected headers %v", data.Headers)
	}
	if len(data.Rows) != 1 || data.Rows[0]["quantity"] != "2500" {
		t.Fatalf("unexpected rows %v", data.Rows)
	}
}

func TestSourceDataRejectsNonCSV(t *testing.T) {
	sources := newMockSourceRepo()
	sources.sources["src-1"] = domain.ProjectSource{ID: "src-1", Type: domain.SourceTypeSpeckle}
	uc := NewSourceUsecase(sources, newMockBlobStore())

	if _, err := uc.Data(context.Background(), "src-1"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestSourceUpdateMergesMetaFields(t *testing.T) {
	sources := newMockSourceRepo()
	sources.sources["src-1"] = domain.ProjectSource{
		ID:         "src-1",
		Type:       domain.SourceTypeCSV,
		MetaFields: map[string]any{"url": "https://blobs.example.com"},
	}
	uc := NewSourceUsecase(sources, newMockBlobStore())

	updated, err := uc.Update(context.Background(), "src-1", SourceUpdate{
		MetaFields: map[string]any{"speckle_url": "https://speckle.example.com"},
	}, "author-2")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.MetaFields["url"] != "https://blobs.example.com" {
		t.Fatalf("expected existing meta fields preserved")
	}
	if updated.MetaFields["speckle_url"] != "https://speckle.example.com" {
		t.Fatalf("expected new meta fields merged")
	}
	if updated.AuthorID != "author-2" {
		t.Fatalf("expected author to be recorded")
	}
}

func TestTaskComments(t *testing.T) {
	schemas := newMockSchemaRepo()
	schemas.tasks["task-1"] = domain.Task{ID: "task-1", ReportingSchemaID: "schema-1"}
	uc := NewTaskUsecase(schemas, seedVersioning("schema-1"))

	comment, err := uc.AddComment(context.Background(), "task-1", "looks wrong", "author-1")
	if err != nil {
		t.Fatalf("add comment failed: %v", err)
	}
	if comment.TaskID != "task-1" || comment.Text != "looks wrong" {
		t.Fatalf("unexpected comment %+v", comment)
	}
	if len(schemas.comments) != 1 {
		t.Fatalf("expected comment persisted")
	}

	if _, err := uc.AddComment(context.Background(), "missing", "x", "author-1"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not found for unknown task, got %v", err)
	}
}
