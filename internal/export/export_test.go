package export

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"testing"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/export/lcabyg"
)

func TestParseFormat(t *testing.T) {
	for _, raw := range []string{"lcabyg", "csv", "lcax"} {
		format, err := ParseFormat(raw)
		if err != nil {
			t.Fatalf("parse %q failed: %v", raw, err)
		}
		if string(format) != raw {
			t.Fatalf("parse %q yielded %q", raw, format)
		}
	}

	if _, err := ParseFormat("xlsx"); !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGraphPayloadRoundTrip(t *testing.T) {
	category := domain.SchemaCategory{
		ID:   "cat-1",
		Name: "211 | Outer walls",
		Elements: []domain.SchemaElement{
			{ID: "el-1", Name: "Wall", Quantity: 1, Unit: domain.UnitM2},
		},
	}
	entities, err := lcabyg.Aggregate([]domain.SchemaCategory{category}, nil, lcabyg.NewResolvers())
	if err != nil {
		t.Fatalf("aggregate failed: %v", err)
	}

	payload, err := GraphPayload(entities)
	if err != nil {
		t.Fatalf("payload failed: %v", err)
	}
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("payload is not a json array: %v", err)
	}
	if len(decoded) != len(entities) {
		t.Fatalf("expected %d entries, got %d", len(entities), len(decoded))
	}
}

func TestTabularPayload(t *testing.T) {
	payload := TabularPayload("class;name\n")
	raw, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		t.Fatalf("payload is not base64: %v", err)
	}
	if string(raw) != "class;name\n" {
		t.Fatalf("unexpected payload %q", raw)
	}
}
