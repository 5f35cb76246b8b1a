// Package export turns pinned snapshots into downloadable payloads.
// Three formats share one outward contract: the payload is produced
// from snapshot data and handed out base64 encoded.
package export

import (
	"encoding/base64"
	"encoding/json"
	"fmt"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/export/lcabyg"
	"github.com/lcacollect/reporting-backend/internal/export/lcax"
)

// Format selects an export pipeline.
type Format string

const (
	FormatLCAByg Format = "lcabyg"
	FormatCSV    Format = "csv"
	FormatLCAx   Format = "lcax"
)

// ParseFormat validates a requested export format.
func ParseFormat(raw string) (Format, error) {
	switch Format(raw) {
	case FormatLCAByg, FormatCSV, FormatLCAx:
		return Format(raw), nil
	}
	return "", domain.ValidationError{
		Message: fmt.Sprintf("unknown export format %q, expected one of lcabyg, csv or lcax", raw),
	}
}

// GraphPayload serializes graph entities into the outward base64 form.
func GraphPayload(entities []lcabyg.Entity) (string, error) {
	encoded := make([]map[string]any, 0, len(entities))
	for _, entity := range entities {
		encoded = append(encoded, entity.Encode())
	}
	raw, err := json.Marshal(encoded)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}

// TabularPayload encodes rendered tabular text into the outward base64
// form.
func TabularPayload(table string) string {
	return base64.StdEncoding.EncodeToString([]byte(table))
}

// DocumentPayload serializes an interchange document into the outward
// base64 form.
func DocumentPayload(doc *lcax.Document) (string, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(raw), nil
}
