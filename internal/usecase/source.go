package usecase

import (
	"context"
	"encoding/base64"
	"encoding/csv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// SourceInput is the validated input for creating a project source.
type SourceInput struct {
	ProjectID string
	Type      domain.ProjectSourceType
	Name      string
	DataID    string
	// File is an optional base64 payload; when present it is stored in
	// the blob store and its path becomes the source's data id.
	File *string
}

// SourceUpdate carries the mutable fields of a project source. Meta
// fields and interpretation are merged into the existing maps.
type SourceUpdate struct {
	Type           *domain.ProjectSourceType
	Name           *string
	DataID         *string
	File           *string
	MetaFields     map[string]any
	Interpretation map[string]any
}

// SourceData is the parsed tabular content of a CSV source.
type SourceData struct {
	Headers []string
	Rows    []map[string]string
}

type SourceUsecase struct {
	sources SourceRepository
	blobs   BlobStore
}

func NewSourceUsecase(sources SourceRepository, blobs BlobStore) *SourceUsecase {
	return &SourceUsecase{sources: sources, blobs: blobs}
}

// Add registers a project source, uploading the optional file payload
// to the blob store first.
func (uc *SourceUsecase) Add(ctx context.Context, input SourceInput, authorID string) (domain.ProjectSource, error) {
	source := domain.ProjectSource{
		ID:             uuid.NewString(),
		Type:           input.Type,
		DataID:         input.DataID,
		Name:           input.Name,
		ProjectID:      input.ProjectID,
		MetaFields:     map[string]any{},
		Interpretation: map[string]any{},
		AuthorID:       authorID,
		Updated:        time.Now(),
	}

	if input.File != nil {
		path, err := uc.storeFile(ctx, *input.File)
		if err != nil {
			return domain.ProjectSource{}, err
		}
		source.DataID = path
	}

	if err := uc.sources.CreateSource(ctx, source); err != nil {
		return domain.ProjectSource{}, err
	}
	return source, nil
}

// Update rewrites a source's fields, merging meta fields and
// interpretation maps instead of replacing them.
func (uc *SourceUsecase) Update(ctx context.Context, id string, update SourceUpdate, authorID string) (domain.ProjectSource, error) {
	source, err := uc.sources.GetSource(ctx, id)
	if err != nil {
		return domain.ProjectSource{}, err
	}

	if update.Type != nil {
		source.Type = *update.Type
	}
	if update.Name != nil {
		source.Name = *update.Name
	}
	if update.DataID != nil {
		source.DataID = *update.DataID
	}
	if update.File != nil {
		path, err := uc.storeFile(ctx, *update.File)
		if err != nil {
			return domain.ProjectSource{}, err
		}
		source.DataID = path
	}
	if source.MetaFields == nil {
		source.MetaFields = map[string]any{}
	}
	for k, v := range update.MetaFields {
		source.MetaFields[k] = v
	}
	if source.Interpretation == nil {
		source.Interpretation = map[string]any{}
	}
	for k, v := range update.Interpretation {
		source.Interpretation[k] = v
	}
	source.AuthorID = authorID
	source.Updated = time.Now()

	if err := uc.sources.UpdateSource(ctx, source); err != nil {
		return domain.ProjectSource{}, err
	}
	return source, nil
}

// Delete removes a project source. Blob content stays; it is content
// addressed and may be shared by other sources.
func (uc *SourceUsecase) Delete(ctx context.Context, id string) error {
	return uc.sources.DeleteSource(ctx, id)
}

// List fetches the sources of a project.
func (uc *SourceUsecase) List(ctx context.Context, projectID string) ([]domain.ProjectSource, error) {
	return uc.sources.ListSources(ctx, projectID)
}

// Data loads and parses the stored file of a CSV source.
func (uc *SourceUsecase) Data(ctx context.Context, id string) (SourceData, error) {
	source, err := uc.sources.GetSource(ctx, id)
	if err != nil {
		return SourceData{}, err
	}
	if source.Type != domain.SourceTypeCSV {
		return SourceData{}, domain.ValidationError{
			Message: "source data is only available for csv sources, got " + string(source.Type),
		}
	}

	raw, err := uc.blobs.Get(ctx, source.DataID)
	if err != nil {
		return SourceData{}, err
	}
	return parseSourceCSV(string(raw))
}

func (uc *SourceUsecase) storeFile(ctx context.Context, encoded string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", domain.ValidationError{Message: "file is not valid base64: " + err.Error()}
	}
	return uc.blobs.Put(ctx, data)
}

func parseSourceCSV(data string) (SourceData, error) {
	separator := ','
	if first, _, found := strings.Cut(data, "\n"); found || first != "" {
		if strings.Count(first, ";") > strings.Count(first, ",") {
			separator = ';'
		}
	}

	reader := csv.NewReader(strings.NewReader(data))
	reader.Comma = separator
	records, err := reader.ReadAll()
	if err != nil {
		return SourceData{}, domain.ValidationError{Message: "malformed csv: " + err.Error()}
	}
	if len(records) == 0 {
		return SourceData{}, domain.ValidationError{Message: "csv has no header row"}
	}

	headers := records[0]
	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			}
		}
		rows = append(rows, row)
	}
	return SourceData{Headers: headers, Rows: rows}, nil
}
