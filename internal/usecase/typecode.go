package usecase

import (
	"context"
	"encoding/base64"
	"encoding/csv"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

type TypeCodeUsecase struct {
	typeCodes TypeCodeRepository
}

func NewTypeCodeUsecase(typeCodes TypeCodeRepository) *TypeCodeUsecase {
	return &TypeCodeUsecase{typeCodes: typeCodes}
}

// CreateElement adds a single taxonomy element.
func (uc *TypeCodeUsecase) CreateElement(ctx context.Context, code, name string, level int, parentPath string) (domain.TypeCodeElement, error) {
	element := domain.TypeCodeElement{
		ID:         uuid.NewString(),
		Code:       code,
		Name:       name,
		Level:      level,
		ParentPath: parentPath,
	}
	if element.ParentPath == "" {
		element.ParentPath = "/"
	}
	if err := uc.typeCodes.CreateTypeCodeElements(ctx, []domain.TypeCodeElement{element}); err != nil {
		return domain.TypeCodeElement{}, err
	}
	return element, nil
}

// UpdateElement rewrites an element's fields; empty values are left
// untouched.
func (uc *TypeCodeUsecase) UpdateElement(ctx context.Context, id string, code, name string, level *int) (domain.TypeCodeElement, error) {
	element, err := uc.typeCodes.GetTypeCodeElement(ctx, id)
	if err != nil {
		return domain.TypeCodeElement{}, err
	}

	if code != "" {
		element.Code = code
	}
	if name != "" {
		element.Name = name
	}
	if level != nil {
		element.Level = *level
	}

	if err := uc.typeCodes.UpdateTypeCodeElement(ctx, element); err != nil {
		return domain.TypeCodeElement{}, err
	}
	return element, nil
}

// DeleteElement removes a taxonomy element.
func (uc *TypeCodeUsecase) DeleteElement(ctx context.Context, id string) error {
	return uc.typeCodes.DeleteTypeCodeElement(ctx, id)
}

// ListElements fetches all taxonomy elements.
func (uc *TypeCodeUsecase) ListElements(ctx context.Context) ([]domain.TypeCodeElement, error) {
	return uc.typeCodes.ListTypeCodeElements(ctx)
}

// ListTypeCodes fetches taxonomies, optionally scoped to a project.
func (uc *TypeCodeUsecase) ListTypeCodes(ctx context.Context, projectID *string) ([]domain.TypeCode, error) {
	return uc.typeCodes.ListTypeCodes(ctx, projectID)
}

// ImportElements bulk-loads taxonomy elements from a base64 encoded CSV
// with columns code, name and level. An element's parent chain is
// derived from its code prefixes; rows whose chain cannot be resolved
// against the batch or the already persisted elements are skipped.
func (uc *TypeCodeUsecase) ImportElements(ctx context.Context, encoded string) ([]domain.TypeCodeElement, error) {
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, domain.ValidationError{Message: "file is not valid base64: " + err.Error()}
	}

	rows, err := parseTypeCodeCSV(string(data))
	if err != nil {
		return nil, err
	}

	persisted, err := uc.typeCodes.ListTypeCodeElements(ctx)
	if err != nil {
		return nil, err
	}

	byCode := make(map[string]domain.TypeCodeElement, len(persisted)+len(rows))
	for _, element := range persisted {
		byCode[element.Code] = element
	}
	for _, row := range rows {
		if _, ok := byCode[row.Code]; !ok {
			byCode[row.Code] = row
		}
	}

	var accepted []domain.TypeCodeElement
	for _, row := range rows {
		path, ok := parentPathFor(row.Code, byCode)
		if !ok {
			slog.DebugContext(
				ctx, "Skipping type code element with unresolved parents",
				slog.String("code", row.Code),
			)
			continue
		}
		row.ParentPath = path
		accepted = append(accepted, row)
	}

	if len(accepted) == 0 {
		return nil, nil
	}
	if err := uc.typeCodes.CreateTypeCodeElements(ctx, accepted); err != nil {
		return nil, err
	}
	return accepted, nil
}

func parseTypeCodeCSV(data string) ([]domain.TypeCodeElement, error) {
	reader := csv.NewReader(strings.NewReader(data))
	records, err := reader.ReadAll()
	if err != nil {
		return nil, domain.ValidationError{Message: "malformed csv: " + err.Error()}
	}
	if len(records) < 1 {
		return nil, domain.ValidationError{Message: "csv has no header row"}
	}

	columns := map[string]int{}
	for i, header := range records[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, required := range []string{"code", "name", "level"} {
		if _, ok := columns[required]; !ok {
			return nil, domain.ValidationError{Message: "csv is missing column " + required}
		}
	}

	elements := make([]domain.TypeCodeElement, 0, len(records)-1)
	for i, record := range records[1:] {
		level, err := strconv.Atoi(strings.TrimSpace(record[columns["level"]]))
		if err != nil {
			return nil, domain.ValidationError{
				Message: errors.Wrapf(err, "row %d has a non-numeric level", i+2).Error(),
			}
		}
		elements = append(elements, domain.TypeCodeElement{
			ID:    uuid.NewString(),
			Code:  strings.TrimSpace(record[columns["code"]]),
			Name:  strings.TrimSpace(record[columns["name"]]),
			Level: level,
		})
	}
	return elements, nil
}

// parentPathFor resolves the ancestor chain of a code through its
// prefixes, shortest last. A one-character code is a root.
func parentPathFor(code string, byCode map[string]domain.TypeCodeElement) (string, bool) {
	if code == "" {
		return "", false
	}
	var ids []string
	for prefix := code[:len(code)-1]; prefix != ""; prefix = prefix[:len(prefix)-1] {
		parent, ok := byCode[prefix]
		if !ok {
			return "", false
		}
		ids = append([]string{parent.ID}, ids...)
	}
	return "/" + strings.Join(ids, "/"), true
}
