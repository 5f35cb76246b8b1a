package repository

import (
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/database/models"
)

// jsonb columns are carried as strings on the model side. An empty map
// round-trips as the empty string, not "{}".

func encodeJSONMap(m map[string]any) (string, error) {
	if len(m) == 0 {
		return "", nil
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", errors.Wrap(err, "failed to encode jsonb column")
	}
	return string(data), nil
}

func decodeJSONMap(s string) (map[string]any, error) {
	if s == "" {
		return nil, nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil, errors.Wrap(err, "failed to decode jsonb column")
	}
	return m, nil
}

func fromModelCategory(m models.SchemaCategory) domain.SchemaCategory {
	category := domain.SchemaCategory{
		ID:                m.ID,
		Path:              m.Path,
		Name:              m.Name,
		Description:       m.Description,
		ReportingSchemaID: m.ReportingSchemaID,
		TypeCodeElementID: m.TypeCodeElementID,
	}
	if m.TypeCodeElement != nil {
		element := fromModelTypeCodeElement(*m.TypeCodeElement)
		category.TypeCodeElement = &element
	}
	return category
}

func toModelCategory(c domain.SchemaCategory) models.SchemaCategory {
	return models.SchemaCategory{
		ID:                c.ID,
		Path:              c.Path,
		Name:              c.Name,
		Description:       c.Description,
		ReportingSchemaID: c.ReportingSchemaID,
		TypeCodeElementID: c.TypeCodeElementID,
	}
}

func fromModelElement(m models.SchemaElement) (domain.SchemaElement, error) {
	result, err := decodeJSONMap(m.Result)
	if err != nil {
		return domain.SchemaElement{}, err
	}
	element := domain.SchemaElement{
		ID:               m.ID,
		Name:             m.Name,
		Quantity:         m.Quantity,
		Unit:             domain.Unit(m.Unit),
		Description:      m.Description,
		SchemaCategoryID: m.SchemaCategoryID,
		AssemblyID:       m.AssemblyID,
		SourceID:         m.SourceID,
		Result:           result,
	}
	if m.Source != nil {
		source, err := fromModelSource(*m.Source)
		if err != nil {
			return domain.SchemaElement{}, err
		}
		element.Source = &source
	}
	return element, nil
}

func toModelElement(e domain.SchemaElement) (models.SchemaElement, error) {
	result, err := encodeJSONMap(e.Result)
	if err != nil {
		return models.SchemaElement{}, err
	}
	return models.SchemaElement{
		ID:               e.ID,
		Name:             e.Name,
		Quantity:         e.Quantity,
		Unit:             string(e.Unit),
		Description:      e.Description,
		SchemaCategoryID: e.SchemaCategoryID,
		AssemblyID:       e.AssemblyID,
		SourceID:         e.SourceID,
		Result:           result,
	}, nil
}

func fromModelTask(m models.Task) domain.Task {
	task := domain.Task{
		ID:                m.ID,
		Name:              m.Name,
		Description:       m.Description,
		Status:            m.Status,
		DueDate:           m.DueDate,
		ReportingSchemaID: m.ReportingSchemaID,
		CategoryID:        m.CategoryID,
		ElementID:         m.ElementID,
		AuthorID:          m.AuthorID,
		AssigneeID:        m.AssigneeID,
		AssignedGroupID:   m.AssignedGroupID,
	}
	for _, c := range m.Comments {
		task.Comments = append(task.Comments, fromModelComment(c))
	}
	return task
}

func toModelTask(t domain.Task) models.Task {
	return models.Task{
		ID:                t.ID,
		Name:              t.Name,
		Description:       t.Description,
		Status:            t.Status,
		DueDate:           t.DueDate,
		ReportingSchemaID: t.ReportingSchemaID,
		CategoryID:        t.CategoryID,
		ElementID:         t.ElementID,
		AuthorID:          t.AuthorID,
		AssigneeID:        t.AssigneeID,
		AssignedGroupID:   t.AssignedGroupID,
	}
}

func fromModelComment(m models.Comment) domain.Comment {
	return domain.Comment{
		ID:       m.ID,
		Text:     m.Text,
		TaskID:   m.TaskID,
		AuthorID: m.AuthorID,
		Added:    m.Added,
	}
}

func fromModelTag(m models.Tag) domain.Tag {
	return domain.Tag{
		ID:       m.ID,
		Name:     m.Name,
		CommitID: m.CommitID,
		AuthorID: m.AuthorID,
		Added:    m.Added,
	}
}

func fromModelTypeCodeElement(m models.TypeCodeElement) domain.TypeCodeElement {
	return domain.TypeCodeElement{
		ID:         m.ID,
		Code:       m.Code,
		Name:       m.Name,
		Level:      m.Level,
		ParentPath: m.ParentPath,
		TypeCodeID: m.TypeCodeID,
	}
}

func toModelTypeCodeElement(e domain.TypeCodeElement) models.TypeCodeElement {
	return models.TypeCodeElement{
		ID:         e.ID,
		Code:       e.Code,
		Name:       e.Name,
		Level:      e.Level,
		ParentPath: e.ParentPath,
		TypeCodeID: e.TypeCodeID,
	}
}

func fromModelSource(m models.ProjectSource) (domain.ProjectSource, error) {
	meta, err := decodeJSONMap(m.MetaFields)
	if err != nil {
		return domain.ProjectSource{}, err
	}
	interpretation, err := decodeJSONMap(m.Interpretation)
	if err != nil {
		return domain.ProjectSource{}, err
	}
	return domain.ProjectSource{
		ID:             m.ID,
		Type:           domain.ProjectSourceType(m.Type),
		DataID:         m.DataID,
		Name:           m.Name,
		ProjectID:      m.ProjectID,
		MetaFields:     meta,
		Interpretation: interpretation,
		AuthorID:       m.AuthorID,
		Updated:        m.Updated,
	}, nil
}

func toModelSource(s domain.ProjectSource) (models.ProjectSource, error) {
	meta, err := encodeJSONMap(s.MetaFields)
	if err != nil {
		return models.ProjectSource{}, err
	}
	interpretation, err := encodeJSONMap(s.Interpretation)
	if err != nil {
		return models.ProjectSource{}, err
	}
	return models.ProjectSource{
		ID:             s.ID,
		Type:           string(s.Type),
		DataID:         s.DataID,
		Name:           s.Name,
		ProjectID:      s.ProjectID,
		MetaFields:     meta,
		Interpretation: interpretation,
		AuthorID:       s.AuthorID,
		Updated:        s.Updated,
	}, nil
}
