package domain

import (
	"strings"
	"time"
)

// ReportingSchema is one classification instance, belonging to a project
// or to a template when ProjectID is nil.
type ReportingSchema struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	ProjectID  *string `json:"projectId,omitempty"`
	TemplateID *string `json:"templateId,omitempty"`

	Categories []SchemaCategory `json:"categories,omitempty"`
}

// SchemaTemplate is an empty reporting schema used as a stamp for new
// project schemas. OriginalID points at the canonical empty schema that
// carries the template's categories.
type SchemaTemplate struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Domain     *string `json:"domain,omitempty"`
	OriginalID *string `json:"originalId,omitempty"`
}

// SchemaCategory is a node in the classification tree of a reporting
// schema. Its position is derived either from the slash-delimited
// ancestor-id path or from the referenced type-code element, never both.
type SchemaCategory struct {
	ID                string  `json:"id"`
	Path              string  `json:"path"`
	Name              string  `json:"name"`
	Description       string  `json:"description"`
	ReportingSchemaID string  `json:"reportingSchemaId"`
	TypeCodeElementID *string `json:"typeCodeElementId,omitempty"`

	ReportingSchema *ReportingSchema `json:"reportingSchema,omitempty"`
	TypeCodeElement *TypeCodeElement `json:"typeCodeElement,omitempty"`
	Elements        []SchemaElement  `json:"elements,omitempty"`
}

// Depth is the number of ancestors encoded in the category path.
func (c SchemaCategory) Depth() int {
	if c.Path == "" || c.Path == "/" {
		return 0
	}
	return strings.Count(c.Path, "/")
}

// ClassificationName is the human-readable "<code> | <description>" pair,
// taken from the category name or derived from its type-code element.
func (c SchemaCategory) ClassificationName() string {
	if c.Name != "" {
		return c.Name
	}
	if c.TypeCodeElement != nil {
		return c.TypeCodeElement.Code + " | " + c.TypeCodeElement.Name
	}
	return ""
}

// SchemaElement is a quantified leaf attached to exactly one category.
type SchemaElement struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Quantity         float64        `json:"quantity"`
	Unit             Unit           `json:"unit"`
	Description      string         `json:"description"`
	SchemaCategoryID string         `json:"schemaCategoryId"`
	AssemblyID       *string        `json:"assemblyId,omitempty"`
	SourceID         *string        `json:"sourceId,omitempty"`
	Result           map[string]any `json:"result,omitempty"`

	SchemaCategory *SchemaCategory `json:"schemaCategory,omitempty"`
	Source         *ProjectSource  `json:"source,omitempty"`
}

// Task is a work item attached to a category or element of a schema.
type Task struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Description       string     `json:"description"`
	Status            string     `json:"status,omitempty"`
	DueDate           *time.Time `json:"dueDate,omitempty"`
	ReportingSchemaID string     `json:"reportingSchemaId"`
	CategoryID        *string    `json:"categoryId,omitempty"`
	ElementID         *string    `json:"elementId,omitempty"`
	AuthorID          string     `json:"authorId"`
	AssigneeID        *string    `json:"assigneeId,omitempty"`
	AssignedGroupID   *string    `json:"assignedGroupId,omitempty"`

	Comments []Comment `json:"comments,omitempty"`
}

// Comment is a note on a task.
type Comment struct {
	ID       string    `json:"id"`
	Text     string    `json:"text"`
	TaskID   string    `json:"taskId"`
	AuthorID string    `json:"authorId"`
	Added    time.Time `json:"added"`
}

// Tag is a named pointer to a commit. Tags are destroyed with their
// commit.
type Tag struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	CommitID string    `json:"commitId"`
	AuthorID string    `json:"authorId"`
	Added    time.Time `json:"added"`
}

// TypeCode is a reusable, schema-independent classification taxonomy.
type TypeCode struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	ProjectID *string `json:"projectId,omitempty"`

	Elements []TypeCodeElement `json:"elements,omitempty"`
}

// TypeCodeElement is a node in a type-code taxonomy. ParentPath is built
// from ancestor ids: "/" for level 1, "/<parentId>" for level 2 and
// "/<grandparentId>/<parentId>" for level 3.
type TypeCodeElement struct {
	ID         string  `json:"id"`
	Code       string  `json:"code"`
	Name       string  `json:"name"`
	Level      int     `json:"level"`
	ParentPath string  `json:"parentPath"`
	TypeCodeID *string `json:"typeCodeId,omitempty"`
}

// ParentIDs returns the ancestor ids encoded in the parent path, oldest
// first. A root element yields no ids.
func (e TypeCodeElement) ParentIDs() []string {
	parts := strings.Split(e.ParentPath, "/")
	ids := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			ids = append(ids, p)
		}
	}
	return ids
}

// ProjectSourceType enumerates where provenance data comes from.
type ProjectSourceType string

const (
	SourceTypeCSV     ProjectSourceType = "csv"
	SourceTypeSpeckle ProjectSourceType = "speckle"
)

// ProjectSource records provenance for imported elements: a file or an
// external-tool import.
type ProjectSource struct {
	ID             string            `json:"id"`
	Type           ProjectSourceType `json:"type"`
	DataID         string            `json:"dataId"`
	Name           string            `json:"name"`
	ProjectID      string            `json:"projectId"`
	MetaFields     map[string]any    `json:"metaFields"`
	Interpretation map[string]any    `json:"interpretation"`
	AuthorID       string            `json:"authorId"`
	Updated        time.Time         `json:"updated"`
}
