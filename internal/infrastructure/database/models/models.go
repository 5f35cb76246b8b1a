package models

import "time"

type ReportingSchema struct {
	ID         string  `json:"id" gorm:"primaryKey;type:text"`
	Name       string  `json:"name" gorm:"type:text"`
	ProjectID  *string `json:"projectId" gorm:"type:text;index"`
	TemplateID *string `json:"templateId" gorm:"type:text;index"`

	Categories []SchemaCategory `json:"-" gorm:"foreignKey:ReportingSchemaID;constraint:OnDelete:CASCADE;"`
}

type SchemaTemplate struct {
	ID         string  `json:"id" gorm:"primaryKey;type:text"`
	Name       string  `json:"name" gorm:"type:text"`
	Domain     *string `json:"domain" gorm:"type:text"`
	OriginalID *string `json:"originalId" gorm:"type:text"`
}

type SchemaCategory struct {
	ID                string  `json:"id" gorm:"primaryKey;type:text"`
	Path              string  `json:"path" gorm:"type:text"`
	Name              string  `json:"name" gorm:"type:text"`
	Description       string  `json:"description" gorm:"type:text"`
	ReportingSchemaID string  `json:"reportingSchemaId" gorm:"type:text;index"`
	TypeCodeElementID *string `json:"typeCodeElementId" gorm:"type:text"`

	TypeCodeElement *TypeCodeElement `json:"-" gorm:"foreignKey:TypeCodeElementID"`
	Elements        []SchemaElement  `json:"-" gorm:"foreignKey:SchemaCategoryID;constraint:OnDelete:CASCADE;"`
}

type SchemaElement struct {
	ID               string  `json:"id" gorm:"primaryKey;type:text"`
	Name             string  `json:"name" gorm:"type:text"`
	Quantity         float64 `json:"quantity"`
	Unit             string  `json:"unit" gorm:"type:text"`
	Description      string  `json:"description" gorm:"type:text"`
	SchemaCategoryID string  `json:"schemaCategoryId" gorm:"type:text;index"`
	AssemblyID       *string `json:"assemblyId" gorm:"type:text"`
	SourceID         *string `json:"sourceId" gorm:"type:text;index"`
	Result           string  `json:"result" gorm:"type:jsonb"`

	Source *ProjectSource `json:"-" gorm:"foreignKey:SourceID"`
}

type Task struct {
	ID                string     `json:"id" gorm:"primaryKey;type:text"`
	Name              string     `json:"name" gorm:"type:text"`
	Description       string     `json:"description" gorm:"type:text"`
	Status            string     `json:"status" gorm:"type:text"`
	DueDate           *time.Time `json:"dueDate" gorm:"type:timestamp with time zone"`
	ReportingSchemaID string     `json:"reportingSchemaId" gorm:"type:text;index"`
	CategoryID        *string    `json:"categoryId" gorm:"type:text"`
	ElementID         *string    `json:"elementId" gorm:"type:text"`
	AuthorID          string     `json:"authorId" gorm:"type:text"`
	AssigneeID        *string    `json:"assigneeId" gorm:"type:text"`
	AssignedGroupID   *string    `json:"assignedGroupId" gorm:"type:text"`

	Comments []Comment `json:"-" gorm:"foreignKey:TaskID;constraint:OnDelete:CASCADE;"`
}

type Comment struct {
	ID       string    `json:"id" gorm:"primaryKey;type:text"`
	Text     string    `json:"text" gorm:"type:text"`
	TaskID   string    `json:"taskId" gorm:"type:text;index"`
	AuthorID string    `json:"authorId" gorm:"type:text"`
	Added    time.Time `json:"added" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type Repository struct {
	ID                string `json:"id" gorm:"primaryKey;type:text"`
	ReportingSchemaID string `json:"reportingSchemaId" gorm:"type:text;uniqueIndex"`
}

type Commit struct {
	ID           string    `json:"id" gorm:"primaryKey;type:text"`
	ShortID      string    `json:"shortId" gorm:"type:text;index"`
	ParentID     *string   `json:"parentId" gorm:"type:text"`
	RepositoryID string    `json:"repositoryId" gorm:"type:text;index"`
	AuthorID     string    `json:"authorId" gorm:"type:text"`
	Added        time.Time `json:"added" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
	// Seq orders commits within the whole store; the repository head is
	// the row with the highest value.
	Seq int64 `json:"seq" gorm:"autoIncrement;uniqueIndex"`

	Tags []Tag `json:"-" gorm:"foreignKey:CommitID;constraint:OnDelete:CASCADE;"`
}

type Tag struct {
	ID       string    `json:"id" gorm:"primaryKey;type:text"`
	Name     string    `json:"name" gorm:"type:text"`
	CommitID string    `json:"commitId" gorm:"type:text;index"`
	AuthorID string    `json:"authorId" gorm:"type:text"`
	Added    time.Time `json:"added" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}

type TypeCode struct {
	ID        string  `json:"id" gorm:"primaryKey;type:text"`
	Name      string  `json:"name" gorm:"type:text"`
	ProjectID *string `json:"projectId" gorm:"type:text;index"`

	Elements []TypeCodeElement `json:"-" gorm:"foreignKey:TypeCodeID"`
}

type TypeCodeElement struct {
	ID         string  `json:"id" gorm:"primaryKey;type:text"`
	Code       string  `json:"code" gorm:"type:text;index"`
	Name       string  `json:"name" gorm:"type:text"`
	Level      int     `json:"level"`
	ParentPath string  `json:"parentPath" gorm:"type:text"`
	TypeCodeID *string `json:"typeCodeId" gorm:"type:text"`
}

type ProjectSource struct {
	ID             string    `json:"id" gorm:"primaryKey;type:text"`
	Type           string    `json:"type" gorm:"type:text"`
	DataID         string    `json:"dataId" gorm:"type:text"`
	Name           string    `json:"name" gorm:"type:text"`
	ProjectID      string    `json:"projectId" gorm:"type:text;index"`
	MetaFields     string    `json:"metaFields" gorm:"type:jsonb"`
	Interpretation string    `json:"interpretation" gorm:"type:jsonb"`
	AuthorID       string    `json:"authorId" gorm:"type:text"`
	Updated        time.Time `json:"updated" gorm:"type:timestamp with time zone;not null;default:clock_timestamp()"`
}
