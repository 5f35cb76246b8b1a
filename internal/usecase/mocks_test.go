package usecase

import (
	"context"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

type mockVersioning struct {
	repo       domain.Repository
	head       domain.Commit
	commits    []domain.Commit
	edits      []Edit
	categories []domain.SchemaCategory
	tasks      []domain.Task
}

func (m *mockVersioning) CreateRepository(ctx context.Context, repo domain.Repository, initial *domain.Commit) error {
	m.repo = repo
	if initial != nil {
		m.head = *initial
		m.commits = append(m.commits, *initial)
	}
	return nil
}

func (m *mockVersioning) RepositoryFor(ctx context.Context, reportingSchemaID string) (domain.Repository, error) {
	if m.repo.ID == "" {
		return domain.Repository{}, domain.NotFoundError{Resource: "repository " + reportingSchemaID}
	}
	return m.repo, nil
}

func (m *mockVersioning) GetRepository(ctx context.Context, id string) (domain.Repository, error) {
	if m.repo.ID != id {
		return domain.Repository{}, domain.NotFoundError{Resource: "repository " + id}
	}
	return m.repo, nil
}

func (m *mockVersioning) Head(ctx context.Context, repositoryID string) (domain.Commit, error) {
	return m.head, nil
}

func (m *mockVersioning) GetCommit(ctx context.Context, commitID string) (domain.Commit, error) {
	for _, c := range m.commits {
		if c.ID == commitID {
			return c, nil
		}
	}
	return domain.Commit{}, domain.NotFoundError{Resource: "commit " + commitID}
}

func (m *mockVersioning) ListCommits(ctx context.Context, repositoryID string) ([]domain.Commit, error) {
	return m.commits, nil
}

func (m *mockVersioning) CommitEdit(ctx context.Context, commit *domain.Commit, edit Edit) error {
	commit.Seq = m.head.Seq + 1
	m.head = *commit
	m.commits = append(m.commits, *commit)
	m.edits = append(m.edits, edit)
	return nil
}

func (m *mockVersioning) SnapshotCategories(ctx context.Context, commit domain.Commit) ([]domain.SchemaCategory, error) {
	return m.categories, nil
}

func (m *mockVersioning) SnapshotTasks(ctx context.Context, commit domain.Commit) ([]domain.Task, error) {
	return m.tasks, nil
}

type mockSchemaRepo struct {
	schemas    map[string]domain.ReportingSchema
	categories map[string]domain.SchemaCategory
	elements   map[string]domain.SchemaElement
	tasks      map[string]domain.Task
	comments   []domain.Comment
}

func newMockSchemaRepo() *mockSchemaRepo {
	return &mockSchemaRepo{
		schemas:    map[string]domain.ReportingSchema{},
		categories: map[string]domain.SchemaCategory{},
		elements:   map[string]domain.SchemaElement{},
		tasks:      map[string]domain.Task{},
	}
}

func (m *mockSchemaRepo) CreateSchema(ctx context.Context, schema domain.ReportingSchema, categories []domain.SchemaCategory) error {
	schema.Categories = categories
	m.schemas[schema.ID] = schema
	for _, c := range categories {
		m.categories[c.ID] = c
	}
	return nil
}

func (m *mockSchemaRepo) GetSchema(ctx context.Context, id string) (domain.ReportingSchema, error) {
	schema, ok := m.schemas[id]
	if !ok {
		return domain.ReportingSchema{}, domain.NotFoundError{Resource: "reporting schema " + id}
	}
	return schema, nil
}

func (m *mockSchemaRepo) ListSchemas(ctx context.Context, projectID string) ([]domain.ReportingSchema, error) {
	var out []domain.ReportingSchema
	for _, s := range m.schemas {
		if s.ProjectID != nil && *s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSchemaRepo) UpdateSchema(ctx context.Context, schema domain.ReportingSchema) error {
	m.schemas[schema.ID] = schema
	return nil
}

func (m *mockSchemaRepo) DeleteSchema(ctx context.Context, id string) error {
	delete(m.schemas, id)
	return nil
}

func (m *mockSchemaRepo) GetCategory(ctx context.Context, id string) (domain.SchemaCategory, error) {
	category, ok := m.categories[id]
	if !ok {
		return domain.SchemaCategory{}, domain.NotFoundError{Resource: "schema category " + id}
	}
	return category, nil
}

func (m *mockSchemaRepo) GetElement(ctx context.Context, id string) (domain.SchemaElement, error) {
	element, ok := m.elements[id]
	if !ok {
		return domain.SchemaElement{}, domain.NotFoundError{Resource: "schema element " + id}
	}
	return element, nil
}

func (m *mockSchemaRepo) ListElementsByCategory(ctx context.Context, categoryID string) ([]domain.SchemaElement, error) {
	var out []domain.SchemaElement
	for _, e := range m.elements {
		if e.SchemaCategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *mockSchemaRepo) GetTask(ctx context.Context, id string) (domain.Task, error) {
	task, ok := m.tasks[id]
	if !ok {
		return domain.Task{}, domain.NotFoundError{Resource: "task " + id}
	}
	return task, nil
}

func (m *mockSchemaRepo) CreateComment(ctx context.Context, comment domain.Comment) error {
	m.comments = append(m.comments, comment)
	return nil
}

func (m *mockSchemaRepo) UpdateComment(ctx context.Context, comment domain.Comment) error {
	for i, c := range m.comments {
		if c.ID == comment.ID {
			m.comments[i] = comment
		}
	}
	return nil
}

func (m *mockSchemaRepo) DeleteComment(ctx context.Context, id string) error {
	for i, c := range m.comments {
		if c.ID == id {
			m.comments = append(m.comments[:i], m.comments[i+1:]...)
			break
		}
	}
	return nil
}

type mockTemplateRepo struct {
	templates  map[string]domain.SchemaTemplate
	originals  map[string]domain.ReportingSchema
	categories map[string][]domain.SchemaCategory
}

func newMockTemplateRepo() *mockTemplateRepo {
	return &mockTemplateRepo{
		templates:  map[string]domain.SchemaTemplate{},
		originals:  map[string]domain.ReportingSchema{},
		categories: map[string][]domain.SchemaCategory{},
	}
}

func (m *mockTemplateRepo) CreateTemplate(ctx context.Context, template domain.SchemaTemplate, original domain.ReportingSchema, categories []domain.SchemaCategory) error {
	m.templates[template.ID] = template
	m.originals[original.ID] = original
	m.categories[original.ID] = categories
	return nil
}

func (m *mockTemplateRepo) GetTemplate(ctx context.Context, id string) (domain.SchemaTemplate, error) {
	template, ok := m.templates[id]
	if !ok {
		return domain.SchemaTemplate{}, domain.NotFoundError{Resource: "schema template " + id}
	}
	return template, nil
}

func (m *mockTemplateRepo) ListTemplates(ctx context.Context) ([]domain.SchemaTemplate, error) {
	var out []domain.SchemaTemplate
	for _, t := range m.templates {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTemplateRepo) UpdateTemplate(ctx context.Context, template domain.SchemaTemplate, categories []domain.SchemaCategory) error {
	m.templates[template.ID] = template
	if template.OriginalID != nil {
		m.categories[*template.OriginalID] = categories
	}
	return nil
}

func (m *mockTemplateRepo) DeleteTemplate(ctx context.Context, id string) error {
	delete(m.templates, id)
	return nil
}

type mockTagRepo struct {
	tags map[string]domain.Tag
}

func newMockTagRepo() *mockTagRepo {
	return &mockTagRepo{tags: map[string]domain.Tag{}}
}

func (m *mockTagRepo) CreateTag(ctx context.Context, tag domain.Tag) error {
	m.tags[tag.ID] = tag
	return nil
}

func (m *mockTagRepo) GetTag(ctx context.Context, id string) (domain.Tag, error) {
	tag, ok := m.tags[id]
	if !ok {
		return domain.Tag{}, domain.NotFoundError{Resource: "tag " + id}
	}
	return tag, nil
}

func (m *mockTagRepo) ListTags(ctx context.Context, repositoryID string) ([]domain.Tag, error) {
	var out []domain.Tag
	for _, t := range m.tags {
		out = append(out, t)
	}
	return out, nil
}

func (m *mockTagRepo) UpdateTag(ctx context.Context, tag domain.Tag) error {
	m.tags[tag.ID] = tag
	return nil
}

func (m *mockTagRepo) DeleteTag(ctx context.Context, id string) error {
	delete(m.tags, id)
	return nil
}

type mockTypeCodeRepo struct {
	elements []domain.TypeCodeElement
}

func (m *mockTypeCodeRepo) CreateTypeCode(ctx context.Context, tc domain.TypeCode) error {
	return nil
}

func (m *mockTypeCodeRepo) ListTypeCodes(ctx context.Context, projectID *string) ([]domain.TypeCode, error) {
	return nil, nil
}

func (m *mockTypeCodeRepo) CreateTypeCodeElements(ctx context.Context, elements []domain.TypeCodeElement) error {
	m.elements = append(m.elements, elements...)
	return nil
}

func (m *mockTypeCodeRepo) ListTypeCodeElements(ctx context.Context) ([]domain.TypeCodeElement, error) {
	return m.elements, nil
}

func (m *mockTypeCodeRepo) GetTypeCodeElement(ctx context.Context, id string) (domain.TypeCodeElement, error) {
	for _, e := range m.elements {
		if e.ID == id {
			return e, nil
		}
	}
	return domain.TypeCodeElement{}, domain.NotFoundError{Resource: "type code element " + id}
}

func (m *mockTypeCodeRepo) UpdateTypeCodeElement(ctx context.Context, element domain.TypeCodeElement) error {
	for i, e := range m.elements {
		if e.ID == element.ID {
			m.elements[i] = element
		}
	}
	return nil
}

func (m *mockTypeCodeRepo) DeleteTypeCodeElement(ctx context.Context, id string) error {
	for i, e := range m.elements {
		if e.ID == id {
			m.elements = append(m.elements[:i], m.elements[i+1:]...)
			break
		}
	}
	return nil
}

type mockProjectGateway struct {
	project domain.Project
	err     error
	calls   int
}

func (m *mockProjectGateway) GetProject(ctx context.Context, projectID, token string) (domain.Project, error) {
	m.calls++
	return m.project, m.err
}

type mockAssemblyGateway struct {
	assemblies []domain.Assembly
	err        error
	calls      int
}

func (m *mockAssemblyGateway) GetAssemblies(ctx context.Context, projectID, token string) ([]domain.Assembly, error) {
	m.calls++
	return m.assemblies, m.err
}

type mockExportCache struct {
	entries map[string]string
	sets    int
}

func newMockExportCache() *mockExportCache {
	return &mockExportCache{entries: map[string]string{}}
}

func (m *mockExportCache) Get(ctx context.Context, key string) (string, error) {
	payload, ok := m.entries[key]
	if !ok {
		return "", domain.NotFoundError{Resource: "cache entry " + key}
	}
	return payload, nil
}

func (m *mockExportCache) Set(ctx context.Context, key, payload string) error {
	m.entries[key] = payload
	m.sets++
	return nil
}

type mockBlobStore struct {
	blobs map[string][]byte
}

func newMockBlobStore() *mockBlobStore {
	return &mockBlobStore{blobs: map[string][]byte{}}
}

func (m *mockBlobStore) Put(ctx context.Context, data []byte) (string, error) {
	path := "blob-" + string(rune('a'+len(m.blobs)))
	for existing, content := range m.blobs {
		if string(content) == string(data) {
			return existing, nil
		}
	}
	m.blobs[path] = data
	return path, nil
}

func (m *mockBlobStore) Get(ctx context.Context, path string) ([]byte, error) {
	data, ok := m.blobs[path]
	if !ok {
		return nil, domain.NotFoundError{Resource: "blob " + path}
	}
	return data, nil
}

type mockSourceRepo struct {
	sources map[string]domain.ProjectSource
}

func newMockSourceRepo() *mockSourceRepo {
	return &mockSourceRepo{sources: map[string]domain.ProjectSource{}}
}

func (m *mockSourceRepo) CreateSource(ctx context.Context, source domain.ProjectSource) error {
	m.sources[source.ID] = source
	return nil
}

func (m *mockSourceRepo) GetSource(ctx context.Context, id string) (domain.ProjectSource, error) {
	source, ok := m.sources[id]
	if !ok {
		return domain.ProjectSource{}, domain.NotFoundError{Resource: "project source " + id}
	}
	return source, nil
}

func (m *mockSourceRepo) ListSources(ctx context.Context, projectID string) ([]domain.ProjectSource, error) {
	var out []domain.ProjectSource
	for _, s := range m.sources {
		if s.ProjectID == projectID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *mockSourceRepo) UpdateSource(ctx context.Context, source domain.ProjectSource) error {
	m.sources[source.ID] = source
	return nil
}

func (m *mockSourceRepo) DeleteSource(ctx context.Context, id string) error {
	delete(m.sources, id)
	return nil
}
