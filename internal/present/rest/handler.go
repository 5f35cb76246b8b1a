package rest

import (
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/export"
	"github.com/lcacollect/reporting-backend/internal/present/rest/presenter"
	"github.com/lcacollect/reporting-backend/internal/usecase"
)

type Handler struct {
	schema   *usecase.SchemaUsecase
	template *usecase.TemplateUsecase
	category *usecase.CategoryUsecase
	element  *usecase.ElementUsecase
	task     *usecase.TaskUsecase
	commit   *usecase.CommitUsecase
	typeCode *usecase.TypeCodeUsecase
	source   *usecase.SourceUsecase
	export   *usecase.ExportUsecase
}

func NewHandler(
	schema *usecase.SchemaUsecase,
	template *usecase.TemplateUsecase,
	category *usecase.CategoryUsecase,
	element *usecase.ElementUsecase,
	task *usecase.TaskUsecase,
	commit *usecase.CommitUsecase,
	typeCode *usecase.TypeCodeUsecase,
	source *usecase.SourceUsecase,
	exportUC *usecase.ExportUsecase,
) *Handler {
	return &Handler{
		schema:   schema,
		template: template,
		category: category,
		element:  element,
		task:     task,
		commit:   commit,
		typeCode: typeCode,
		source:   source,
		export:   exportUC,
	}
}

func (h *Handler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/reporting-schemas", h.handleCreateSchema)
	e.GET("/api/reporting-schemas", h.handleListSchemas)
	e.GET("/api/reporting-schemas/:id", h.handleGetSchema)
	e.PATCH("/api/reporting-schemas/:id", h.handleRenameSchema)
	e.DELETE("/api/reporting-schemas/:id", h.handleDeleteSchema)
	e.GET("/api/reporting-schemas/:id/commits", h.handleListCommits)
	e.GET("/api/reporting-schemas/:id/head", h.handleHead)
	e.GET("/api/reporting-schemas/:id/tags", h.handleListTags)

	e.POST("/api/schema-templates", h.handleCreateTemplate)
	e.GET("/api/schema-templates", h.handleListTemplates)
	e.GET("/api/schema-templates/:id", h.handleGetTemplate)
	e.PATCH("/api/schema-templates/:id", h.handleUpdateTemplate)
	e.DELETE("/api/schema-templates/:id", h.handleDeleteTemplate)

	e.POST("/api/schema-categories", h.handleAddCategory)
	e.GET("/api/schema-categories/:id", h.handleGetCategory)
	e.PATCH("/api/schema-categories/:id", h.handleUpdateCategory)
	e.DELETE("/api/schema-categories/:id", h.handleDeleteCategory)

	e.POST("/api/schema-elements", h.handleAddElement)
	e.GET("/api/schema-elements/:id", h.handleGetElement)
	e.PATCH("/api/schema-elements/:id", h.handleUpdateElement)
	e.DELETE("/api/schema-elements/:id", h.handleDeleteElement)

	e.POST("/api/tasks", h.handleAddTask)
	e.GET("/api/tasks/:id", h.handleGetTask)
	e.PATCH("/api/tasks/:id", h.handleUpdateTask)
	e.DELETE("/api/tasks/:id", h.handleDeleteTask)
	e.POST("/api/tasks/:id/comments", h.handleAddComment)
	e.PATCH("/api/comments/:id", h.handleUpdateComment)
	e.DELETE("/api/comments/:id", h.handleDeleteComment)

	e.GET("/api/commits/:id", h.handleGetCommit)
	e.GET("/api/commits/:id/categories", h.handleCommitCategories)
	e.GET("/api/commits/:id/tasks", h.handleCommitTasks)
	e.GET("/api/commits/:id/export", h.handleExport)
	e.POST("/api/commits/:id/tags", h.handleTagCommit)
	e.PATCH("/api/tags/:id", h.handleRetag)
	e.DELETE("/api/tags/:id", h.handleDeleteTag)

	e.GET("/api/type-codes", h.handleListTypeCodes)
	e.GET("/api/type-code-elements", h.handleListTypeCodeElements)
	e.POST("/api/type-code-elements", h.handleCreateTypeCodeElement)
	e.POST("/api/type-code-elements/import", h.handleImportTypeCodeElements)
	e.PATCH("/api/type-code-elements/:id", h.handleUpdateTypeCodeElement)
	e.DELETE("/api/type-code-elements/:id", h.handleDeleteTypeCodeElement)

	e.POST("/api/sources", h.handleAddSource)
	e.GET("/api/sources", h.handleListSources)
	e.GET("/api/sources/:id/data", h.handleSourceData)
	e.PATCH("/api/sources/:id", h.handleUpdateSource)
	e.DELETE("/api/sources/:id", h.handleDeleteSource)
}

// present maps domain errors onto response codes.
func present(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return presenter.NotFound(c, err.Error())
	case errors.Is(err, domain.ErrValidation):
		return presenter.BadRequest(c, err)
	case errors.Is(err, domain.ErrMicroservice):
		return presenter.BadGateway(c, err)
	}
	return presenter.InternalError(c, err)
}

func requesterID(c echo.Context) string {
	id, _ := c.Request().Context().Value(domain.RequesterIDCtxKey).(string)
	return id
}

func requesterToken(c echo.Context) string {
	token, _ := c.Request().Context().Value(domain.TokenCtxKey).(string)
	return token
}

func (h *Handler) handleCreateSchema(c echo.Context) error {
	ctx := c.Request().Context()

	var req struct {
		TemplateID string `json:"templateId"`
		ProjectID  string `json:"projectId"`
		Name       string `json:"name"`
		// Empty stamps the template's categories; true creates a bare
		// schema with no categories.
		Empty bool `json:"empty"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.TemplateID == "" || req.ProjectID == "" {
		return presenter.BadRequestMessage(c, "templateId and projectId are required")
	}

	var schema domain.ReportingSchema
	var err error
	if req.Empty {
		schema, err = h.schema.Create(ctx, req.TemplateID, req.ProjectID, req.Name, requesterID(c))
	} else {
		schema, err = h.schema.CreateFromTemplate(ctx, req.TemplateID, req.ProjectID, req.Name, requesterID(c))
	}
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, schema)
}

func (h *Handler) handleListSchemas(c echo.Context) error {
	ctx := c.Request().Context()

	projectID := c.QueryParam("projectId")
	if projectID == "" {
		return presenter.BadRequestMessage(c, "projectId parameter is required")
	}

	schemas, err := h.schema.List(ctx, projectID)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, schemas)
}

func (h *Handler) handleGetSchema(c echo.Context) error {
	schema, err := h.schema.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, schema)
}

func (h *Handler) handleRenameSchema(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	schema, err := h.schema.Rename(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, schema)
}

func (h *Handler) handleDeleteSchema(c echo.Context) error {
	if err := h.schema.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

type typeCodeRef struct {
	ID         string `json:"id"`
	ParentPath string `json:"parentPath"`
}

func toTypeCodeRefs(refs []typeCodeRef) []usecase.TypeCodeRef {
	out := make([]usecase.TypeCodeRef, 0, len(refs))
	for _, ref := range refs {
		out = append(out, usecase.TypeCodeRef{ID: ref.ID, ParentPath: ref.ParentPath})
	}
	return out
}

func (h *Handler) handleCreateTemplate(c echo.Context) error {
	var req struct {
		Name      string        `json:"name"`
		Domain    *string       `json:"domain"`
		TypeCodes []typeCodeRef `json:"typeCodes"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.Name == "" {
		return presenter.BadRequestMessage(c, "name is required")
	}

	template, err := h.template.Create(c.Request().Context(), req.Name, req.Domain, toTypeCodeRefs(req.TypeCodes))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, template)
}

func (h *Handler) handleListTemplates(c echo.Context) error {
	templates, err := h.template.List(c.Request().Context())
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, templates)
}

func (h *Handler) handleGetTemplate(c echo.Context) error {
	template, err := h.template.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, template)
}

func (h *Handler) handleUpdateTemplate(c echo.Context) error {
	var req struct {
		Name      string        `json:"name"`
		Domain    *string       `json:"domain"`
		TypeCodes []typeCodeRef `json:"typeCodes"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	template, err := h.template.Update(c.Request().Context(), c.Param("id"), req.Name, req.Domain, toTypeCodeRefs(req.TypeCodes))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, template)
}

func (h *Handler) handleDeleteTemplate(c echo.Context) error {
	if err := h.template.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleAddCategory(c echo.Context) error {
	var req struct {
		ReportingSchemaID string  `json:"reportingSchemaId"`
		Name              string  `json:"name"`
		Path              string  `json:"path"`
		Description       string  `json:"description"`
		TypeCodeElementID *string `json:"typeCodeElementId"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.ReportingSchemaID == "" {
		return presenter.BadRequestMessage(c, "reportingSchemaId is required")
	}

	category, err := h.category.Add(c.Request().Context(), usecase.CategoryInput{
		ReportingSchemaID: req.ReportingSchemaID,
		Name:              req.Name,
		Path:              req.Path,
		Description:       req.Description,
		TypeCodeElementID: req.TypeCodeElementID,
	}, requesterID(c))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, category)
}

func (h *Handler) handleGetCategory(c echo.Context) error {
	category, err := h.category.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, category)
}

func (h *Handler) handleUpdateCategory(c echo.Context) error {
	var req struct {
		Name        *string `json:"name"`
		Path        *string `json:"path"`
		Description *string `json:"description"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	category, err := h.category.Update(c.Request().Context(), c.Param("id"), usecase.CategoryUpdate{
		Name:        req.Name,
		Path:        req.Path,
		Description: req.Description,
	}, requesterID(c))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, category)
}

func (h *Handler) handleDeleteCategory(c echo.Context) error {
	if err := h.category.Delete(c.Request().Context(), c.Param("id"), requesterID(c)); err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleAddElement(c echo.Context) error {
	var req struct {
		CategoryID  string  `json:"categoryId"`
		Name        string  `json:"name"`
		Quantity    float64 `json:"quantity"`
		Unit        string  `json:"unit"`
		Description string  `json:"description"`
		AssemblyID  *string `json:"assemblyId"`
		SourceID    *string `json:"sourceId"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.CategoryID == "" {
		return presenter.BadRequestMessage(c, "categoryId is required")
	}

	element, err := h.element.Add(c.Request().Context(), usecase.ElementInput{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Description: req.Description,
		AssemblyID:  req.AssemblyID,
		SourceID:    req.SourceID,
	}, requesterID(c))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, element)
}

func (h *Handler) handleGetElement(c echo.Context) error {
	element, err := h.element.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, element)
}

func (h *Handler) handleUpdateElement(c echo.Context) error {
	var req struct {
		Name        *string        `json:"name"`
		Quantity    *float64       `json:"quantity"`
		Unit        *string        `json:"unit"`
		Description *string        `json:"description"`
		AssemblyID  *string        `json:"assemblyId"`
		Result      map[string]any `json:"result"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	element, err := h.element.Update(c.Request().Context(), c.Param("id"), usecase.ElementUpdate{
		Name:        req.Name,
		Quantity:    req.Quantity,
		Unit:        req.Unit,
		Description: req.Description,
		AssemblyID:  req.AssemblyID,
		Result:      req.Result,
	}, requesterID(c))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, element)
}

func (h *Handler) handleDeleteElement(c echo.Context) error {
	if err := h.element.Delete(c.Request().Context(), c.Param("id"), requesterID(c)); err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleAddTask(c echo.Context) error {
	var req struct {
		ReportingSchemaID string     `json:"reportingSchemaId"`
		Name              string     `json:"name"`
		Description       string     `json:"description"`
		Status            string     `json:"status"`
		DueDate           *time.Time `json:"dueDate"`
		CategoryID        *string    `json:"categoryId"`
		ElementID         *string    `json:"elementId"`
		AssigneeID        *string    `json:"assigneeId"`
		AssignedGroupID   *string    `json:"assignedGroupId"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.ReportingSchemaID == "" {
		return presenter.BadRequestMessage(c, "reportingSchemaId is required")
	}

	task, err := h.task.Add(c.Request().Context(), usecase.TaskInput{
		ReportingSchemaID: req.ReportingSchemaID,
		Name:              req.Name,
		Description:       req.Description,
		Status:            req.Status,
		DueDate:           req.DueDate,
		CategoryID:        req.CategoryID,
		ElementID:         req.ElementID,
		AssigneeID:        req.AssigneeID,
		AssignedGroupID:   req.AssignedGroupID,
	}, requesterID(c))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, task)
}

func (h *Handler) handleGetTask(c echo.Context) error {
	task, err := h.task.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, task)
}

func (h *Handler) handleUpdateTask(c echo.Context) error {
	var req struct {
		Name            *string    `json:"name"`
		Description     *string    `json:"description"`
		Status          *string    `json:"status"`
		DueDate         *time.Time `json:"dueDate"`
		AssigneeID      *string    `json:"assigneeId"`
		AssignedGroupID *string    `json:"assignedGroupId"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	task, err := h.task.Update(c.Request().Context(), c.Param("id"), usecase.TaskUpdate{
		Name:            req.Name,
		Description:     req.Description,
		Status:          req.Status,
		DueDate:         req.DueDate,
		AssigneeID:      req.AssigneeID,
		AssignedGroupID: req.AssignedGroupID,
	}, requesterID(c))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, task)
}

func (h *Handler) handleDeleteTask(c echo.Context) error {
	if err := h.task.Delete(c.Request().Context(), c.Param("id"), requesterID(c)); err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleAddComment(c echo.Context) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	comment, err := h.task.AddComment(c.Request().Context(), c.Param("id"), req.Text, requesterID(c))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, comment)
}

func (h *Handler) handleUpdateComment(c echo.Context) error {
	var req struct {
		Text string `json:"text"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	comment := domain.Comment{ID: c.Param("id"), Text: req.Text}
	if err := h.task.UpdateComment(c.Request().Context(), comment); err != nil {
		return present(c, err)
	}
	return presenter.OK(c, comment)
}

func (h *Handler) handleDeleteComment(c echo.Context) error {
	if err := h.task.DeleteComment(c.Request().Context(), c.Param("id")); err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleListCommits(c echo.Context) error {
	commits, err := h.commit.List(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, commits)
}

func (h *Handler) handleHead(c echo.Context) error {
	head, err := h.commit.Head(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, head)
}

func (h *Handler) handleGetCommit(c echo.Context) error {
	commit, err := h.commit.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, commit)
}

func (h *Handler) handleCommitCategories(c echo.Context) error {
	categories, err := h.commit.Categories(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, categories)
}

func (h *Handler) handleCommitTasks(c echo.Context) error {
	tasks, err := h.commit.Tasks(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, tasks)
}

func (h *Handler) handleExport(c echo.Context) error {
	format, err := export.ParseFormat(c.QueryParam("format"))
	if err != nil {
		return presenter.BadRequest(c, err)
	}

	payload, err := h.export.Export(c.Request().Context(), c.Param("id"), format, requesterToken(c))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"format": string(format), "data": payload})
}

func (h *Handler) handleTagCommit(c echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.Name == "" {
		return presenter.BadRequestMessage(c, "name is required")
	}

	tag, err := h.commit.Tag(c.Request().Context(), c.Param("id"), req.Name, requesterID(c))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, tag)
}

func (h *Handler) handleListTags(c echo.Context) error {
	tags, err := h.commit.Tags(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, tags)
}

func (h *Handler) handleRetag(c echo.Context) error {
	var req struct {
		Name     *string `json:"name"`
		CommitID *string `json:"commitId"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	tag, err := h.commit.RetagCommit(c.Request().Context(), c.Param("id"), req.Name, req.CommitID)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, tag)
}

func (h *Handler) handleDeleteTag(c echo.Context) error {
	if err := h.commit.DeleteTag(c.Request().Context(), c.Param("id")); err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleListTypeCodes(c echo.Context) error {
	var projectID *string
	if param := c.QueryParam("projectId"); param != "" {
		projectID = &param
	}

	typeCodes, err := h.typeCode.ListTypeCodes(c.Request().Context(), projectID)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, typeCodes)
}

func (h *Handler) handleListTypeCodeElements(c echo.Context) error {
	elements, err := h.typeCode.ListElements(c.Request().Context())
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, elements)
}

func (h *Handler) handleCreateTypeCodeElement(c echo.Context) error {
	var req struct {
		Code       string `json:"code"`
		Name       string `json:"name"`
		Level      int    `json:"level"`
		ParentPath string `json:"parentPath"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.Code == "" {
		return presenter.BadRequestMessage(c, "code is required")
	}

	element, err := h.typeCode.CreateElement(c.Request().Context(), req.Code, req.Name, req.Level, req.ParentPath)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, element)
}

func (h *Handler) handleImportTypeCodeElements(c echo.Context) error {
	var req struct {
		File string `json:"file"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.File == "" {
		return presenter.BadRequestMessage(c, "file is required")
	}

	elements, err := h.typeCode.ImportElements(c.Request().Context(), req.File)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, elements)
}

func (h *Handler) handleUpdateTypeCodeElement(c echo.Context) error {
	var req struct {
		Code  string `json:"code"`
		Name  string `json:"name"`
		Level *int   `json:"level"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	element, err := h.typeCode.UpdateElement(c.Request().Context(), c.Param("id"), req.Code, req.Name, req.Level)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, element)
}

func (h *Handler) handleDeleteTypeCodeElement(c echo.Context) error {
	if err := h.typeCode.DeleteElement(c.Request().Context(), c.Param("id")); err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}

func (h *Handler) handleAddSource(c echo.Context) error {
	var req struct {
		ProjectID string  `json:"projectId"`
		Type      string  `json:"type"`
		Name      string  `json:"name"`
		DataID    string  `json:"dataId"`
		File      *string `json:"file"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}
	if req.ProjectID == "" {
		return presenter.BadRequestMessage(c, "projectId is required")
	}

	source, err := h.source.Add(c.Request().Context(), usecase.SourceInput{
		ProjectID: req.ProjectID,
		Type:      domain.ProjectSourceType(req.Type),
		Name:      req.Name,
		DataID:    req.DataID,
		File:      req.File,
	}, requesterID(c))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, source)
}

func (h *Handler) handleListSources(c echo.Context) error {
	projectID := c.QueryParam("projectId")
	if projectID == "" {
		return presenter.BadRequestMessage(c, "projectId parameter is required")
	}

	sources, err := h.source.List(c.Request().Context(), projectID)
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, sources)
}

func (h *Handler) handleSourceData(c echo.Context) error {
	data, err := h.source.Data(c.Request().Context(), c.Param("id"))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, data)
}

func (h *Handler) handleUpdateSource(c echo.Context) error {
	var req struct {
		Type           *string        `json:"type"`
		Name           *string        `json:"name"`
		DataID         *string        `json:"dataId"`
		File           *string        `json:"file"`
		MetaFields     map[string]any `json:"metaFields"`
		Interpretation map[string]any `json:"interpretation"`
	}
	if err := c.Bind(&req); err != nil {
		return presenter.BadRequest(c, err)
	}

	var sourceType *domain.ProjectSourceType
	if req.Type != nil {
		st := domain.ProjectSourceType(*req.Type)
		sourceType = &st
	}

	source, err := h.source.Update(c.Request().Context(), c.Param("id"), usecase.SourceUpdate{
		Type:           sourceType,
		Name:           req.Name,
		DataID:         req.DataID,
		File:           req.File,
		MetaFields:     req.MetaFields,
		Interpretation: req.Interpretation,
	}, requesterID(c))
	if err != nil {
		return present(c, err)
	}
	return presenter.OK(c, source)
}

func (h *Handler) handleDeleteSource(c echo.Context) error {
	if err := h.source.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return present(c, err)
	}
	return presenter.OK(c, echo.Map{"status": "ok"})
}
