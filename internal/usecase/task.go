package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// TaskInput is the validated input for creating a task.
type TaskInput struct {
	ReportingSchemaID string
	Name              string
	Description       string
	Status            string
	DueDate           *time.Time
	CategoryID        *string
	ElementID         *string
	AssigneeID        *string
	AssignedGroupID   *string
}

// TaskUpdate carries the mutable fields of a task; nil fields are left
// untouched.
type TaskUpdate struct {
	Name            *string
	Description     *string
	Status          *string
	DueDate         *time.Time
	AssigneeID      *string
	AssignedGroupID *string
}

type TaskUsecase struct {
	schemas SchemaRepository
	editor
}

func NewTaskUsecase(schemas SchemaRepository, versioning VersioningRepository) *TaskUsecase {
	return &TaskUsecase{schemas: schemas, editor: editor{versioning: versioning}}
}

// Add creates a task and links it into a new head commit.
func (uc *TaskUsecase) Add(ctx context.Context, input TaskInput, authorID string) (domain.Task, error) {
	if _, err := uc.schemas.GetSchema(ctx, input.ReportingSchemaID); err != nil {
		return domain.Task{}, err
	}

	task := domain.Task{
		ID:                uuid.NewString(),
		Name:              input.Name,
		Description:       input.Description,
		Status:            input.Status,
		DueDate:           input.DueDate,
		ReportingSchemaID: input.ReportingSchemaID,
		CategoryID:        input.CategoryID,
		ElementID:         input.ElementID,
		AuthorID:          authorID,
		AssigneeID:        input.AssigneeID,
		AssignedGroupID:   input.AssignedGroupID,
	}

	_, err := uc.commitEdit(ctx, input.ReportingSchemaID, authorID,
		domain.Delta{AddTasks: []string{task.ID}},
		Edit{CreateTasks: []domain.Task{task}},
	)
	if err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Update rewrites a task's fields under a new head commit.
func (uc *TaskUsecase) Update(ctx context.Context, id string, update TaskUpdate, authorID string) (domain.Task, error) {
	task, err := uc.schemas.GetTask(ctx, id)
	if err != nil {
		return domain.Task{}, err
	}

	if update.Name != nil {
		task.Name = *update.Name
	}
	if update.Description != nil {
		task.Description = *update.Description
	}
	if update.Status != nil {
		task.Status = *update.Status
	}
	if update.DueDate != nil {
		task.DueDate = update.DueDate
	}
	if update.AssigneeID != nil {
		task.AssigneeID = update.AssigneeID
	}
	if update.AssignedGroupID != nil {
		task.AssignedGroupID = update.AssignedGroupID
	}

	_, err = uc.commitEdit(ctx, task.ReportingSchemaID, authorID,
		domain.Delta{},
		Edit{UpdateTasks: []domain.Task{task}},
	)
	if err != nil {
		return domain.Task{}, err
	}
	return task, nil
}

// Delete unlinks and destroys a task.
func (uc *TaskUsecase) Delete(ctx context.Context, id string, authorID string) error {
	task, err := uc.schemas.GetTask(ctx, id)
	if err != nil {
		return err
	}

	_, err = uc.commitEdit(ctx, task.ReportingSchemaID, authorID,
		domain.Delta{RemoveTasks: []string{id}},
		Edit{DeleteTaskIDs: []string{id}},
	)
	return err
}

// Get fetches one task with its comments.
func (uc *TaskUsecase) Get(ctx context.Context, id string) (domain.Task, error) {
	return uc.schemas.GetTask(ctx, id)
}

// AddComment attaches a comment to a task. Comments are plain rows, not
// versioned through commits.
func (uc *TaskUsecase) AddComment(ctx context.Context, taskID, text, authorID string) (domain.Comment, error) {
	if _, err := uc.schemas.GetTask(ctx, taskID); err != nil {
		return domain.Comment{}, err
	}

	comment := domain.Comment{
		ID:       uuid.NewString(),
		Text:     text,
		TaskID:   taskID,
		AuthorID: authorID,
		Added:    time.Now(),
	}
	if err := uc.schemas.CreateComment(ctx, comment); err != nil {
		return domain.Comment{}, err
	}
	return comment, nil
}

// UpdateComment rewrites a comment's text.
func (uc *TaskUsecase) UpdateComment(ctx context.Context, comment domain.Comment) error {
	return uc.schemas.UpdateComment(ctx, comment)
}

// DeleteComment removes a comment.
func (uc *TaskUsecase) DeleteComment(ctx context.Context, id string) error {
	return uc.schemas.DeleteComment(ctx, id)
}
