package repository

import (
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/lcacollect/reporting-backend/internal/domain"
	"github.com/lcacollect/reporting-backend/internal/infrastructure/database/models"
	"github.com/lcacollect/reporting-backend/internal/usecase"
)

// translateNotFound maps gorm's record-not-found onto the domain error
// the usecase layer matches on.
func translateNotFound(err error, resource string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFoundError{Resource: resource}
	}
	return err
}

type VersioningRepository struct {
	db *gorm.DB
}

func NewVersioningRepository(db *gorm.DB) *VersioningRepository {
	return &VersioningRepository{db: db}
}

func (r *VersioningRepository) CreateRepository(ctx context.Context, repo domain.Repository, initial *domain.Commit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		modelRepo := models.Repository{
			ID:                repo.ID,
			ReportingSchemaID: repo.ReportingSchemaID,
		}
		if err := tx.Create(&modelRepo).Error; err != nil {
			return err
		}
		if initial == nil {
			return nil
		}
		return createCommit(tx, initial)
	})
}

func (r *VersioningRepository) RepositoryFor(ctx context.Context, reportingSchemaID string) (domain.Repository, error) {
	var row models.Repository
	err := r.db.WithContext(ctx).First(&row, "reporting_schema_id = ?", reportingSchemaID).Error
	if err != nil {
		return domain.Repository{}, translateNotFound(err, "repository for schema "+reportingSchemaID)
	}
	return domain.Repository{ID: row.ID, ReportingSchemaID: row.ReportingSchemaID}, nil
}

func (r *VersioningRepository) GetRepository(ctx context.Context, id string) (domain.Repository, error) {
	var row models.Repository
	err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if err != nil {
		return domain.Repository{}, translateNotFound(err, "repository "+id)
	}
	return domain.Repository{ID: row.ID, ReportingSchemaID: row.ReportingSchemaID}, nil
}

func (r *VersioningRepository) Head(ctx context.Context, repositoryID string) (domain.Commit, error) {
	var row models.Commit
	err := r.db.WithContext(ctx).
		Where("repository_id = ?", repositoryID).
		Order("seq DESC").
		Preload("Tags").
		Take(&row).Error
	if err != nil {
		return domain.Commit{}, translateNotFound(err, "head of repository "+repositoryID)
	}
	return r.hydrateCommit(ctx, row)
}

func (r *VersioningRepository) GetCommit(ctx context.Context, commitID string) (domain.Commit, error) {
	var row models.Commit
	err := r.db.WithContext(ctx).Preload("Tags").First(&row, "id = ?", commitID).Error
	if err != nil {
		return domain.Commit{}, translateNotFound(err, "commit "+commitID)
	}
	return r.hydrateCommit(ctx, row)
}

func (r *VersioningRepository) ListCommits(ctx context.Context, repositoryID string) ([]domain.Commit, error) {
	var rows []models.Commit
	err := r.db.WithContext(ctx).
		Where("repository_id = ?", repositoryID).
		Order("seq ASC").
		Preload("Tags").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	commits := make([]domain.Commit, 0, len(rows))
	for _, row := range rows {
		commit, err := r.hydrateCommit(ctx, row)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}
	return commits, nil
}

func (r *VersioningRepository) CommitEdit(ctx context.Context, commit *domain.Commit, edit usecase.Edit) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := createCommit(tx, commit); err != nil {
			return err
		}

		for _, category := range edit.CreateCategories {
			row := toModelCategory(category)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, category := range edit.UpdateCategories {
			row := toModelCategory(category)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"path", "name", "description", "type_code_element_id"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		if len(edit.DeleteCategoryIDs) > 0 {
			if err := tx.Delete(&models.SchemaCategory{}, "id IN ?", edit.DeleteCategoryIDs).Error; err != nil {
				return err
			}
		}

		for _, element := range edit.CreateElements {
			row, err := toModelElement(element)
			if err != nil {
				return err
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, element := range edit.UpdateElements {
			row, err := toModelElement(element)
			if err != nil {
				return err
			}
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "quantity", "unit", "description", "schema_category_id", "assembly_id", "source_id", "result"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		if len(edit.DeleteElementIDs) > 0 {
			if err := tx.Delete(&models.SchemaElement{}, "id IN ?", edit.DeleteElementIDs).Error; err != nil {
				return err
			}
		}

		for _, task := range edit.CreateTasks {
			row := toModelTask(task)
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		for _, task := range edit.UpdateTasks {
			row := toModelTask(task)
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "description", "status", "due_date", "category_id", "element_id", "assignee_id", "assigned_group_id"}),
			}).Create(&row).Error; err != nil {
				return err
			}
		}
		if len(edit.DeleteTaskIDs) > 0 {
			if err := tx.Delete(&models.Task{}, "id IN ?", edit.DeleteTaskIDs).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *VersioningRepository) SnapshotCategories(ctx context.Context, commit domain.Commit) ([]domain.SchemaCategory, error) {
	if len(commit.CategoryIDs) == 0 {
		return nil, nil
	}

	var categoryRows []models.SchemaCategory
	err := r.db.WithContext(ctx).
		Preload("TypeCodeElement").
		Find(&categoryRows, "id IN ?", commit.CategoryIDs).Error
	if err != nil {
		return nil, err
	}

	elementsByCategory := map[string][]domain.SchemaElement{}
	if len(commit.ElementIDs) > 0 {
		var elementRows []models.SchemaElement
		err = r.db.WithContext(ctx).
			Preload("Source").
			Find(&elementRows, "id IN ?", commit.ElementIDs).Error
		if err != nil {
			return nil, err
		}
		ordered := map[string]models.SchemaElement{}
		for _, row := range elementRows {
			ordered[row.ID] = row
		}
		for _, id := range commit.ElementIDs {
			row, ok := ordered[id]
			if !ok {
				continue
			}
			element, err := fromModelElement(row)
			if err != nil {
				return nil, err
			}
			elementsByCategory[element.SchemaCategoryID] = append(elementsByCategory[element.SchemaCategoryID], element)
		}
	}

	byID := map[string]models.SchemaCategory{}
	for _, row := range categoryRows {
		byID[row.ID] = row
	}

	// Preserve the commit's link order.
	categories := make([]domain.SchemaCategory, 0, len(commit.CategoryIDs))
	for _, id := range commit.CategoryIDs {
		row, ok := byID[id]
		if !ok {
			continue
		}
		category := fromModelCategory(row)
		category.Elements = elementsByCategory[category.ID]
		categories = append(categories, category)
	}
	return categories, nil
}

func (r *VersioningRepository) SnapshotTasks(ctx context.Context, commit domain.Commit) ([]domain.Task, error) {
	if len(commit.TaskIDs) == 0 {
		return nil, nil
	}

	var rows []models.Task
	err := r.db.WithContext(ctx).
		Preload("Comments").
		Find(&rows, "id IN ?", commit.TaskIDs).Error
	if err != nil {
		return nil, err
	}

	byID := map[string]models.Task{}
	for _, row := range rows {
		byID[row.ID] = row
	}
	tasks := make([]domain.Task, 0, len(commit.TaskIDs))
	for _, id := range commit.TaskIDs {
		row, ok := byID[id]
		if !ok {
			continue
		}
		tasks = append(tasks, fromModelTask(row))
	}
	return tasks, nil
}

// createCommit writes the commit row and its link rows, then copies the
// database-assigned sequence back onto the domain commit.
func createCommit(tx *gorm.DB, commit *domain.Commit) error {
	row := models.Commit{
		ID:           commit.ID,
		ShortID:      commit.ShortID,
		ParentID:     commit.ParentID,
		RepositoryID: commit.RepositoryID,
		AuthorID:     commit.AuthorID,
		Added:        commit.Added,
	}
	if err := tx.Create(&row).Error; err != nil {
		return err
	}
	commit.Seq = row.Seq

	for i, id := range commit.CategoryIDs {
		link := models.CommitCategory{CommitID: commit.ID, CategoryID: id, Position: i}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}
	for i, id := range commit.ElementIDs {
		link := models.CommitElement{CommitID: commit.ID, ElementID: id, Position: i}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}
	for i, id := range commit.TaskIDs {
		link := models.CommitTask{CommitID: commit.ID, TaskID: id, Position: i}
		if err := tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *VersioningRepository) hydrateCommit(ctx context.Context, row models.Commit) (domain.Commit, error) {
	commit := domain.Commit{
		ID:           row.ID,
		ShortID:      row.ShortID,
		ParentID:     row.ParentID,
		RepositoryID: row.RepositoryID,
		AuthorID:     row.AuthorID,
		Added:        row.Added,
		Seq:          row.Seq,
	}
	for _, tag := range row.Tags {
		commit.Tags = append(commit.Tags, fromModelTag(tag))
	}

	var categoryLinks []models.CommitCategory
	err := r.db.WithContext(ctx).Order("position ASC").Find(&categoryLinks, "commit_id = ?", row.ID).Error
	if err != nil {
		return domain.Commit{}, err
	}
	for _, link := range categoryLinks {
		commit.CategoryIDs = append(commit.CategoryIDs, link.CategoryID)
	}

	var elementLinks []models.CommitElement
	err = r.db.WithContext(ctx).Order("position ASC").Find(&elementLinks, "commit_id = ?", row.ID).Error
	if err != nil {
		return domain.Commit{}, err
	}
	for _, link := range elementLinks {
		commit.ElementIDs = append(commit.ElementIDs, link.ElementID)
	}

	var taskLinks []models.CommitTask
	err = r.db.WithContext(ctx).Order("position ASC").Find(&taskLinks, "commit_id = ?", row.ID).Error
	if err != nil {
		return domain.Commit{}, err
	}
	for _, link := range taskLinks {
		commit.TaskIDs = append(commit.TaskIDs, link.TaskID)
	}

	return commit, nil
}
