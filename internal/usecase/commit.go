package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// CommitUsecase serves the read side of the version history, plus tag
// management.
type CommitUsecase struct {
	versioning VersioningRepository
	tags       TagRepository
}

func NewCommitUsecase(versioning VersioningRepository, tags TagRepository) *CommitUsecase {
	return &CommitUsecase{versioning: versioning, tags: tags}
}

// List returns the commits of a reporting schema, oldest first.
func (uc *CommitUsecase) List(ctx context.Context, reportingSchemaID string) ([]domain.Commit, error) {
	repo, err := uc.versioning.RepositoryFor(ctx, reportingSchemaID)
	if err != nil {
		return nil, err
	}
	return uc.versioning.ListCommits(ctx, repo.ID)
}

// Get fetches one commit with its link sets.
func (uc *CommitUsecase) Get(ctx context.Context, id string) (domain.Commit, error) {
	return uc.versioning.GetCommit(ctx, id)
}

// Head returns the newest commit of a reporting schema.
func (uc *CommitUsecase) Head(ctx context.Context, reportingSchemaID string) (domain.Commit, error) {
	repo, err := uc.versioning.RepositoryFor(ctx, reportingSchemaID)
	if err != nil {
		return domain.Commit{}, err
	}
	return uc.versioning.Head(ctx, repo.ID)
}

// Categories resolves the categories pinned by a commit, with their
// pinned elements attached.
func (uc *CommitUsecase) Categories(ctx context.Context, commitID string) ([]domain.SchemaCategory, error) {
	commit, err := uc.versioning.GetCommit(ctx, commitID)
	if err != nil {
		return nil, err
	}
	return uc.versioning.SnapshotCategories(ctx, commit)
}

// Tasks resolves the tasks pinned by a commit.
func (uc *CommitUsecase) Tasks(ctx context.Context, commitID string) ([]domain.Task, error) {
	commit, err := uc.versioning.GetCommit(ctx, commitID)
	if err != nil {
		return nil, err
	}
	return uc.versioning.SnapshotTasks(ctx, commit)
}

// Tag points a name at a commit.
func (uc *CommitUsecase) Tag(ctx context.Context, commitID, name, authorID string) (domain.Tag, error) {
	if _, err := uc.versioning.GetCommit(ctx, commitID); err != nil {
		return domain.Tag{}, err
	}

	tag := domain.Tag{
		ID:       uuid.NewString(),
		Name:     name,
		CommitID: commitID,
		AuthorID: authorID,
		Added:    time.Now(),
	}
	if err := uc.tags.CreateTag(ctx, tag); err != nil {
		return domain.Tag{}, err
	}
	return tag, nil
}

// Tags lists the tags across a reporting schema's commits.
func (uc *CommitUsecase) Tags(ctx context.Context, reportingSchemaID string) ([]domain.Tag, error) {
	repo, err := uc.versioning.RepositoryFor(ctx, reportingSchemaID)
	if err != nil {
		return nil, err
	}
	return uc.tags.ListTags(ctx, repo.ID)
}

// RetagCommit moves a tag to a different commit, or renames it.
func (uc *CommitUsecase) RetagCommit(ctx context.Context, tagID string, name *string, commitID *string) (domain.Tag, error) {
	tag, err := uc.tags.GetTag(ctx, tagID)
	if err != nil {
		return domain.Tag{}, err
	}

	if name != nil {
		tag.Name = *name
	}
	if commitID != nil {
		if _, err := uc.versioning.GetCommit(ctx, *commitID); err != nil {
			return domain.Tag{}, err
		}
		tag.CommitID = *commitID
	}

	if err := uc.tags.UpdateTag(ctx, tag); err != nil {
		return domain.Tag{}, err
	}
	return tag, nil
}

// DeleteTag removes a tag. The commit it pointed at is untouched.
func (uc *CommitUsecase) DeleteTag(ctx context.Context, id string) error {
	return uc.tags.DeleteTag(ctx, id)
}
