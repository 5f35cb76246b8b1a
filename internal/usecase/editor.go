package usecase

import (
	"context"
	"log/slog"

	"github.com/lcacollect/reporting-backend/internal/domain"
)

// editor runs the copy-on-write cycle shared by all mutation usecases:
// clone the repository head, apply the membership delta and persist the
// new commit together with its entity writes.
type editor struct {
	versioning VersioningRepository
}

func (e editor) commitEdit(ctx context.Context, reportingSchemaID, authorID string, delta domain.Delta, edit Edit) (*domain.Commit, error) {
	repo, err := e.versioning.RepositoryFor(ctx, reportingSchemaID)
	if err != nil {
		return nil, err
	}

	head, err := e.versioning.Head(ctx, repo.ID)
	if err != nil {
		return nil, err
	}

	commit, err := domain.CopyFromParent(&head, authorID)
	if err != nil {
		return nil, err
	}

	if ignored := commit.ApplyDelta(delta); len(ignored) > 0 {
		slog.InfoContext(
			ctx, "Ignored removal of entities absent from head",
			slog.Any("ids", ignored),
			slog.String("repository", repo.ID),
		)
	}

	if err := e.versioning.CommitEdit(ctx, commit, edit); err != nil {
		return nil, err
	}
	return commit, nil
}
