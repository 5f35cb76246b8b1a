package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Repository owns the append-only commit chain of one reporting schema.
type Repository struct {
	ID                string `json:"id"`
	ReportingSchemaID string `json:"reportingSchemaId"`
}

// Commit is an immutable snapshot of which categories, elements and
// tasks are live in a repository at a point in time. Link sets hold
// entity ids; membership is shared between commits, not exclusive.
type Commit struct {
	ID           string    `json:"id"`
	ShortID      string    `json:"shortId"`
	ParentID     *string   `json:"parentId,omitempty"`
	RepositoryID string    `json:"repositoryId"`
	AuthorID     string    `json:"authorId"`
	Added        time.Time `json:"added"`
	// Seq is a monotonic sequence assigned on persist; the repository
	// head is the commit with the highest Seq.
	Seq int64 `json:"seq"`

	CategoryIDs []string `json:"categoryIds"`
	ElementIDs  []string `json:"elementIds"`
	TaskIDs     []string `json:"taskIds"`

	Tags []Tag `json:"tags,omitempty"`
}

// Delta is the add/remove edit applied to a freshly cloned commit.
type Delta struct {
	AddCategories    []string
	RemoveCategories []string
	AddElements      []string
	RemoveElements   []string
	AddTasks         []string
	RemoveTasks      []string
}

// CopyFromParent clones the parent commit's link sets into a new commit
// with a fresh identity and the parent as ParentID. The entity
// references are shared, not deep-copied.
func CopyFromParent(parent *Commit, authorID string) (*Commit, error) {
	if parent == nil {
		return nil, errors.New("cannot copy commit from nil parent")
	}
	id := uuid.NewString()
	return &Commit{
		ID:           id,
		ShortID:      id[:8],
		ParentID:     &parent.ID,
		RepositoryID: parent.RepositoryID,
		AuthorID:     authorID,
		Added:        time.Now(),
		CategoryIDs:  append([]string(nil), parent.CategoryIDs...),
		ElementIDs:   append([]string(nil), parent.ElementIDs...),
		TaskIDs:      append([]string(nil), parent.TaskIDs...),
	}, nil
}

// ApplyDelta mutates the commit's in-memory link sets. It must only be
// called on a commit that has not been persisted yet. Removing an id
// that is not in a set is tolerated as a no-op, accommodating a
// concurrent edit that already removed the item; the ignored ids are
// returned so the caller can log them.
func (c *Commit) ApplyDelta(delta Delta) (ignored []string) {
	var miss []string
	c.CategoryIDs, miss = apply(c.CategoryIDs, delta.AddCategories, delta.RemoveCategories)
	ignored = append(ignored, miss...)
	c.ElementIDs, miss = apply(c.ElementIDs, delta.AddElements, delta.RemoveElements)
	ignored = append(ignored, miss...)
	c.TaskIDs, miss = apply(c.TaskIDs, delta.AddTasks, delta.RemoveTasks)
	ignored = append(ignored, miss...)
	return ignored
}

// Contains reports membership of id in the given link set.
func Contains(set []string, id string) bool {
	for _, s := range set {
		if s == id {
			return true
		}
	}
	return false
}

func apply(set, add, remove []string) (out []string, ignored []string) {
	removed := make(map[string]struct{}, len(remove))
	for _, id := range remove {
		removed[id] = struct{}{}
	}
	out = make([]string, 0, len(set)+len(add))
	for _, id := range set {
		if _, ok := removed[id]; ok {
			delete(removed, id)
			continue
		}
		out = append(out, id)
	}
	for id := range removed {
		ignored = append(ignored, id)
	}
	for _, id := range add {
		if !Contains(out, id) {
			out = append(out, id)
		}
	}
	return out, ignored
}
