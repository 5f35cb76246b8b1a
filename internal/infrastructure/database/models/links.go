package models

// Commit membership rows. A commit snapshot is the set of link rows
// pointing at it, so all three tables cascade with their commit.

type CommitCategory struct {
	CommitID   string `json:"commitId" gorm:"primaryKey;type:text"`
	CategoryID string `json:"categoryId" gorm:"primaryKey;type:text"`
	Position   int    `json:"position"`

	Commit Commit `json:"-" gorm:"foreignKey:CommitID;constraint:OnDelete:CASCADE;"`
}

type CommitElement struct {
	CommitID  string `json:"commitId" gorm:"primaryKey;type:text"`
	ElementID string `json:"elementId" gorm:"primaryKey;type:text"`
	Position  int    `json:"position"`

	Commit Commit `json:"-" gorm:"foreignKey:CommitID;constraint:OnDelete:CASCADE;"`
}

type CommitTask struct {
	CommitID string `json:"commitId" gorm:"primaryKey;type:text"`
	TaskID   string `json:"taskId" gorm:"primaryKey;type:text"`
	Position int    `json:"position"`

	Commit Commit `json:"-" gorm:"foreignKey:CommitID;constraint:OnDelete:CASCADE;"`
}
