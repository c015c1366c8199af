package model

import "time"

// Follow is a directed edge: UserID follows AuthorID's posts.
type Follow struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	AuthorID  uint64    `gorm:"primaryKey;index:idx_follow_author_id" json:"authorId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Follow) TableName() string {
	return "follows"
}
