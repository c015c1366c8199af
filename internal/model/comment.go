package model

import (
	"time"
)

type Comment struct {
	ID       uint64    `gorm:"primaryKey" json:"id"`
	PostID   uint64    `gorm:"not null;index:idx_post_id" json:"post_id"`
	AuthorID uint64    `gorm:"not null" json:"author_id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	Created  time.Time `gorm:"not null" json:"created"`

	Author User `gorm:"foreignKey:AuthorID;references:ID"`
}

func (Comment) TableName() string {
	return "comments"
}
