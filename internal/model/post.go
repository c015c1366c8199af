package model

import (
	"time"
)

type Post struct {
	ID       uint64    `gorm:"primaryKey" json:"id"`
	Text     string    `gorm:"type:text;not null" json:"text"`
	PubDate  time.Time `gorm:"not null;index:idx_pub_date" json:"pub_date"`
	AuthorID uint64    `gorm:"not null;index:idx_author_id" json:"author_id"`
	GroupID  *uint64   `gorm:"index:idx_group_id" json:"group_id"`
	Image    string    `gorm:"type:varchar(512)" json:"image"`

	Author   User      `gorm:"foreignKey:AuthorID;references:ID"`
	Group    *Group    `gorm:"foreignKey:GroupID;references:ID"`
	Comments []Comment `gorm:"foreignKey:PostID;references:ID"`
}

func (Post) TableName() string {
	return "posts"
}
