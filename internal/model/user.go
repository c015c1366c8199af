package model

import (
	"time"
)

type User struct {
	ID        uint64 `gorm:"primaryKey" json:"id"`
	Username  string `gorm:"type:varchar(50);not null;uniqueIndex:idx_username" json:"username"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt time.Time

	Posts []Post `gorm:"foreignKey:AuthorID;references:ID"`
}

func (User) TableName() string {
	return "users"
}
