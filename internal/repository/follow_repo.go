package repository

import (
	"context"
	"yatube/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowRepo interface {
	// CreateFollow inserts the edge, ignoring duplicates: the unique
	// (user_id, author_id) pair makes concurrent identical requests safe.
	CreateFollow(ctx context.Context, follow *model.Follow) error
	DeleteFollow(ctx context.Context, userID, authorID uint64) error
	ExistsFollow(ctx context.Context, userID, authorID uint64) (bool, error)
}

type FollowRepoImpl struct {
	db *gorm.DB
}

func NewFollowRepo(db *gorm.DB) FollowRepo {
	return &FollowRepoImpl{db: db}
}

func (s *FollowRepoImpl) CreateFollow(ctx context.Context, follow *model.Follow) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			DoNothing: true,
		}).
		Create(follow).Error
}

func (s *FollowRepoImpl) DeleteFollow(ctx context.Context, userID, authorID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Delete(&model.Follow{}).Error
}

func (s *FollowRepoImpl) ExistsFollow(ctx context.Context, userID, authorID uint64) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Follow{}).
		Where("user_id = ? AND author_id = ?", userID, authorID).
		Count(&count).Error
	return count > 0, err
}
