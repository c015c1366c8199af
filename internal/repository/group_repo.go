package repository

import (
	"context"
	"errors"
	"yatube/internal/model"

	"gorm.io/gorm"
)

type GroupRepo interface {
	CreateGroup(ctx context.Context, group *model.Group) error
	GetGroupByID(ctx context.Context, id uint64) (*model.Group, error)
	GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error)
}

type GroupRepoImpl struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) GroupRepo {
	return &GroupRepoImpl{db: db}
}

func (s *GroupRepoImpl) CreateGroup(ctx context.Context, group *model.Group) error {
	return s.db.WithContext(ctx).Create(group).Error
}

func (s *GroupRepoImpl) GetGroupByID(ctx context.Context, id uint64) (*model.Group, error) {
	var group model.Group
	err := s.db.WithContext(ctx).First(&group, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}

func (s *GroupRepoImpl) GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error) {
	var group model.Group
	err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&group).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &group, nil
}
