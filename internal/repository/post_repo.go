package repository

import (
	"context"
	"errors"
	"yatube/internal/model"

	"gorm.io/gorm"
)

// feedOrder is the global post ordering: newest first, ties broken by id
// since pub_date has second-level granularity.
const feedOrder = "pub_date DESC, id DESC"

type PostRepo interface {
	CreatePost(ctx context.Context, post *model.Post) error
	UpdatePost(ctx context.Context, post *model.Post) error
	// DeletePost removes the post and its comments in one transaction.
	DeletePost(ctx context.Context, id uint64) error
	GetPost(ctx context.Context, id uint64) (*model.Post, error)
	// GetPostByAuthor resolves a post by its canonical (username, id) pair.
	GetPostByAuthor(ctx context.Context, username string, id uint64) (*model.Post, error)

	ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, error)
	ListPostsByGroup(ctx context.Context, groupID uint64, limit, offset int) ([]*model.Post, error)
	ListPostsByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, error)
	// ListPostsByFollowed returns posts whose author is followed by userID.
	ListPostsByFollowed(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, error)

	CountPosts(ctx context.Context) (int64, error)
	CountPostsByGroup(ctx context.Context, groupID uint64) (int64, error)
	CountPostsByAuthor(ctx context.Context, authorID uint64) (int64, error)
	CountPostsByFollowed(ctx context.Context, userID uint64) (int64, error)

	ExistsPostWithImage(ctx context.Context, image string) (bool, error)
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &PostRepoImpl{db: db}
}

func (s *PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Model(post).
		Select("text", "group_id", "image").
		Updates(map[string]interface{}{
			"text":     post.Text,
			"group_id": post.GroupID,
			"image":    post.Image,
		}).Error
}

func (s *PostRepoImpl) DeletePost(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("post_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Post{}, id).Error
	})
}

func (s *PostRepoImpl) GetPost(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Group").Preload("Comments").
		First(&post, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) GetPostByAuthor(ctx context.Context, username string, id uint64) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Group").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created DESC, id DESC").Preload("Author")
		}).
		Joins("JOIN users ON users.id = posts.author_id").
		Where("posts.id = ? AND users.username = ?", id, username).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &post, nil
}

func (s *PostRepoImpl) ListPosts(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Group").Preload("Comments").
		Order(feedOrder).
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ListPostsByGroup(ctx context.Context, groupID uint64, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").
		Where("group_id = ?", groupID).
		Order(feedOrder).
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ListPostsByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Group").Preload("Comments").
		Where("author_id = ?", authorID).
		Order(feedOrder).
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) ListPostsByFollowed(ctx context.Context, userID uint64, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).
		Preload("Author").Preload("Group").Preload("Comments").
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Order(feedOrder).
		Limit(limit).Offset(offset).
		Find(&posts).Error
	if err != nil {
		return nil, err
	}
	return posts, nil
}

func (s *PostRepoImpl) CountPosts(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).Count(&count).Error
	return count, err
}

func (s *PostRepoImpl) CountPostsByGroup(ctx context.Context, groupID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("group_id = ?", groupID).
		Count(&count).Error
	return count, err
}

func (s *PostRepoImpl) CountPostsByAuthor(ctx context.Context, authorID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("author_id = ?", authorID).
		Count(&count).Error
	return count, err
}

func (s *PostRepoImpl) CountPostsByFollowed(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Joins("JOIN follows ON follows.author_id = posts.author_id").
		Where("follows.user_id = ?", userID).
		Count(&count).Error
	return count, err
}

func (s *PostRepoImpl) ExistsPostWithImage(ctx context.Context, image string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&model.Post{}).
		Where("image = ?", image).
		Count(&count).Error
	return count > 0, err
}
