package service

import (
	"context"
	"yatube/internal/model"
	"yatube/internal/repository"
)

type FollowService interface {
	// Follow subscribes userID to the author's posts. Repeated calls are
	// no-ops, self-subscription is rejected.
	Follow(ctx context.Context, userID uint64, username string) error
	// Unfollow removes the subscription if present.
	Unfollow(ctx context.Context, userID uint64, username string) error
	IsFollowing(ctx context.Context, userID uint64, username string) (bool, error)
}

type FollowServiceImpl struct {
	followRepo repository.FollowRepo
	userRepo   repository.UserRepo
}

func NewFollowService(followRepo repository.FollowRepo, userRepo repository.UserRepo) FollowService {
	return &FollowServiceImpl{followRepo: followRepo, userRepo: userRepo}
}

func (s *FollowServiceImpl) Follow(ctx context.Context, userID uint64, username string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrUserNotFound
	}
	if author.ID == userID {
		return ErrFollowSelf
	}

	return s.followRepo.CreateFollow(ctx, &model.Follow{
		UserID:   userID,
		AuthorID: author.ID,
	})
}

func (s *FollowServiceImpl) Unfollow(ctx context.Context, userID uint64, username string) error {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return err
	}
	if author == nil {
		return ErrUserNotFound
	}
	return s.followRepo.DeleteFollow(ctx, userID, author.ID)
}

func (s *FollowServiceImpl) IsFollowing(ctx context.Context, userID uint64, username string) (bool, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return false, err
	}
	if author == nil {
		return false, ErrUserNotFound
	}
	return s.followRepo.ExistsFollow(ctx, userID, author.ID)
}
