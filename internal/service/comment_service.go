package service

import (
	"context"
	"strings"
	"time"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/util"
	"yatube/internal/repository"
)

type CommentService interface {
	// AddComment attaches a comment to the post addressed by its canonical
	// (username, post id) pair. Rejected text comes back as *ValidationError.
	AddComment(ctx context.Context, username string, postID, authorID uint64, text string) (*dto.CommentDTO, error)
	ListComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error)
}

type CommentServiceImpl struct {
	commentRepo repository.CommentRepo
	postRepo    repository.PostRepo
	userRepo    repository.UserRepo
}

func NewCommentService(
	commentRepo repository.CommentRepo,
	postRepo repository.PostRepo,
	userRepo repository.UserRepo,
) CommentService {
	return &CommentServiceImpl{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		userRepo:    userRepo,
	}
}

func (s *CommentServiceImpl) AddComment(ctx context.Context, username string, postID, authorID uint64, text string) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetPostByAuthor(ctx, username, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, NewValidationError(CommentRequiredMessage)
	}
	if msg := util.CheckMessageLength(text); msg != "" {
		return nil, NewValidationError(msg)
	}

	author, err := s.userRepo.GetUserByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	comment := &model.Comment{
		PostID:   post.ID,
		AuthorID: authorID,
		Text:     text,
		Created:  time.Now(),
	}
	if err = s.commentRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}

	comment.Author = *author
	return toCommentDTO(comment), nil
}

func (s *CommentServiceImpl) ListComments(ctx context.Context, postID uint64) ([]*dto.CommentDTO, error) {
	comments, err := s.commentRepo.ListCommentsByPost(ctx, postID)
	if err != nil {
		return nil, err
	}
	return toCommentDTOs(comments), nil
}
