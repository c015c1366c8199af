package service

import (
	"bytes"
	"context"
	"fmt"
	log "log/slog"
	"path/filepath"
	"strings"
	"time"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/thumbnail"
	"yatube/internal/pkg/util"
	"yatube/internal/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ImageUpload is a fully buffered upload: the bytes are read twice, once
// for the thumbnail and once for the original object.
type ImageUpload struct {
	Name        string
	ContentType string
	Data        []byte
}

// CanEdit reports whether userID may change or remove the post.
func CanEdit(post *model.Post, userID uint64) bool {
	return post.AuthorID == userID
}

type PostService interface {
	// GlobalFeed is the front page: every post, five per page.
	GlobalFeed(ctx context.Context, page int) (*dto.PostPageDTO, error)
	GroupFeed(ctx context.Context, slug string, page int) (*dto.GroupPageDTO, error)
	// ProfileFeed renders an author page; viewerID 0 means anonymous.
	ProfileFeed(ctx context.Context, username string, viewerID uint64, page int) (*dto.ProfilePageDTO, error)
	// FollowingFeed lists posts by authors the user follows.
	FollowingFeed(ctx context.Context, userID uint64, page int) (*dto.PostPageDTO, error)

	GetPost(ctx context.Context, username string, postID, viewerID uint64) (*dto.PostViewDTO, error)
	CreatePost(ctx context.Context, authorID uint64, req *dto.PostBaseDTO, image *ImageUpload) (*dto.PostDTO, error)
	UpdatePost(ctx context.Context, userID uint64, username string, postID uint64, req *dto.PostBaseDTO, image *ImageUpload) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID uint64, username string, postID uint64) error
}

type PostServiceImpl struct {
	postRepo   repository.PostRepo
	groupRepo  repository.GroupRepo
	userRepo   repository.UserRepo
	followRepo repository.FollowRepo
	store      thumbnail.ObjectStore
	thumbs     *thumbnail.Generator
}

func NewPostService(
	postRepo repository.PostRepo,
	groupRepo repository.GroupRepo,
	userRepo repository.UserRepo,
	followRepo repository.FollowRepo,
	store thumbnail.ObjectStore,
) PostService {
	return &PostServiceImpl{
		postRepo:   postRepo,
		groupRepo:  groupRepo,
		userRepo:   userRepo,
		followRepo: followRepo,
		store:      store,
		thumbs:     thumbnail.NewGenerator(store),
	}
}

func (s *PostServiceImpl) GlobalFeed(ctx context.Context, page int) (*dto.PostPageDTO, error) {
	count, err := s.postRepo.CountPosts(ctx)
	if err != nil {
		return nil, err
	}
	meta, offset := paginate(count, page, consts.IndexPageSize)

	posts, err := s.postRepo.ListPosts(ctx, consts.IndexPageSize, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PostPageDTO{Page: meta, Posts: toPostDTOs(posts, s.store)}, nil
}

func (s *PostServiceImpl) GroupFeed(ctx context.Context, slug string, page int) (*dto.GroupPageDTO, error) {
	group, err := s.groupRepo.GetGroupBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	count, err := s.postRepo.CountPostsByGroup(ctx, group.ID)
	if err != nil {
		return nil, err
	}
	meta, offset := paginate(count, page, consts.FeedPageSize)

	posts, err := s.postRepo.ListPostsByGroup(ctx, group.ID, consts.FeedPageSize, offset)
	if err != nil {
		return nil, err
	}
	lastDozen, err := s.postRepo.ListPostsByGroup(ctx, group.ID, consts.LastDozenPosts, 0)
	if err != nil {
		return nil, err
	}

	// the group feed loads authors only, the group itself is implied
	for _, post := range posts {
		post.Group = group
	}
	for _, post := range lastDozen {
		post.Group = group
	}

	return &dto.GroupPageDTO{
		Group:     toGroupDTO(group),
		Page:      meta,
		Posts:     toPostDTOs(posts, s.store),
		LastDozen: toPostDTOs(lastDozen, s.store),
	}, nil
}

func (s *PostServiceImpl) ProfileFeed(ctx context.Context, username string, viewerID uint64, page int) (*dto.ProfilePageDTO, error) {
	author, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	count, err := s.postRepo.CountPostsByAuthor(ctx, author.ID)
	if err != nil {
		return nil, err
	}
	meta, offset := paginate(count, page, consts.FeedPageSize)

	posts, err := s.postRepo.ListPostsByAuthor(ctx, author.ID, consts.FeedPageSize, offset)
	if err != nil {
		return nil, err
	}
	for _, post := range posts {
		post.Author = *author
	}

	following, err := s.isFollowing(ctx, viewerID, author.ID)
	if err != nil {
		return nil, err
	}

	return &dto.ProfilePageDTO{
		Author:      toUserDTO(author),
		PostsAmount: count,
		Following:   following,
		Page:        meta,
		Posts:       toPostDTOs(posts, s.store),
	}, nil
}

func (s *PostServiceImpl) FollowingFeed(ctx context.Context, userID uint64, page int) (*dto.PostPageDTO, error) {
	count, err := s.postRepo.CountPostsByFollowed(ctx, userID)
	if err != nil {
		return nil, err
	}
	meta, offset := paginate(count, page, consts.FeedPageSize)

	posts, err := s.postRepo.ListPostsByFollowed(ctx, userID, consts.FeedPageSize, offset)
	if err != nil {
		return nil, err
	}
	return &dto.PostPageDTO{Page: meta, Posts: toPostDTOs(posts, s.store)}, nil
}

func (s *PostServiceImpl) GetPost(ctx context.Context, username string, postID, viewerID uint64) (*dto.PostViewDTO, error) {
	post, err := s.postRepo.GetPostByAuthor(ctx, username, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	postsAmount, err := s.postRepo.CountPostsByAuthor(ctx, post.AuthorID)
	if err != nil {
		return nil, err
	}
	following, err := s.isFollowing(ctx, viewerID, post.AuthorID)
	if err != nil {
		return nil, err
	}

	return &dto.PostViewDTO{
		Post:        toPostDTO(post, s.store),
		PostsAmount: postsAmount,
		Following:   following,
		Comments:    toCommentDTOs(post.Comments),
	}, nil
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, authorID uint64, req *dto.PostBaseDTO, image *ImageUpload) (*dto.PostDTO, error) {
	text, err := s.checkPostInput(ctx, req)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var imageKey string
	if image != nil {
		if imageKey, err = s.storeImage(ctx, now, image); err != nil {
			return nil, err
		}
	}

	post := &model.Post{
		Text:     text,
		PubDate:  now,
		AuthorID: authorID,
		GroupID:  req.GroupID,
		Image:    imageKey,
	}
	if err = s.postRepo.CreatePost(ctx, post); err != nil {
		return nil, err
	}

	created, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return toPostDTO(created, s.store), nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, userID uint64, username string, postID uint64, req *dto.PostBaseDTO, image *ImageUpload) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetPostByAuthor(ctx, username, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}
	if !CanEdit(post, userID) {
		return nil, ErrNotPostAuthor
	}

	text, err := s.checkPostInput(ctx, req)
	if err != nil {
		return nil, err
	}

	if image != nil {
		imageKey, err := s.storeImage(ctx, time.Now(), image)
		if err != nil {
			return nil, err
		}
		s.dropImage(ctx, post.Image)
		post.Image = imageKey
	}

	post.Text = text
	post.GroupID = req.GroupID
	if err = s.postRepo.UpdatePost(ctx, post); err != nil {
		return nil, err
	}

	updated, err := s.postRepo.GetPost(ctx, post.ID)
	if err != nil {
		return nil, err
	}
	return toPostDTO(updated, s.store), nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID uint64, username string, postID uint64) error {
	post, err := s.postRepo.GetPostByAuthor(ctx, username, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if !CanEdit(post, userID) {
		return ErrNotPostAuthor
	}

	// storage artifacts go first so the row never outlives a dangling key
	s.dropImage(ctx, post.Image)
	return s.postRepo.DeletePost(ctx, post.ID)
}

// checkPostInput validates the form text and the optional group, returning
// the trimmed text.
func (s *PostServiceImpl) checkPostInput(ctx context.Context, req *dto.PostBaseDTO) (string, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return "", NewValidationError(TextRequiredMessage)
	}
	if msg := util.CheckMessageLength(text); msg != "" {
		return "", NewValidationError(msg)
	}
	if req.GroupID != nil {
		group, err := s.groupRepo.GetGroupByID(ctx, *req.GroupID)
		if err != nil {
			return "", err
		}
		if group == nil {
			return "", ErrGroupNotFound
		}
	}
	return text, nil
}

// storeImage derives the thumbnail first, then uploads the original. An
// orphaned thumbnail from a failed upload is swept by the nightly job.
func (s *PostServiceImpl) storeImage(ctx context.Context, now time.Time, image *ImageUpload) (string, error) {
	if !strings.HasPrefix(image.ContentType, consts.MimePrefixImage) {
		return "", ErrFileNotSupported
	}

	key := fmt.Sprintf("posts/%s/%s%s",
		now.Format("2006/01/02"), uuid.NewString(), strings.ToLower(filepath.Ext(image.Name)))

	if _, err := s.thumbs.Create(ctx, key, bytes.NewReader(image.Data)); err != nil {
		log.WarnContext(ctx, "image rejected", "name", image.Name, "error", err)
		return "", ErrFileNotSupported
	}
	if _, err := s.store.Upload(ctx, key, bytes.NewReader(image.Data), int64(len(image.Data)), image.ContentType); err != nil {
		return "", errors.Wrap(err, "upload image")
	}
	return key, nil
}

// dropImage removes the original object and its thumbnail, logging but not
// propagating storage failures.
func (s *PostServiceImpl) dropImage(ctx context.Context, imageKey string) {
	if imageKey == "" {
		return
	}
	if err := s.thumbs.Release(ctx, imageKey); err != nil {
		log.WarnContext(ctx, "release thumbnail failed", "image", imageKey, "error", err)
	}
	if err := s.store.Delete(ctx, imageKey); err != nil {
		log.WarnContext(ctx, "delete image failed", "image", imageKey, "error", err)
	}
}

func (s *PostServiceImpl) isFollowing(ctx context.Context, viewerID, authorID uint64) (bool, error) {
	if viewerID == 0 || viewerID == authorID {
		return false, nil
	}
	return s.followRepo.ExistsFollow(ctx, viewerID, authorID)
}
