package handler

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"yatube/internal/api/dto"
	"yatube/internal/pkg/consts"
	"yatube/internal/pkg/response"
	"yatube/internal/pkg/util"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postSvc service.PostService
}

func NewPostHandler(postSvc service.PostService) *PostHandler {
	return &PostHandler{
		postSvc: postSvc,
	}
}

// Index is the global feed, five posts per page.
func (s *PostHandler) Index(c *gin.Context) {
	page := parsePage(c)

	feed, err := s.postSvc.GlobalFeed(c.Request.Context(), page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

func (s *PostHandler) GroupPosts(c *gin.Context) {
	slug := c.Param("slug")
	page := parsePage(c)

	feed, err := s.postSvc.GroupFeed(c.Request.Context(), slug, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

func (s *PostHandler) Profile(c *gin.Context) {
	viewerID := c.GetUint64("user_id")
	username := c.Param("username")
	page := parsePage(c)

	profile, err := s.postSvc.ProfileFeed(c.Request.Context(), username, viewerID, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

// FollowIndex is the personal feed of followed authors.
func (s *PostHandler) FollowIndex(c *gin.Context) {
	userID := c.GetUint64("user_id")
	page := parsePage(c)

	feed, err := s.postSvc.FollowingFeed(c.Request.Context(), userID, page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, feed)
}

func (s *PostHandler) PostView(c *gin.Context) {
	viewerID := c.GetUint64("user_id")
	username := c.Param("username")

	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := s.postSvc.GetPost(c.Request.Context(), username, postID, viewerID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}

func (s *PostHandler) CreatePost(c *gin.Context) {
	userID := c.GetUint64("user_id")

	req, image, err := bindPostForm(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.CreatePost(c.Request.Context(), userID, req, image)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, post)
}

func (s *PostHandler) EditPost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.Param("username")

	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	req, image, err := bindPostForm(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	post, err := s.postSvc.UpdatePost(c.Request.Context(), userID, username, postID, req, image)
	if errors.Is(err, service.ErrNotPostAuthor) {
		// non-authors are sent back to the post instead of an error page
		c.Redirect(http.StatusSeeOther, fmt.Sprintf("/%s/%d/", username, postID))
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Redirect(http.StatusSeeOther, post.URL)
}

func (s *PostHandler) DeletePost(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.Param("username")

	postID, err := parsePostID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err = s.postSvc.DeletePost(c.Request.Context(), userID, username, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func parsePostID(c *gin.Context) (uint64, error) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		return 0, service.ErrParamInvalid
	}
	return postID, nil
}

// bindPostForm reads the multipart post form: text, an optional group id
// and an optional image. The image is buffered so the thumbnail and the
// original upload can each consume it.
func bindPostForm(c *gin.Context) (*dto.PostBaseDTO, *service.ImageUpload, error) {
	var req dto.PostBaseDTO
	if err := c.ShouldBind(&req); err != nil {
		return nil, nil, err
	}

	file, err := c.FormFile("image")
	if err != nil || file == nil {
		return &req, nil, nil
	}

	reader, err := file.Open()
	if err != nil {
		return nil, nil, err
	}
	defer func() {
		_ = reader.Close()
	}()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, nil, err
	}

	contentType := util.SniffContentType(data)
	if !strings.HasPrefix(contentType, consts.MimePrefixImage) {
		return nil, nil, service.ErrFileNotSupported
	}

	return &req, &service.ImageUpload{
		Name:        file.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
