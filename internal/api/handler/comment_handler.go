package handler

import (
	"errors"
	"strconv"
	"yatube/internal/api/dto"
	"yatube/internal/pkg/response"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentSvc service.CommentService
	postSvc    service.PostService
}

func NewCommentHandler(commentSvc service.CommentService, postSvc service.PostService) *CommentHandler {
	return &CommentHandler{
		commentSvc: commentSvc,
		postSvc:    postSvc,
	}
}

// AddComment posts a comment and returns the refreshed post view. A
// rejected comment still renders the view, with the message attached as
// a warning.
func (s *CommentHandler) AddComment(c *gin.Context) {
	userID := c.GetUint64("user_id")
	username := c.Param("username")

	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}

	var req dto.CommentBaseDTO
	if err = c.ShouldBind(&req); err != nil {
		response.Error(c, err)
		return
	}

	_, err = s.commentSvc.AddComment(c.Request.Context(), username, postID, userID, req.Text)

	var validation *service.ValidationError
	if errors.As(err, &validation) {
		view, viewErr := s.postSvc.GetPost(c.Request.Context(), username, postID, userID)
		if viewErr != nil {
			response.Error(c, viewErr)
			return
		}
		view.Warnings = []string{validation.Message}
		response.FailWithData(c, response.BadRequest, validation.Message, view)
		return
	}
	if err != nil {
		response.Error(c, err)
		return
	}

	view, err := s.postSvc.GetPost(c.Request.Context(), username, postID, userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, view)
}
