package service

import (
	"fmt"
	"yatube/internal/api/dto"
	"yatube/internal/model"
	"yatube/internal/pkg/thumbnail"
	"yatube/internal/pkg/util"

	"github.com/jinzhu/copier"
)

func toGroupDTO(group *model.Group) *dto.GroupDTO {
	if group == nil {
		return nil
	}
	out := &dto.GroupDTO{}
	_ = copier.Copy(out, group)
	return out
}

func toUserDTO(user *model.User) *dto.UserDTO {
	out := &dto.UserDTO{}
	_ = copier.Copy(out, user)
	return out
}

func toPostDTO(post *model.Post, store thumbnail.ObjectStore) *dto.PostDTO {
	out := &dto.PostDTO{}
	_ = copier.Copy(out, post)
	out.PubDate = util.DatetimeRuLong(post.PubDate)
	out.Author = post.Author.Username
	out.Group = toGroupDTO(post.Group)
	out.CommentsCount = len(post.Comments)
	out.URL = fmt.Sprintf("/%s/%d/", post.Author.Username, post.ID)
	if post.Image != "" && store != nil {
		out.ImageURL = store.PublicURL(post.Image)
		out.ThumbnailURL = store.PublicURL(thumbnail.Key(post.Image))
	}
	return out
}

func toPostDTOs(posts []*model.Post, store thumbnail.ObjectStore) []*dto.PostDTO {
	out := make([]*dto.PostDTO, 0, len(posts))
	for _, post := range posts {
		out = append(out, toPostDTO(post, store))
	}
	return out
}

func toCommentDTO(comment *model.Comment) *dto.CommentDTO {
	out := &dto.CommentDTO{}
	_ = copier.Copy(out, comment)
	out.Author = comment.Author.Username
	out.Created = util.DatetimeRuLong(comment.Created)
	return out
}

func toCommentDTOs(comments []model.Comment) []*dto.CommentDTO {
	out := make([]*dto.CommentDTO, 0, len(comments))
	for i := range comments {
		out = append(out, toCommentDTO(&comments[i]))
	}
	return out
}
