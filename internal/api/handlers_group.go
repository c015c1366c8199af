package api

import "yatube/internal/api/handler"

// HandlersGroup bundles the initialized handler instances.
type HandlersGroup struct {
	UserHandler    *handler.UserHandler
	PostHandler    *handler.PostHandler
	CommentHandler *handler.CommentHandler
	FollowHandler  *handler.FollowHandler
}
