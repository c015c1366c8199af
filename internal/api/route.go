package api

import (
	"net/http"
	"time"
	"yatube/internal/api/middleware"
	"yatube/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// SetupRouter builds the route table. Feed pages are readable anonymously,
// everything that writes requires a valid token.
func SetupRouter(group *HandlersGroup, pageCacheTTL time.Duration) *gin.Engine {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	// TraceId & Logger & CORS
	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"code":    404,
			"message": "страница не найдена",
			"path":    c.Request.URL.Path,
		})
	})

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"code":    200,
			"message": "pong",
			"data":    nil,
		})
	})

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup/", group.UserHandler.Register)
		authGroup.POST("/login/", group.UserHandler.Login)

		logoutGroup := authGroup.Group("")
		logoutGroup.Use(middleware.AuthMiddleware())
		{
			logoutGroup.POST("/logout/", group.UserHandler.Logout)
		}
	}

	// the front page is cached briefly, staleness is acceptable there
	indexGroup := r.Group("")
	indexGroup.Use(middleware.AuthOptionalMiddleware(), middleware.PageCacheMiddleware(pageCacheTTL))
	{
		indexGroup.GET("/", group.PostHandler.Index)
	}

	readGroup := r.Group("")
	readGroup.Use(middleware.AuthOptionalMiddleware())
	{
		readGroup.GET("/group/:slug/", group.PostHandler.GroupPosts)
		readGroup.GET("/:username/", group.PostHandler.Profile)
		readGroup.GET("/:username/:post_id/", group.PostHandler.PostView)
	}

	writeGroup := r.Group("")
	writeGroup.Use(middleware.AuthMiddleware())
	{
		writeGroup.POST("/new/", group.PostHandler.CreatePost)
		writeGroup.GET("/follow/", group.PostHandler.FollowIndex)

		writeGroup.POST("/:username/follow/", group.FollowHandler.Follow)
		writeGroup.POST("/:username/unfollow/", group.FollowHandler.Unfollow)

		writeGroup.PUT("/:username/:post_id/edit/", group.PostHandler.EditPost)
		writeGroup.DELETE("/:username/:post_id/", group.PostHandler.DeletePost)
		writeGroup.POST("/:username/:post_id/comment", group.CommentHandler.AddComment)
	}

	return r
}
