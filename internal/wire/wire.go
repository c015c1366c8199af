package wire

import (
	"time"
	"yatube/internal/api"
	"yatube/internal/api/config"
	"yatube/internal/api/handler"
	"yatube/internal/job"
	"yatube/internal/pkg/cron"
	"yatube/internal/pkg/minio"
	"yatube/internal/repository"
	"yatube/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ApplicationContainer bundles the top-level components of the app.
type ApplicationContainer struct {
	Router  *gin.Engine
	DB      *gorm.DB
	CronMgr *cron.Manager
}

func BuildApplication(db *gorm.DB, cfg *config.Config) (*ApplicationContainer, error) {
	userRepo := repository.NewUserRepo(db)
	groupRepo := repository.NewGroupRepo(db)
	postRepo := repository.NewPostRepo(db)
	commentRepo := repository.NewCommentRepo(db)
	followRepo := repository.NewFollowRepo(db)

	store := minio.NewStore()

	userService := service.NewUserService(userRepo)
	postService := service.NewPostService(postRepo, groupRepo, userRepo, followRepo, store)
	commentService := service.NewCommentService(commentRepo, postRepo, userRepo)
	followService := service.NewFollowService(followRepo, userRepo)

	handlers := &api.HandlersGroup{
		UserHandler:    handler.NewUserHandler(userService),
		PostHandler:    handler.NewPostHandler(postService),
		CommentHandler: handler.NewCommentHandler(commentService, postService),
		FollowHandler:  handler.NewFollowHandler(followService),
	}

	pageCacheTTL := time.Duration(cfg.Cache.PageTTL) * time.Second
	router := api.SetupRouter(handlers, pageCacheTTL)

	cronMgr := cron.NewCronManager(job.NewThumbnailCleanupJob(postRepo, store))

	return &ApplicationContainer{
		Router:  router,
		DB:      db,
		CronMgr: cronMgr,
	}, nil
}
