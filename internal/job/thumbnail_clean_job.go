package job

import (
	"context"
	log "log/slog"
	"yatube/internal/pkg/thumbnail"
	"yatube/internal/repository"
)

// ThumbnailCleanupJob sweeps derived thumbnails whose source post is gone.
// Orphans appear when a post creation fails between the thumbnail upload
// and the database insert.
type ThumbnailCleanupJob struct {
	postRepo repository.PostRepo
	store    thumbnail.ObjectStore
}

func NewThumbnailCleanupJob(postRepo repository.PostRepo, store thumbnail.ObjectStore) *ThumbnailCleanupJob {
	return &ThumbnailCleanupJob{
		postRepo: postRepo,
		store:    store,
	}
}

func (s *ThumbnailCleanupJob) Run() {
	ctx := context.Background()
	log.Info("start thumbnail cleanup job")

	keys, err := s.store.List(ctx, thumbnail.Prefix)
	if err != nil {
		log.Error("failed to list thumbnails", "err", err)
		return
	}

	count := 0
	for _, key := range keys {
		imageKey, ok := thumbnail.ImageKey(key)
		if !ok {
			continue
		}

		exists, err := s.postRepo.ExistsPostWithImage(ctx, imageKey)
		if err != nil {
			log.Error("failed to check post image", "image", imageKey, "err", err)
			continue
		}
		if exists {
			continue
		}

		if err = s.store.Delete(ctx, key); err != nil {
			log.Error("failed to delete orphaned thumbnail", "key", key, "err", err)
			continue
		}
		count++
	}

	if count > 0 {
		log.Info("thumbnail cleanup job finished", "cleaned_count", count)
	}
}
