package cron

import (
	log "log/slog"
	"yatube/internal/job"

	"github.com/robfig/cron/v3"
)

type Manager struct {
	engine              *cron.Cron
	thumbnailCleanupJob *job.ThumbnailCleanupJob
}

func NewCronManager(thumbnailCleanupJob *job.ThumbnailCleanupJob) *Manager {
	return &Manager{
		engine:              cron.New(cron.WithSeconds()),
		thumbnailCleanupJob: thumbnailCleanupJob,
	}
}

func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.thumbnailCleanupJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("cron engine stopped")
	s.engine.Stop()
}
