package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	contactservice "github.com/starfolio/portfolio-backend/internal/contact/service"
	contentservice "github.com/starfolio/portfolio-backend/internal/content/service"
)

type Scheduler struct {
	cron     *cron.Cron
	contacts *contactservice.ContactService
	content  *contentservice.ContentService
}

func NewScheduler(contacts *contactservice.ContactService, content *contentservice.ContentService) *Scheduler {
	return &Scheduler{
		cron:     cron.New(cron.WithSeconds()),
		contacts: contacts,
		content:  content,
	}
}

// Start registers and starts the cron tasks. Missing services skip their
// jobs rather than failing.
func (s *Scheduler) Start() error {
	if s.contacts != nil {
		// Nightly at 12:00 AM
		if _, err := s.cron.AddFunc("0 0 0 * * *", s.contactDigest); err != nil {
			return err
		}
	}

	if s.content != nil {
		// Hourly, on the hour
		if _, err := s.cron.AddFunc("0 0 * * * *", s.refreshContent); err != nil {
			return err
		}
	}

	slog.Info("cron scheduler started")
	s.cron.Start()
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) contactDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	since := time.Now().Add(-24 * time.Hour)
	count, err := s.contacts.CountSince(ctx, since)
	if err != nil {
		slog.Error("contact digest failed", "error", err)
		return
	}
	slog.Info("contact digest", "last24h", count)
}

func (s *Scheduler) refreshContent() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.content.Refresh(ctx); err != nil {
		slog.Error("content refresh failed", "error", err)
		return
	}
	slog.Info("content refreshed")
}
