package services

import (
	"context"
	"log"

	"github.com/robfig/cron/v3"
)

// CronService runs scheduled maintenance jobs: a nightly re-run of the
// passcode migration sweep (idempotent, catches rows restored from old
// backups) and a daily till summary log line.
type CronService struct {
	cron      *cron.Cron
	migration *MigrationService
	till      *TillService
}

// NewCronService creates a new cron service
func NewCronService(migration *MigrationService, till *TillService) *CronService {
	return &CronService{
		cron:      cron.New(),
		migration: migration,
		till:      till,
	}
}

// Start registers and starts the scheduled jobs
func (s *CronService) Start() {
	// 00:05 daily: passcode sweep
	if _, err := s.cron.AddFunc("5 0 * * *", func() {
		log.Println("🕐 Nightly passcode sweep starting")
		s.migration.Run(context.Background())
	}); err != nil {
		log.Printf("⚠️ Failed to schedule passcode sweep: %v", err)
	}

	// 23:55 daily: till summary
	if _, err := s.cron.AddFunc("55 23 * * *", func() {
		summary, err := s.till.TodaySummary(context.Background())
		if err != nil {
			log.Printf("⚠️ Till summary failed: %v", err)
			return
		}
		log.Printf("🧾 Till summary since %s: %d records, %.2f total",
			summary.Since.Format("2006-01-02"), summary.Count, summary.Total)
	}); err != nil {
		log.Printf("⚠️ Failed to schedule till summary: %v", err)
	}

	s.cron.Start()
	log.Println("✅ Cron service started")
}

// Stop stops the scheduled jobs
func (s *CronService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
		log.Println("🛑 Cron service stopped")
	}
}
