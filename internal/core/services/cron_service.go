package services

import (
	"context"
	"log"

	"smartlining-api/internal/adapters/persistence/repositories"

	"github.com/robfig/cron/v3"
)

// CronService runs the nightly maintenance jobs: purging expired or
// revoked refresh tokens and cancelling tickets still waiting at the
// end of the day.
type CronService struct {
	cron             *cron.Cron
	turnoRepo        repositories.TurnoRepository
	refreshTokenRepo repositories.RefreshTokenRepository
}

// NewCronService creates a new cron service
func NewCronService(
	turnoRepo repositories.TurnoRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
) *CronService {
	return &CronService{
		cron:             cron.New(),
		turnoRepo:        turnoRepo,
		refreshTokenRepo: refreshTokenRepo,
	}
}

// Start registers and launches the scheduled jobs
func (s *CronService) Start() {
	// 23:55 daily: close out the day's queue
	s.cron.AddFunc("55 23 * * *", s.cancelStaleTurnos)

	// 03:00 daily: token housekeeping
	s.cron.AddFunc("0 3 * * *", s.purgeExpiredTokens)

	s.cron.Start()
	log.Println("Cron service started")
}

// Stop halts the scheduler and waits for running jobs
func (s *CronService) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	log.Println("Cron service stopped")
}

func (s *CronService) cancelStaleTurnos() {
	n, err := s.turnoRepo.CancelWaiting(context.Background())
	if err != nil {
		log.Printf("Cron: failed to cancel stale turnos: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Cron: cancelled %d stale turnos", n)
	}
}

func (s *CronService) purgeExpiredTokens() {
	n, err := s.refreshTokenRepo.DeleteExpired(context.Background())
	if err != nil {
		log.Printf("Cron: failed to purge refresh tokens: %v", err)
		return
	}
	if n > 0 {
		log.Printf("Cron: purged %d refresh tokens", n)
	}
}
