package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/vibegame/pixey-backend/internal/logger"
)

// LeaderboardRefresher rebuilds the ranked leaderboard view.
type LeaderboardRefresher interface {
	Refresh(ctx context.Context) error
}

// Scheduler runs periodic maintenance jobs.
type Scheduler struct {
	cron        *cron.Cron
	leaderboard LeaderboardRefresher
}

// NewScheduler creates a scheduler that refreshes the leaderboard on the
// given cron spec (e.g. "@every 5m").
func NewScheduler(leaderboard LeaderboardRefresher, refreshSpec string) (*Scheduler, error) {
	s := &Scheduler{
		cron:        cron.New(),
		leaderboard: leaderboard,
	}

	_, err := s.cron.AddFunc(refreshSpec, s.refreshLeaderboard)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) refreshLeaderboard() {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	start := time.Now()
	err := s.leaderboard.Refresh(ctx)
	if err != nil {
		logger.Log.Errorw("leaderboard refresh failed", "err", err)
		return
	}

	logger.Log.Infow("leaderboard refreshed", "duration", time.Since(start))
}

// Start begins running jobs on their schedules.
func (s *Scheduler) Start() {
	s.cron.Start()
	logger.Log.Infow("job scheduler started")
}

// Stop halts scheduling and waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.Log.Infow("job scheduler stopped")
}
