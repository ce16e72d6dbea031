package cron

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jamstream/server/internal/service"
	"github.com/jamstream/server/pkg/logger"
)

// refreshSpec recomputes the ranking shelves every five minutes, half
// the cache TTL, so a healthy scheduler keeps reads warm.
const refreshSpec = "*/5 * * * *"

// Manager owns the scheduled ranking refresh.
type Manager struct {
	cron    *cron.Cron
	ranking *service.RankingService
	log     logger.Logger
}

func NewManager(ranking *service.RankingService, log logger.Logger) *Manager {
	return &Manager{
		cron:    cron.New(cron.WithLocation(time.Local)),
		ranking: ranking,
		log:     log,
	}
}

// Start registers the refresh job and starts the scheduler.
func (m *Manager) Start() error {
	_, err := m.cron.AddFunc(refreshSpec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()

		start := time.Now()
		if err := m.ranking.Refresh(ctx); err != nil {
			m.log.Error("scheduled ranking refresh failed", logger.Err(err))
			return
		}
		m.log.Info("ranking refresh completed",
			logger.Duration("duration", time.Since(start)),
		)
	})
	if err != nil {
		return err
	}

	m.cron.Start()
	m.log.Info("cron manager started", logger.String("refresh_spec", refreshSpec))
	return nil
}

// Stop stops the scheduler and waits for a running job to finish.
func (m *Manager) Stop() {
	ctx := m.cron.Stop()
	<-ctx.Done()
	m.log.Info("cron manager stopped")
}

// RunRefreshNow triggers a refresh outside the schedule, used at startup
// and from tests.
func (m *Manager) RunRefreshNow(ctx context.Context) error {
	return m.ranking.Refresh(ctx)
}
