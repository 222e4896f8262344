package dataset

import (
	"github.com/roylee0704/gron"

	"nli/internal/dataset/interfaces"
	"nli/internal/providers"
	"nli/internal/structures"
)

// Scheduler reloads the dataset file on a fixed interval so a refreshed
// export from the primary store is picked up without a restart.
type Scheduler struct {
	config  *structures.Config
	logger  providers.Logger
	store   *Store
	metrics providers.MetricsProviderInterface
	cron    *gron.Cron
}

func (s *Scheduler) publishCounts() {
	s.metrics.SetEntitiesTotal("accounts", s.store.AccountCount())
	s.metrics.SetEntitiesTotal("children", s.store.ChildCount())
	s.metrics.SetEntitiesTotal("installs", s.store.InstallCount())
}

func (s *Scheduler) Init() {
	interval := s.config.Dataset.ReloadInterval
	if interval <= 0 {
		s.logger.Infof(providers.TypeApp, "Dataset reload disabled")
		return
	}

	s.cron = gron.New()
	s.cron.AddFunc(gron.Every(interval), func() {
		if err := s.store.Reload(); err != nil {
			s.logger.Errorf(providers.TypeApp, "Dataset reload failed: %s", err)
			return
		}
		s.publishCounts()
		s.logger.Infof(providers.TypeApp, "Dataset reloaded from %s", s.config.Dataset.FilePath)
	})
	s.cron.Start()
}

func (s *Scheduler) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

// Restore performs the initial dataset load at startup.
func (s *Scheduler) Restore() error {
	if err := s.store.Reload(); err != nil {
		return err
	}
	s.publishCounts()
	return nil
}

func NewScheduler(config *structures.Config, logger providers.Logger, store *Store, metrics providers.MetricsProviderInterface) interfaces.SchedulerInterface {
	return &Scheduler{
		config:  config,
		logger:  logger,
		store:   store,
		metrics: metrics,
	}
}
