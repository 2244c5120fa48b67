package scheduler

import (
	"time"

	"github.com/go-co-op/gocron"

	"github.com/dharmasatrya/flowerforecast/internal/logging"
)

// Job is a housekeeping task run on a fixed interval.
type Job struct {
	Name     string
	Interval time.Duration
	Run      func()
}

// Scheduler runs housekeeping jobs (cache sweeps, limiter pruning) in the
// background for the lifetime of the server.
type Scheduler struct {
	scheduler *gocron.Scheduler
	jobs      []Job
}

func New(jobs ...Job) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		jobs:      jobs,
	}
}

func (s *Scheduler) Start() error {
	if len(s.jobs) == 0 {
		logging.Info().Msg("scheduler: no jobs configured")
		return nil
	}

	for _, job := range s.jobs {
		job := job
		interval := job.Interval
		if interval <= 0 {
			interval = 5 * time.Minute
		}

		_, err := s.scheduler.Every(interval).WaitForSchedule().Do(func() {
			start := time.Now()
			job.Run()
			logging.Debug().Str("job", job.Name).Dur("took", time.Since(start)).Msg("scheduler: job finished")
		})
		if err != nil {
			return err
		}
	}

	s.scheduler.StartAsync()
	return nil
}

func (s *Scheduler) Stop() {
	if s.scheduler != nil {
		s.scheduler.Stop()
	}
}
