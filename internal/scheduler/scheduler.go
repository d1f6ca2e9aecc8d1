package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/go-co-op/gocron"
)

// DefaultInterval is how often idle workspaces are swept
const DefaultInterval = 5 * time.Minute

// Evictor drops learner workspaces that have been idle longer than ttl
type Evictor interface {
	EvictIdle(ttl time.Duration) []string
}

// Forgetter drops per-learner background task results
type Forgetter interface {
	Forget(learnerIDs ...string) int
}

// Cleaner prunes stale rate limiter entries
type Cleaner interface {
	Cleanup() int
}

// Scheduler manages the periodic housekeeping jobs of the server
type Scheduler struct {
	scheduler *gocron.Scheduler
	evictor   Evictor
	forgetter Forgetter
	cleaner   Cleaner
	ttl       time.Duration
	interval  time.Duration
}

// New creates a new scheduler instance. forgetter and cleaner may be nil.
func New(evictor Evictor, forgetter Forgetter, cleaner Cleaner, ttl, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		evictor:   evictor,
		forgetter: forgetter,
		cleaner:   cleaner,
		ttl:       ttl,
		interval:  interval,
	}
}

// Start registers the jobs and runs them in the background
func (s *Scheduler) Start() error {
	if _, err := s.scheduler.Every(s.interval).WaitForSchedule().Do(s.sweep); err != nil {
		return fmt.Errorf("failed to schedule workspace sweep: %w", err)
	}
	if s.cleaner != nil {
		if _, err := s.scheduler.Every(1).Hour().WaitForSchedule().Do(s.cleanup); err != nil {
			return fmt.Errorf("failed to schedule rate limiter cleanup: %w", err)
		}
	}
	s.scheduler.StartAsync()
	return nil
}

// Stop terminates all scheduled tasks
func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

// Jobs returns the number of registered jobs
func (s *Scheduler) Jobs() int {
	return len(s.scheduler.Jobs())
}

// sweep evicts idle workspaces and the finished media tasks of their learners
func (s *Scheduler) sweep() {
	evicted := s.evictor.EvictIdle(s.ttl)
	if len(evicted) == 0 {
		return
	}
	if s.forgetter == nil {
		return
	}
	if forgotten := s.forgetter.Forget(evicted...); forgotten > 0 {
		log.Printf("Dropped %d media tasks of evicted learners", forgotten)
	}
}

func (s *Scheduler) cleanup() {
	if removed := s.cleaner.Cleanup(); removed > 0 {
		log.Printf("Removed %d stale rate limit entries", removed)
	}
}
