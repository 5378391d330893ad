package jobs

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// Reaper tears down page views that have gone quiet
type Reaper interface {
	Reap() int
}

// Pruner drops stale bookkeeping, such as the security monitor's per-IP history
type Pruner interface {
	Prune()
}

// StartScheduler starts the background jobs: idle page view reaping every
// interval and an hourly prune of pruner, if given. Schedules run in the site
// timezone until the returned cron is stopped.
func StartScheduler(reaper Reaper, pruner Pruner, interval time.Duration, loc *time.Location) (*cron.Cron, error) {
	if interval <= 0 {
		return nil, fmt.Errorf("invalid view reap interval %s", interval)
	}

	c := cron.New(cron.WithLocation(loc))

	_, err := c.AddFunc("@every "+interval.String(), func() {
		ReapIdleViews(reaper)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to schedule view reaping: %w", err)
	}

	if pruner != nil {
		if _, err := c.AddFunc("@hourly", pruner.Prune); err != nil {
			return nil, fmt.Errorf("failed to schedule pruning: %w", err)
		}
	}

	c.Start()
	log.Printf("[CRON] Scheduler started, reaping idle page views every %s", interval)
	return c, nil
}

// ReapIdleViews runs a single reaping pass and returns how many views were torn down
func ReapIdleViews(reaper Reaper) int {
	n := reaper.Reap()
	if n > 0 {
		log.Printf("[JOB] Reaped %d idle page views", n)
	}
	return n
}
