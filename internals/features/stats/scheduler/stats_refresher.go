package scheduler

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"bitsa_backend/internals/features/moderation"
	"bitsa_backend/internals/features/stats/service"
)

const runTimeout = 30 * time.Second

// RunOnce refreshes the cached public stats and publishes the moderation backlog gauges.
func RunOnce(ctx context.Context, svc *service.StatsService) error {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	st, err := svc.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh stats: %w", err)
	}
	backlog, err := svc.Backlog(ctx)
	if err != nil {
		return fmt.Errorf("count backlog: %w", err)
	}
	moderation.PendingBacklog.WithLabelValues("blog").Set(float64(backlog.Blogs))
	moderation.PendingBacklog.WithLabelValues("event").Set(float64(backlog.Events))

	log.Printf("[SCHEDULER] stats users=%d blogs=%d events=%d | pending blogs=%d events=%d",
		st.TotalUsers, st.TotalBlogs, st.TotalEvents, backlog.Blogs, backlog.Events)
	return nil
}

// Start registers the refresher on spec and starts the cron runner. Overlapping runs are skipped.
// The caller stops the returned runner on shutdown.
func Start(spec string, svc *service.StatsService) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)))

	_, err := c.AddFunc(spec, func() {
		if err := RunOnce(context.Background(), svc); err != nil {
			log.Printf("[SCHEDULER] %v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid SCHEDULER_SPEC %q: %w", spec, err)
	}

	log.Printf("[SCHEDULER] started schedule=%q", spec)
	c.Start()
	return c, nil
}
