package engine

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/okawa/aupshift/internal/config"
)

// RunBatch transforms multiple project files in parallel. Every job
// owns an independent model instance, so no locking is needed; the
// first failure cancels the jobs that have not started yet. Reports
// come back in job order, with nil entries for jobs that failed or
// were cancelled.
func RunBatch(ctx context.Context, jobs []config.Job, workers int, logger *log.Logger) ([]*Report, error) {
	if workers < 1 {
		workers = 1
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	reports := make([]*Report, len(jobs))
	for i, job := range jobs {
		i, job := i, job
		g.Go(func() error {
			cfg := job.Config()
			rep, err := New(&cfg, logger).Run(ctx)
			if err != nil {
				return fmt.Errorf("job %d (%s): %w", i, job.Input, err)
			}
			reports[i] = rep
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return reports, err
	}
	return reports, nil
}
