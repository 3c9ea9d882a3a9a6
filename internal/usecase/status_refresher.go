package usecase

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"dsr-service/internal/domain/repository"
	"dsr-service/pkg/logger"
	"dsr-service/pkg/metrics"

	"go.mongodb.org/mongo-driver/bson"
)

// RefreshResult summarises one detailed_status recompute.
type RefreshResult struct {
	Scanned  int   `json:"scanned"`
	Changed  int   `json:"changed"`
	Modified int64 `json:"modified"`
}

// StatusRefresher reclassifies stored jobs and persists changed labels
type StatusRefresher struct {
	jobRepo repository.JobRepository
	metrics *metrics.Metrics
	logger  logger.Logger
	running atomic.Bool
}

// NewStatusRefresher creates a new status refresher
func NewStatusRefresher(jobRepo repository.JobRepository, m *metrics.Metrics, logger logger.Logger) *StatusRefresher {
	return &StatusRefresher{
		jobRepo: jobRepo,
		metrics: m,
		logger:  logger,
	}
}

// Refresh recomputes detailed_status for every job of year, or for all jobs
// when year is empty, and writes back only the ones that changed.
func (r *StatusRefresher) Refresh(ctx context.Context, year string) (*RefreshResult, error) {
	filter := bson.M{}
	if year != "" {
		filter["year"] = year
	}

	jobs, err := r.jobRepo.Find(ctx, filter)
	if err != nil {
		r.metrics.ErrorsCount.WithLabelValues("status_refresh").Inc()
		return nil, fmt.Errorf("failed to load jobs: %w", err)
	}

	var updates []repository.StatusUpdate
	for _, job := range jobs {
		status := Classify(job)
		if status == job.DetailedStatus {
			continue
		}
		updates = append(updates, repository.StatusUpdate{
			ID:             job.ID,
			Year:           job.Year,
			JobNo:          job.JobNo,
			DetailedStatus: status,
		})
	}

	result := &RefreshResult{Scanned: len(jobs), Changed: len(updates)}
	if len(updates) == 0 {
		return result, nil
	}

	modified, err := r.jobRepo.BulkUpdateDetailedStatus(ctx, updates)
	if err != nil {
		r.metrics.ErrorsCount.WithLabelValues("status_refresh").Inc()
		return nil, fmt.Errorf("failed to write detailed status: %w", err)
	}
	result.Modified = modified
	r.metrics.DetailedStatusUpdates.Add(float64(modified))

	r.logger.Info("Detailed status refreshed",
		"year", year,
		"scanned", result.Scanned,
		"changed", result.Changed,
		"modified", result.Modified)

	return result, nil
}

// RunScheduled is the cron entry point. Overlapping runs are skipped.
func (r *StatusRefresher) RunScheduled(ctx context.Context, timeout time.Duration) {
	if !r.running.CompareAndSwap(false, true) {
		r.logger.Warn("Status refresh already running, skipping")
		return
	}
	defer r.running.Store(false)

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if _, err := r.Refresh(ctx, ""); err != nil {
		r.logger.Error("Scheduled status refresh failed", "error", err)
	}
}
