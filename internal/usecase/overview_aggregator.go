package usecase

import (
	"context"
	"fmt"
	"time"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"
	"dsr-service/pkg/logger"
	"dsr-service/pkg/metrics"
	"dsr-service/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
)

// OverviewAggregator computes the dashboard counters for a year
type OverviewAggregator struct {
	jobRepo  repository.JobRepository
	metrics  *metrics.Metrics
	logger   logger.Logger
	location *time.Location
	now      func() time.Time
}

// NewOverviewAggregator creates a new overview aggregator. "Today" counters
// are evaluated in loc.
func NewOverviewAggregator(jobRepo repository.JobRepository, m *metrics.Metrics, logger logger.Logger, loc *time.Location) *OverviewAggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &OverviewAggregator{
		jobRepo:  jobRepo,
		metrics:  m,
		logger:   logger,
		location: loc,
		now:      time.Now,
	}
}

// Fetch runs the overview pipeline for year. A year with no jobs yields
// all-zero counters.
func (a *OverviewAggregator) Fetch(ctx context.Context, year string) (*entity.OverviewCounters, error) {
	start := time.Now()
	defer func() {
		a.metrics.OverviewComputeTime.Observe(time.Since(start).Seconds())
	}()

	today := a.now().In(a.location).Format(utils.DATE_LAYOUT)

	var rows []entity.OverviewCounters
	if err := a.jobRepo.Aggregate(ctx, OverviewPipeline(year, today), &rows); err != nil {
		a.metrics.ErrorsCount.WithLabelValues("overview").Inc()
		return nil, fmt.Errorf("failed to aggregate overview: %w", err)
	}

	if len(rows) == 0 {
		return &entity.OverviewCounters{}, nil
	}
	return &rows[0], nil
}

func lowerField(field string) bson.M {
	return bson.M{"$toLower": bson.M{"$ifNull": bson.A{"$" + field, ""}}}
}

func dayOf(expr interface{}) bson.M {
	return bson.M{"$substrCP": bson.A{bson.M{"$ifNull": bson.A{expr, ""}}, 0, 10}}
}

func countIf(cond interface{}) bson.M {
	return bson.M{"$sum": bson.M{"$cond": bson.A{cond, 1, 0}}}
}

// OverviewPipeline groups a year's jobs into the dashboard counters. Stage
// counters read the persisted detailed_status and only count pending jobs.
func OverviewPipeline(year, today string) []bson.M {
	cancelled := bson.M{"$or": bson.A{
		bson.M{"$eq": bson.A{lowerField("status"), "cancelled"}},
		bson.M{"$eq": bson.A{lowerField("be_no"), entity.BeNoCancelled}},
	}}
	notCancelled := bson.M{"$not": bson.A{cancelled}}
	pending := bson.M{"$and": bson.A{
		bson.M{"$eq": bson.A{lowerField("status"), "pending"}},
		notCancelled,
	}}
	completed := bson.M{"$and": bson.A{
		bson.M{"$eq": bson.A{lowerField("status"), "completed"}},
		notCancelled,
	}}

	group := bson.M{
		"_id":           nil,
		"totalJobs":     bson.M{"$sum": 1},
		"pendingJobs":   countIf(pending),
		"completedJobs": countIf(completed),
		"cancelledJobs": countIf(cancelled),
	}

	for _, status := range entity.DetailedStatuses {
		group[entity.StatusCounterKeys[status]] = countIf(bson.M{"$and": bson.A{
			pending,
			bson.M{"$eq": bson.A{"$detailed_status", string(status)}},
		}})
	}

	group["todayJobCreateImport"] = countIf(bson.M{"$eq": bson.A{dayOf("$job_date"), today}})
	group["todayJobBeDate"] = countIf(bson.M{"$eq": bson.A{dayOf("$be_date"), today}})
	group["todayJobPcv"] = countIf(bson.M{"$eq": bson.A{dayOf("$pcv_date"), today}})
	group["todayJobOutOfCharge"] = countIf(bson.M{"$eq": bson.A{dayOf("$out_of_charge"), today}})
	group["todayJobArrivalDate"] = countIf(bson.M{"$in": bson.A{
		today,
		bson.M{"$map": bson.M{
			"input": bson.M{"$ifNull": bson.A{"$container_nos", bson.A{}}},
			"as":    "c",
			"in":    dayOf("$$c.arrival_date"),
		}},
	}})

	return []bson.M{
		{"$match": bson.M{"year": year}},
		{"$group": group},
		{"$project": bson.M{"_id": 0}},
	}
}
