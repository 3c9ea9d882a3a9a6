package repository

import (
	"context"

	"dsr-service/internal/domain/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// StatusUpdate is one pending detailed_status rewrite. ID addresses the
// document; year and job_no are kept for logging only since they are not
// unique across branches.
type StatusUpdate struct {
	ID             primitive.ObjectID
	Year           string
	JobNo          string
	DetailedStatus entity.DetailedStatus
}

// JobRepository defines the interface for job storage operations
type JobRepository interface {
	Find(ctx context.Context, filter bson.M) ([]*entity.Job, error)
	FindByJobNo(ctx context.Context, year, jobNo string) (*entity.Job, error)
	UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*entity.Job, error)
	BulkUpdateDetailedStatus(ctx context.Context, updates []StatusUpdate) (int64, error)
	Aggregate(ctx context.Context, pipeline []bson.M, out interface{}) error
	DistinctImporters(ctx context.Context, year string) ([]string, error)
}
