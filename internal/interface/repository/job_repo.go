package repository

import (
	"context"
	"errors"
	"fmt"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoJobRepository implements the JobRepository interface
type MongoJobRepository struct {
	collection *mongo.Collection
}

// NewMongoJobRepository creates a new MongoDB job repository
func NewMongoJobRepository(db *mongo.Database) repository.JobRepository {
	collection := db.Collection("jobs")

	collection.Indexes().CreateMany(context.Background(), jobIndexes())

	return &MongoJobRepository{
		collection: collection,
	}
}

func jobIndexes() []mongo.IndexModel {
	// Lookup key for the detail routes. Not unique: branches can reuse a
	// job number within a year, so writes address documents by _id.
	jobKeyIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "year", Value: 1},
			{Key: "job_no", Value: 1},
		},
	}

	// Backs the dashboard stage counters and the billing list
	statusIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "year", Value: 1},
			{Key: "status", Value: 1},
			{Key: "detailed_status", Value: 1},
		},
	}

	importerIndex := mongo.IndexModel{
		Keys: bson.D{
			{Key: "year", Value: 1},
			{Key: "importer", Value: 1},
		},
	}

	containerIndex := mongo.IndexModel{
		Keys: bson.M{"container_nos.container_number": 1},
	}

	return []mongo.IndexModel{
		jobKeyIndex,
		statusIndex,
		importerIndex,
		containerIndex,
	}
}

func jobKey(year, jobNo string) bson.M {
	return bson.M{"year": year, "job_no": jobNo}
}

// Find returns every job matching filter
func (r *MongoJobRepository) Find(ctx context.Context, filter bson.M) ([]*entity.Job, error) {
	cursor, err := r.collection.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var jobs []*entity.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, err
	}

	return jobs, nil
}

// FindByJobNo finds one job by year and job number
func (r *MongoJobRepository) FindByJobNo(ctx context.Context, year, jobNo string) (*entity.Job, error) {
	var job entity.Job
	err := r.collection.FindOne(ctx, jobKey(year, jobNo)).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// UpdateFields sets fields on the job with the given _id and returns the
// updated document
func (r *MongoJobRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*entity.Job, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var job entity.Job
	err := r.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": fields}, opts).Decode(&job)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return &job, nil
}

// BulkUpdateDetailedStatus writes all status changes in one unordered bulk
// write and returns the number of modified documents
func (r *MongoJobRepository) BulkUpdateDetailedStatus(ctx context.Context, updates []repository.StatusUpdate) (int64, error) {
	if len(updates) == 0 {
		return 0, nil
	}

	result, err := r.collection.BulkWrite(ctx, statusUpdateModels(updates), options.BulkWrite().SetOrdered(false))
	if err != nil {
		return 0, fmt.Errorf("failed to bulk update detailed status: %w", err)
	}

	return result.ModifiedCount, nil
}

func statusUpdateModels(updates []repository.StatusUpdate) []mongo.WriteModel {
	models := make([]mongo.WriteModel, 0, len(updates))
	for _, u := range updates {
		models = append(models, mongo.NewUpdateOneModel().
			SetFilter(bson.M{"_id": u.ID}).
			SetUpdate(bson.M{"$set": bson.M{"detailed_status": u.DetailedStatus}}))
	}
	return models
}

// Aggregate runs pipeline and decodes every result into out
func (r *MongoJobRepository) Aggregate(ctx context.Context, pipeline []bson.M, out interface{}) error {
	cursor, err := r.collection.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	defer cursor.Close(ctx)

	return cursor.All(ctx, out)
}

// DistinctImporters lists the importer names used in year
func (r *MongoJobRepository) DistinctImporters(ctx context.Context, year string) ([]string, error) {
	filter := bson.M{}
	if year != "" {
		filter["year"] = year
	}

	values, err := r.collection.Distinct(ctx, "importer", filter)
	if err != nil {
		return nil, err
	}

	importers := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			importers = append(importers, s)
		}
	}
	return importers, nil
}
