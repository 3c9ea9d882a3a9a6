package repository

import (
	"context"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"
	"dsr-service/pkg/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// MongoPrDataRepository implements the PrDataRepository interface
type MongoPrDataRepository struct {
	collection *mongo.Collection
}

// NewMongoPrDataRepository creates a new MongoDB PR repository
func NewMongoPrDataRepository(db *mongo.Database) repository.PrDataRepository {
	collection := db.Collection("pr_data")

	ctx := context.Background()
	collection.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.M{"pr_no": 1}},
		{Keys: bson.M{"containers.container_number": 1}},
	})

	return &MongoPrDataRepository{
		collection: collection,
	}
}

var prSearchFields = []string{
	"pr_no",
	"branch",
	"consignor",
	"consignee",
	"goods_pickup",
	"goods_delivery",
	"containers.container_number",
	"containers.vehicle_no",
}

func prSearchFilter(search string) bson.M {
	if search == "" {
		return bson.M{}
	}
	pattern := utils.EscapeRegex(search)
	or := make([]bson.M, 0, len(prSearchFields))
	for _, f := range prSearchFields {
		or = append(or, bson.M{f: bson.M{"$regex": pattern, "$options": "i"}})
	}
	return bson.M{"$or": or}
}

// PrListPipeline pages PRs newest first and joins each container's elock.
func PrListPipeline(search string, skip, limit int64) []bson.M {
	return []bson.M{
		{"$match": prSearchFilter(search)},
		{"$sort": bson.D{{Key: "_id", Value: -1}}},
		{"$skip": skip},
		{"$limit": limit},
		{"$lookup": bson.M{
			"from":         "elocks",
			"localField":   "containers.elock",
			"foreignField": "_id",
			"as":           "elock_docs",
		}},
	}
}

// List returns one page of PRs and the total match count
func (r *MongoPrDataRepository) List(ctx context.Context, search string, skip, limit int64) ([]*entity.PrData, int64, error) {
	total, err := r.collection.CountDocuments(ctx, prSearchFilter(search))
	if err != nil {
		return nil, 0, err
	}

	cursor, err := r.collection.Aggregate(ctx, PrListPipeline(search, skip, limit))
	if err != nil {
		return nil, 0, err
	}
	defer cursor.Close(ctx)

	var items []*entity.PrData
	if err := cursor.All(ctx, &items); err != nil {
		return nil, 0, err
	}
	for _, pr := range items {
		pr.AttachElocks()
	}

	return items, total, nil
}

// MarkLrCompleted sets lr_completed on the matching container
func (r *MongoPrDataRepository) MarkLrCompleted(ctx context.Context, prNo, containerNumber string) error {
	result, err := r.collection.UpdateOne(
		ctx,
		bson.M{"pr_no": prNo, "containers.container_number": containerNumber},
		bson.M{"$set": bson.M{"containers.$.lr_completed": true}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}
