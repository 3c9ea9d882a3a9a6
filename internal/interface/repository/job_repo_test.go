package repository

import (
	"testing"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestStatusUpdateModelsAddressDocumentsByID(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	models := statusUpdateModels([]repository.StatusUpdate{
		{ID: a, Year: "24-25", JobNo: "00123", DetailedStatus: entity.StatusEstimatedTimeOfArrival},
		{ID: b, Year: "24-25", JobNo: "00123", DetailedStatus: entity.StatusBENotedArrivalPending},
	})
	require.Len(t, models, 2)

	first, ok := models[0].(*mongo.UpdateOneModel)
	require.True(t, ok)
	assert.Equal(t, bson.M{"_id": a}, first.Filter)
	assert.Equal(t, bson.M{"$set": bson.M{"detailed_status": entity.StatusEstimatedTimeOfArrival}}, first.Update)

	second := models[1].(*mongo.UpdateOneModel)
	assert.Equal(t, bson.M{"_id": b}, second.Filter)
}

func TestJobIndexesAreNotUnique(t *testing.T) {
	for _, idx := range jobIndexes() {
		if idx.Options != nil && idx.Options.Unique != nil {
			assert.False(t, *idx.Options.Unique, "%v", idx.Keys)
		}
	}
}
