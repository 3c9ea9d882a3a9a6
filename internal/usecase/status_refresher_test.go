package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestRefreshWritesOnlyChangedStatuses(t *testing.T) {
	ids := []primitive.ObjectID{primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()}
	repo := &fakeJobRepo{jobs: []*entity.Job{
		{ID: ids[0], Year: "24-25", JobNo: "1", DetailedStatus: entity.StatusETADatePending},
		{ID: ids[1], Year: "24-25", JobNo: "2", DetailedStatus: entity.StatusETADatePending, VesselBerthing: date("2024-05-01")},
		{ID: ids[2], Year: "24-25", JobNo: "3", BeNo: "BE1", DetailedStatus: entity.StatusETADatePending},
	}}
	r := NewStatusRefresher(repo, testMetrics(), testLogger())

	res, err := r.Refresh(context.Background(), "24-25")
	require.NoError(t, err)
	assert.Equal(t, 3, res.Scanned)
	assert.Equal(t, 2, res.Changed)
	assert.Equal(t, int64(2), res.Modified)

	assert.Equal(t, []repository.StatusUpdate{
		{ID: ids[1], Year: "24-25", JobNo: "2", DetailedStatus: entity.StatusEstimatedTimeOfArrival},
		{ID: ids[2], Year: "24-25", JobNo: "3", DetailedStatus: entity.StatusBENotedArrivalPending},
	}, repo.updates)
	assert.Equal(t, bson.M{"year": "24-25"}, repo.filters[0])
}

func TestRefreshAddressesJobsSharingAJobNumber(t *testing.T) {
	berthed, noted := primitive.NewObjectID(), primitive.NewObjectID()
	repo := &fakeJobRepo{jobs: []*entity.Job{
		{ID: berthed, Year: "24-25", JobNo: "00123", VesselBerthing: date("2024-05-01")},
		{ID: noted, Year: "24-25", JobNo: "00123", BeNo: "BE9"},
	}}
	r := NewStatusRefresher(repo, testMetrics(), testLogger())

	res, err := r.Refresh(context.Background(), "24-25")
	require.NoError(t, err)
	assert.Equal(t, 2, res.Changed)

	byID := map[primitive.ObjectID]entity.DetailedStatus{}
	for _, u := range repo.updates {
		byID[u.ID] = u.DetailedStatus
	}
	assert.Equal(t, map[primitive.ObjectID]entity.DetailedStatus{
		berthed: entity.StatusEstimatedTimeOfArrival,
		noted:   entity.StatusBENotedArrivalPending,
	}, byID)
}

func TestRefreshNothingToDo(t *testing.T) {
	repo := &fakeJobRepo{jobs: []*entity.Job{{JobNo: "1", DetailedStatus: entity.StatusETADatePending}}}
	r := NewStatusRefresher(repo, testMetrics(), testLogger())

	res, err := r.Refresh(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, 0, res.Changed)
	assert.Empty(t, repo.updates)
	assert.Equal(t, bson.M{}, repo.filters[0])
}

func TestRefreshError(t *testing.T) {
	r := NewStatusRefresher(&fakeJobRepo{err: errors.New("down")}, testMetrics(), testLogger())
	_, err := r.Refresh(context.Background(), "24-25")
	assert.Error(t, err)
}

func TestRunScheduledSkipsOverlap(t *testing.T) {
	repo := &fakeJobRepo{jobs: []*entity.Job{{JobNo: "1", VesselBerthing: date("2024-05-01")}}}
	r := NewStatusRefresher(repo, testMetrics(), testLogger())

	r.running.Store(true)
	r.RunScheduled(context.Background(), time.Second)
	assert.Empty(t, repo.filters)

	r.running.Store(false)
	r.RunScheduled(context.Background(), time.Second)
	assert.Len(t, repo.updates, 1)
	assert.False(t, r.running.Load())
}
