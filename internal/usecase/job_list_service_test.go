package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"dsr-service/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newListService(repo *fakeJobRepo, dir *fakeDirectoryRepo) *JobListService {
	if dir == nil {
		return NewJobListService(repo, nil, newStaticRouter(), testLogger())
	}
	return NewJobListService(repo, dir, newStaticRouter(), testLogger())
}

func TestListSortsThenPaginates(t *testing.T) {
	var jobs []*entity.Job
	for i := 0; i < 7; i++ {
		jobs = append(jobs, &entity.Job{JobNo: fmt.Sprintf("n%d", i), Year: "24-25"})
	}
	jobs = append(jobs, &entity.Job{JobNo: "hp", Year: "24-25", PriorityJob: entity.HighPriority})
	repo := &fakeJobRepo{jobs: jobs}
	svc := newListService(repo, nil)

	res, err := svc.List(context.Background(), "do", ListQuery{Year: "24-25", Page: 1, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, 8, res.TotalJobs)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 1, res.CurrentPage)
	assert.Equal(t, []string{"hp", "n0", "n1"}, jobNos(res.Jobs))

	res, err = svc.List(context.Background(), "do", ListQuery{Year: "24-25", Page: 3, Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, []string{"n5", "n6"}, jobNos(res.Jobs))
}

func TestListFilterCarriesCommonRules(t *testing.T) {
	repo := &fakeJobRepo{}
	svc := newListService(repo, nil)

	_, err := svc.List(context.Background(), "dsr", ListQuery{
		Year:     "24-25",
		Search:   "MSKU",
		Importer: "Acme",
		Status:   "Pending",
		Page:     1,
		Limit:    10,
	})
	require.NoError(t, err)
	require.Len(t, repo.filters, 1)

	filter := repo.filters[0]
	assert.True(t, matches(t, filter, doc{
		"year":          "24-25",
		"importer":      "ACME",
		"status":        "Pending",
		"container_nos": []interface{}{doc{"container_number": "MSKU0000001"}},
	}))
	assert.False(t, matches(t, filter, doc{
		"year":          "25-26",
		"importer":      "ACME",
		"status":        "Pending",
		"container_nos": []interface{}{doc{"container_number": "MSKU0000001"}},
	}))
	assert.False(t, matches(t, filter, doc{
		"year":     "24-25",
		"importer": "ACME",
		"status":   "Pending",
		"job_no":   "00001",
	}))
}

func TestListResolvesIcdCode(t *testing.T) {
	repo := &fakeJobRepo{}
	dir := &fakeDirectoryRepo{codes: []*entity.IcdCode{{Code: "INSAU6", CustomHouse: "ICD SACHANA"}}}
	svc := newListService(repo, dir)

	_, err := svc.List(context.Background(), "esanchit", ListQuery{Year: "24-25", SelectedICD: "INSAU6", Page: 1, Limit: 10})
	require.NoError(t, err)

	base := doc{"year": "24-25", "status": "Pending"}
	hit := doc{"custom_house": "icd sachana"}
	for k, v := range base {
		hit[k] = v
	}
	assert.True(t, matches(t, repo.filters[0], hit))
	base["custom_house"] = "ICD SANAND"
	assert.False(t, matches(t, repo.filters[0], base))

	_, err = svc.List(context.Background(), "esanchit", ListQuery{Year: "24-25", SelectedICD: "ICD KHODIYAR", Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.True(t, matches(t, repo.filters[1], doc{"year": "24-25", "status": "Pending", "custom_house": "ICD KHODIYAR"}))
}

func TestListErrors(t *testing.T) {
	svc := newListService(&fakeJobRepo{}, nil)

	_, err := svc.List(context.Background(), "dsr", ListQuery{Page: 0, Limit: 10})
	assert.ErrorIs(t, err, ErrInvalidPage)

	_, err = svc.List(context.Background(), "nope", ListQuery{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, ErrUnknownProfile)

	boom := errors.New("boom")
	svc = newListService(&fakeJobRepo{err: boom}, nil)
	_, err = svc.List(context.Background(), "dsr", ListQuery{Page: 1, Limit: 10})
	assert.ErrorIs(t, err, boom)
}

func TestBillingProfileOrdersByOffloadDate(t *testing.T) {
	repo := &fakeJobRepo{jobs: []*entity.Job{
		{JobNo: "b", ContainerNos: []entity.Container{{EmptyContainerOffLoadDate: date("2024-06-03")}}},
		{JobNo: "a", ContainerNos: []entity.Container{{EmptyContainerOffLoadDate: date("2024-06-01")}}},
	}}
	svc := newListService(repo, nil)

	jobs, err := svc.Collect(context.Background(), "billing", ListQuery{})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, jobNos(jobs))
}

func TestDsrDefaultsToPending(t *testing.T) {
	repo := &fakeJobRepo{}
	svc := newListService(repo, nil)

	_, err := svc.Collect(context.Background(), "dsr", ListQuery{Year: "24-25"})
	require.NoError(t, err)
	assert.True(t, matches(t, repo.filters[0], doc{"year": "24-25", "status": "Pending"}))
	assert.False(t, matches(t, repo.filters[0], doc{"year": "24-25", "status": "Completed"}))

	_, err = svc.Collect(context.Background(), "dsr", ListQuery{Year: "24-25", Status: "all"})
	require.NoError(t, err)
	assert.True(t, matches(t, repo.filters[1], doc{"year": "24-25", "status": "Completed"}))
}
