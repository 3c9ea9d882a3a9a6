package usecase

import (
	"context"
	"sync"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"
	"dsr-service/pkg/logger"
	"dsr-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeJobRepo struct {
	mu sync.Mutex

	jobs      []*entity.Job
	rows      []entity.OverviewCounters
	importers []string
	err       error

	filters   []bson.M
	pipelines [][]bson.M
	updates   []repository.StatusUpdate
	setFields bson.M
	setCalls  []bson.M

	// beforeUpdate runs once against the stored job ahead of the next
	// UpdateFields, standing in for a write from another request.
	beforeUpdate func(*entity.Job)
}

func (f *fakeJobRepo) Find(ctx context.Context, filter bson.M) ([]*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.filters = append(f.filters, filter)
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*entity.Job, len(f.jobs))
	copy(out, f.jobs)
	return out, nil
}

func (f *fakeJobRepo) FindByJobNo(ctx context.Context, year, jobNo string) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, j := range f.jobs {
		if j.Year == year && j.JobNo == jobNo {
			cp := *j
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeJobRepo) UpdateFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (*entity.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.setFields = fields
	f.setCalls = append(f.setCalls, fields)
	for i, j := range f.jobs {
		if j.ID != id {
			continue
		}
		if f.beforeUpdate != nil {
			f.beforeUpdate(j)
			f.beforeUpdate = nil
		}
		updated, err := applySet(j, fields)
		if err != nil {
			return nil, err
		}
		f.jobs[i] = updated
		cp := *updated
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

// applySet mimics a Mongo $set of top-level fields on the stored document.
func applySet(job *entity.Job, fields bson.M) (*entity.Job, error) {
	raw, err := bson.Marshal(job)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for k, v := range fields {
		doc[k] = v
	}
	if raw, err = bson.Marshal(doc); err != nil {
		return nil, err
	}
	var out entity.Job
	if err := bson.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (f *fakeJobRepo) BulkUpdateDetailedStatus(ctx context.Context, updates []repository.StatusUpdate) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	f.updates = append(f.updates, updates...)
	return int64(len(updates)), nil
}

func (f *fakeJobRepo) Aggregate(ctx context.Context, pipeline []bson.M, out interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pipelines = append(f.pipelines, pipeline)
	if f.err != nil {
		return f.err
	}
	if rows, ok := out.(*[]entity.OverviewCounters); ok {
		*rows = append((*rows)[:0], f.rows...)
	}
	return nil
}

func (f *fakeJobRepo) DistinctImporters(ctx context.Context, year string) ([]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.importers, nil
}

type fakeDirectoryRepo struct {
	codes []*entity.IcdCode
}

func (f *fakeDirectoryRepo) ListIcdCodes(ctx context.Context) ([]*entity.IcdCode, error) {
	return f.codes, nil
}

func (f *fakeDirectoryRepo) GetIcdByCode(ctx context.Context, code string) (*entity.IcdCode, error) {
	for _, c := range f.codes {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, repository.ErrNotFound
}

type fakeUserRepo struct {
	users map[string]*entity.User
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	if u, ok := f.users[username]; ok {
		return u, nil
	}
	return nil, repository.ErrNotFound
}

type fakePrRepo struct {
	items     []*entity.PrData
	total     int64
	lastSkip  int64
	lastLimit int64
	marked    []string
}

func (f *fakePrRepo) List(ctx context.Context, search string, skip, limit int64) ([]*entity.PrData, int64, error) {
	f.lastSkip, f.lastLimit = skip, limit
	return f.items, f.total, nil
}

func (f *fakePrRepo) MarkLrCompleted(ctx context.Context, prNo, containerNumber string) error {
	for _, pr := range f.items {
		if pr.PrNo != prNo {
			continue
		}
		for i := range pr.Containers {
			if pr.Containers[i].ContainerNumber == containerNumber {
				pr.Containers[i].LrCompleted = true
				f.marked = append(f.marked, prNo+"/"+containerNumber)
				return nil
			}
		}
	}
	return repository.ErrNotFound
}

func testMetrics() *metrics.Metrics {
	return metrics.NewMetrics("test", prometheus.NewRegistry())
}

func testLogger() logger.Logger {
	return logger.NewNopLogger()
}

type staticRouter struct {
	profiles map[string]*ListProfile
}

func newStaticRouter() *staticRouter {
	r := &staticRouter{profiles: map[string]*ListProfile{}}
	for _, p := range DefaultProfiles() {
		r.Register(p)
	}
	return r
}

func (r *staticRouter) Register(p ListProfile) { r.profiles[p.Name] = &p }

func (r *staticRouter) GetProfile(name string) *ListProfile { return r.profiles[name] }

func date(raw string) entity.LooseDate { return entity.NewLooseDate(raw) }
