package usecase

import (
	"context"
	"errors"
	"fmt"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"
	"dsr-service/pkg/logger"
	"dsr-service/pkg/utils"
)

// ErrUnknownProfile is returned when a list name has no registered profile.
var ErrUnknownProfile = errors.New("unknown job list")

// ListResult is the response shape of every job list endpoint.
type ListResult struct {
	TotalJobs   int           `json:"totalJobs"`
	TotalPages  int           `json:"totalPages"`
	CurrentPage int           `json:"currentPage"`
	Jobs        []*entity.Job `json:"jobs"`
}

// JobListService builds, sorts and paginates job lists
type JobListService struct {
	jobRepo       repository.JobRepository
	directoryRepo repository.DirectoryRepository
	router        ProfileRouter
	logger        logger.Logger
}

// NewJobListService creates a new job list service. directoryRepo may be nil,
// in which case ICD filters are matched against custom_house verbatim.
func NewJobListService(
	jobRepo repository.JobRepository,
	directoryRepo repository.DirectoryRepository,
	router ProfileRouter,
	logger logger.Logger,
) *JobListService {
	return &JobListService{
		jobRepo:       jobRepo,
		directoryRepo: directoryRepo,
		router:        router,
		logger:        logger,
	}
}

// List returns one page of the named job list. The whole matching set is
// fetched and sorted in memory before slicing, so cost grows with the number
// of matching jobs.
func (s *JobListService) List(ctx context.Context, name string, q ListQuery) (*ListResult, error) {
	if q.Page < 1 || q.Limit < 1 {
		return nil, ErrInvalidPage
	}

	jobs, err := s.Collect(ctx, name, q)
	if err != nil {
		return nil, err
	}

	page, err := Paginate(jobs, q.Page, q.Limit)
	if err != nil {
		return nil, err
	}

	return &ListResult{
		TotalJobs:   page.Total,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
		Jobs:        page.Items,
	}, nil
}

// Collect returns every job of the named list in display order.
func (s *JobListService) Collect(ctx context.Context, name string, q ListQuery) ([]*entity.Job, error) {
	profile := s.router.GetProfile(name)
	if profile == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProfile, name)
	}

	rules := s.commonRules(ctx, q)
	if profile.Rules != nil {
		rules = append(rules, profile.Rules(q)...)
	}

	filter := BuildFilter(rules)
	s.logger.Debug("Fetching job list", "list", name, "filter", filter)

	jobs, err := s.jobRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s jobs: %w", name, err)
	}

	SortJobs(jobs, profile.Rank, profile.TieBreak)
	return jobs, nil
}

func (s *JobListService) commonRules(ctx context.Context, q ListQuery) []FilterRule {
	return []FilterRule{
		Equals("year", q.Year),
		Search(q.Search, SearchFields...),
		ExactCI("importer", q.Importer),
		ExactCI("custom_house", s.resolveCustomHouse(ctx, q.SelectedICD)),
		ExactCI("obl_telex_bl", q.OblTelexBl),
	}
}

// resolveCustomHouse maps an ICD code to the custom house name stored on
// jobs. Unknown codes are used as given.
func (s *JobListService) resolveCustomHouse(ctx context.Context, icd string) string {
	if s.directoryRepo == nil || utils.IsPlaceholder(icd) {
		return icd
	}
	entry, err := s.directoryRepo.GetIcdByCode(ctx, icd)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("ICD lookup failed", "code", icd, "error", err)
		}
		return icd
	}
	if entry.CustomHouse == "" {
		return icd
	}
	return entry.CustomHouse
}
