package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"
)

// DirectoryService serves the importer and ICD pick lists
type DirectoryService struct {
	jobRepo       repository.JobRepository
	directoryRepo repository.DirectoryRepository
}

// NewDirectoryService creates a new directory service
func NewDirectoryService(jobRepo repository.JobRepository, directoryRepo repository.DirectoryRepository) *DirectoryService {
	return &DirectoryService{
		jobRepo:       jobRepo,
		directoryRepo: directoryRepo,
	}
}

// Importers returns the distinct non-empty importer names of year, sorted
// case-insensitively.
func (s *DirectoryService) Importers(ctx context.Context, year string) ([]string, error) {
	names, err := s.jobRepo.DistinctImporters(ctx, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list importers: %w", err)
	}

	out := make([]string, 0, len(names))
	for _, n := range names {
		if strings.TrimSpace(n) != "" {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out, nil
}

// IcdCodes returns the ICD master list, empty when no master database is
// configured.
func (s *DirectoryService) IcdCodes(ctx context.Context) ([]*entity.IcdCode, error) {
	if s.directoryRepo == nil {
		return []*entity.IcdCode{}, nil
	}
	codes, err := s.directoryRepo.ListIcdCodes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list icd codes: %w", err)
	}
	return codes, nil
}
