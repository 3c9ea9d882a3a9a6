package usecase

import (
	"context"
	"fmt"
	"strings"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"
	"dsr-service/pkg/logger"
)

// PrListResult is one page of transport requisitions.
type PrListResult struct {
	Total       int64            `json:"totalCount"`
	TotalPages  int64            `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
	Data        []*entity.PrData `json:"data"`
}

// TransportService lists PRs and tracks lorry receipts
type TransportService struct {
	prRepo repository.PrDataRepository
	logger logger.Logger
}

// NewTransportService creates a new transport service
func NewTransportService(prRepo repository.PrDataRepository, logger logger.Logger) *TransportService {
	return &TransportService{
		prRepo: prRepo,
		logger: logger,
	}
}

// List pages through PRs in the database rather than in memory.
func (s *TransportService) List(ctx context.Context, search string, page, limit int) (*PrListResult, error) {
	if page < 1 || limit < 1 {
		return nil, ErrInvalidPage
	}

	skip := int64(page-1) * int64(limit)
	items, total, err := s.prRepo.List(ctx, strings.TrimSpace(search), skip, int64(limit))
	if err != nil {
		return nil, fmt.Errorf("failed to list pr data: %w", err)
	}
	if items == nil {
		items = []*entity.PrData{}
	}

	return &PrListResult{
		Total:       total,
		TotalPages:  (total + int64(limit) - 1) / int64(limit),
		CurrentPage: page,
		Data:        items,
	}, nil
}

// MarkLrCompleted flags one container's lorry receipt as completed.
func (s *TransportService) MarkLrCompleted(ctx context.Context, prNo, containerNumber string) error {
	if err := s.prRepo.MarkLrCompleted(ctx, prNo, containerNumber); err != nil {
		return err
	}
	s.logger.Info("LR completed", "prNo", prNo, "container", containerNumber)
	return nil
}
