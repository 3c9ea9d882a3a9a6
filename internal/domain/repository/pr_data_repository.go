package repository

import (
	"context"

	"dsr-service/internal/domain/entity"
)

// PrDataRepository defines the interface for transport requisition operations
type PrDataRepository interface {
	List(ctx context.Context, search string, skip, limit int64) ([]*entity.PrData, int64, error)
	MarkLrCompleted(ctx context.Context, prNo, containerNumber string) error
}
