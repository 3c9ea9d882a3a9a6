package repository

import (
	"context"

	"dsr-service/internal/domain/entity"
)

// DirectoryRepository defines the interface for master data lookups
type DirectoryRepository interface {
	ListIcdCodes(ctx context.Context) ([]*entity.IcdCode, error)
	GetIcdByCode(ctx context.Context, code string) (*entity.IcdCode, error)
}
