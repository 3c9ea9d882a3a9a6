package repository

import (
	"context"

	"dsr-service/internal/domain/entity"
)

// UserRepository defines the interface for user lookups
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*entity.User, error)
}
