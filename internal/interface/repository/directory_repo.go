package repository

import (
	"context"
	"errors"
	"time"

	"dsr-service/internal/domain/entity"
	"dsr-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormDirectoryRepository implements the DirectoryRepository interface
type GormDirectoryRepository struct {
	db *gorm.DB
}

// NewGormDirectoryRepository creates a new GORM directory repository
func NewGormDirectoryRepository(db *gorm.DB) repository.DirectoryRepository {
	return &GormDirectoryRepository{
		db: db,
	}
}

// IcdCodes GORM model for database mapping
type IcdCodes struct {
	ID          uint           `gorm:"primaryKey"`
	Code        string         `gorm:"column:code;unique"`
	Name        string         `gorm:"column:name"`
	CustomHouse string         `gorm:"column:custom_house"`
	DeletedAt   gorm.DeletedAt `gorm:"index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName overrides the default table name
func (IcdCodes) TableName() string {
	return "m_icd_codes"
}

func (m IcdCodes) toEntity() *entity.IcdCode {
	return &entity.IcdCode{
		ID:          m.ID,
		Code:        m.Code,
		Name:        m.Name,
		CustomHouse: m.CustomHouse,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		DeletedAt:   m.DeletedAt,
	}
}

// ListIcdCodes returns every active ICD ordered by code
func (r *GormDirectoryRepository) ListIcdCodes(ctx context.Context) ([]*entity.IcdCode, error) {
	var rows []IcdCodes
	if err := r.db.WithContext(ctx).Order("code").Find(&rows).Error; err != nil {
		return nil, err
	}

	codes := make([]*entity.IcdCode, 0, len(rows))
	for _, row := range rows {
		codes = append(codes, row.toEntity())
	}
	return codes, nil
}

// GetIcdByCode finds an ICD by code
func (r *GormDirectoryRepository) GetIcdByCode(ctx context.Context, code string) (*entity.IcdCode, error) {
	var row IcdCodes
	result := r.db.WithContext(ctx).Where("code = ?", code).First(&row)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, repository.ErrNotFound
		}
		return nil, result.Error
	}
	return row.toEntity(), nil
}
