package repositories

import (
	"context"
	"time"

	"gorm.io/gorm"

	"tillpoint/internal/adapters/persistence/models"
)

// tillRepository implements TillRepository
type tillRepository struct {
	db *gorm.DB
}

// NewTillRepository creates a new till repository
func NewTillRepository(db *gorm.DB) TillRepository {
	return &tillRepository{db: db}
}

// Create creates a new till record
func (r *tillRepository) Create(ctx context.Context, till *models.Till) error {
	return r.db.WithContext(ctx).Create(till).Error
}

// GetByID gets a till record by ID
func (r *tillRepository) GetByID(ctx context.Context, id uint) (*models.Till, error) {
	var till models.Till
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&till).Error
	if err != nil {
		return nil, err
	}
	return &till, nil
}

// List lists till records with pagination, newest first
func (r *tillRepository) List(ctx context.Context, offset, limit int) ([]*models.Till, int64, error) {
	var tills []*models.Till
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.Till{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Order("time_in DESC").Offset(offset).Limit(limit).Find(&tills).Error; err != nil {
		return nil, 0, err
	}

	return tills, total, nil
}

// SummarySince returns record count and float total since a point in time
func (r *tillRepository) SummarySince(ctx context.Context, since time.Time) (int64, float64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Till{}).Where("time_in >= ?", since).Count(&count).Error; err != nil {
		return 0, 0, err
	}

	var total float64
	err := r.db.WithContext(ctx).
		Model(&models.Till{}).
		Where("time_in >= ?", since).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, 0, err
	}

	return count, total, nil
}
