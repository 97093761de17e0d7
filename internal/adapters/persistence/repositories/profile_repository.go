package repositories

import (
	"context"

	"gorm.io/gorm"

	"tillpoint/internal/adapters/persistence/models"
)

// profileRepository implements ProfileRepository
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository creates a new staff profile repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// Create creates a new staff profile
func (r *profileRepository) Create(ctx context.Context, profile *models.StaffProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

// GetByID gets a staff profile by ID
func (r *profileRepository) GetByID(ctx context.Context, id uint) (*models.StaffProfile, error) {
	var profile models.StaffProfile
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// List lists staff profiles with pagination
func (r *profileRepository) List(ctx context.Context, offset, limit int) ([]*models.StaffProfile, int64, error) {
	var profiles []*models.StaffProfile
	var total int64

	if err := r.db.WithContext(ctx).Model(&models.StaffProfile{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).Order("id").Offset(offset).Limit(limit).Find(&profiles).Error; err != nil {
		return nil, 0, err
	}

	return profiles, total, nil
}

// ExistsByUsername checks if a profile username exists
func (r *profileRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.StaffProfile{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// ExistsByEmail checks if a profile email exists
func (r *profileRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.StaffProfile{}).Where("email_address = ?", email).Count(&count).Error
	return count > 0, err
}

// Update updates a staff profile
func (r *profileRepository) Update(ctx context.Context, profile *models.StaffProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}

// Delete deletes a staff profile
func (r *profileRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.StaffProfile{}, id).Error
}
